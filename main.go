package main

import "github.com/frahmantamala/hrm-records/cmd"

func main() {
	cmd.Execute()
}
