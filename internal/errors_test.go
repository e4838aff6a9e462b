package internal

import (
	"errors"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestErrors(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Errors Suite")
}

var _ = ginkgo.Describe("AppError", func() {
	ginkgo.It("should surface the first validation message as Error()", func() {
		err := NewValidationError("Validation failed", ErrCodeValidationFailed).
			WithDetails(ValidationErrors{Errors: []ValidationError{
				{Field: "username", Message: "username is required"},
				{Field: "password", Message: "password is required"},
			}})

		gomega.Expect(err.Error()).To(gomega.Equal("username is required"))
	})

	ginkgo.It("should join all validation messages in the detailed message", func() {
		err := NewValidationError("Validation failed", ErrCodeValidationFailed).
			WithDetails(ValidationErrors{Errors: []ValidationError{
				{Field: "username", Message: "username is required"},
				{Field: "password", Message: "password is required"},
			}})

		gomega.Expect(err.GetDetailedMessage()).To(gomega.Equal("username is required; password is required"))
	})

	ginkgo.It("should unwrap to its cause", func() {
		cause := errors.New("underlying")
		err := NewIOError("Failed to export database", cause)

		gomega.Expect(errors.Is(err, cause)).To(gomega.BeTrue())
	})
})

var _ = ginkgo.Describe("Message", func() {
	ginkgo.It("should be empty for nil", func() {
		gomega.Expect(Message(nil)).To(gomega.Equal(""))
	})

	ginkgo.It("should render sentinel errors as their user-facing text", func() {
		gomega.Expect(Message(ErrSelfDelete)).To(gomega.Equal("Cannot delete your own account"))
		gomega.Expect(Message(ErrNotAuthenticated)).To(gomega.Equal("Not logged in"))
	})

	ginkgo.It("should pass plain errors through", func() {
		gomega.Expect(Message(errors.New("boom"))).To(gomega.Equal("boom"))
	})
})
