package employee

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Filters.Predicates", func() {
	ginkgo.It("should omit empty fields entirely", func() {
		gomega.Expect(Filters{}.Predicates()).To(gomega.BeEmpty())
	})

	ginkgo.It("should match the EPF number as a substring", func() {
		preds := Filters{EPFNumber: "EPF1"}.Predicates()

		gomega.Expect(preds).To(gomega.HaveLen(1))
		gomega.Expect(preds[0].Column).To(gomega.Equal("epf_number"))
		gomega.Expect(preds[0].Kind).To(gomega.Equal(MatchSubstring))
		gomega.Expect(preds[0].Value).To(gomega.Equal("EPF1"))
	})

	ginkgo.It("should match categorical fields exactly", func() {
		preds := Filters{
			Department:     "Finance",
			TransportRoute: "Route 2",
			WorkingStatus:  "active",
		}.Predicates()

		gomega.Expect(preds).To(gomega.HaveLen(3))
		for _, p := range preds {
			gomega.Expect(p.Kind).To(gomega.Equal(MatchExact))
		}
	})

	ginkgo.It("should combine all four fields when set", func() {
		preds := Filters{
			EPFNumber:      "1",
			Department:     "Finance",
			TransportRoute: "Route 2",
			WorkingStatus:  "resign",
		}.Predicates()

		gomega.Expect(preds).To(gomega.HaveLen(4))
	})
})
