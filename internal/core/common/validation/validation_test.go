package validation

import (
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	apperrors "github.com/frahmantamala/hrm-records/internal"
)

func TestValidation(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Validation Suite")
}

var _ = ginkgo.Describe("ValidationBuilder", func() {
	ginkgo.It("should pass when every rule holds", func() {
		v := NewValidator()
		v.Field("username", "admin").Required().MinLength(3).MaxLength(50)

		gomega.Expect(v.Validate()).To(gomega.BeNil())
	})

	ginkgo.It("should flag a missing required string", func() {
		v := NewValidator()
		v.Field("username", "").Required()

		err := v.Validate()
		gomega.Expect(err).ToNot(gomega.BeNil())
		details := err.Details.(apperrors.ValidationErrors)
		gomega.Expect(details.Errors).To(gomega.HaveLen(1))
		gomega.Expect(details.Errors[0].Field).To(gomega.Equal("username"))
	})

	ginkgo.It("should treat a zero int64 as missing", func() {
		v := NewValidator()
		v.Field("user_id", int64(0)).Required()

		gomega.Expect(v.Validate()).ToNot(gomega.BeNil())
	})

	ginkgo.It("should aggregate failures across fields", func() {
		v := NewValidator()
		v.Field("username", "").Required()
		v.Field("password", "ab").Required().MinLength(6)

		err := v.Validate()
		gomega.Expect(err).ToNot(gomega.BeNil())
		details := err.Details.(apperrors.ValidationErrors)
		gomega.Expect(details.Errors).To(gomega.HaveLen(2))
	})

	ginkgo.Describe("Custom", func() {
		ginkgo.It("should run the supplied rule and keep its error code", func() {
			rule := func(value interface{}) *apperrors.AppError {
				if value.(string) == "bad" {
					return apperrors.NewValidationFieldError("status", "status is not allowed", apperrors.ErrCodeInvalidRole)
				}
				return nil
			}

			v := NewValidator()
			v.Field("status", "bad").Custom(rule)

			err := v.Validate()
			gomega.Expect(err).ToNot(gomega.BeNil())
			details := err.Details.(apperrors.ValidationErrors)
			gomega.Expect(details.Errors[0].Code).To(gomega.Equal(string(apperrors.ErrCodeInvalidRole)))
		})

		ginkgo.It("should pass when the rule returns nil", func() {
			v := NewValidator()
			v.Field("status", "good").Custom(func(interface{}) *apperrors.AppError { return nil })

			gomega.Expect(v.Validate()).To(gomega.BeNil())
		})
	})
})
