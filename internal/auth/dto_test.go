package auth

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	apperrors "github.com/frahmantamala/hrm-records/internal"
	"github.com/frahmantamala/hrm-records/internal/core/datamodel/user"
)

var _ = ginkgo.Describe("CreateUserRequest.Validate", func() {
	valid := func(role string) CreateUserRequest {
		return CreateUserRequest{
			Username: "someone",
			Password: "secret123",
			FullName: "Some One",
			Role:     role,
		}
	}

	ginkgo.It("should accept every fixed role name", func() {
		for _, role := range []string{user.RoleAdmin, user.RoleHRManager, user.RoleHRStaff, user.RoleViewer, user.RoleCustom} {
			gomega.Expect(valid(role).Validate()).To(gomega.Succeed(), role)
		}
	})

	ginkgo.It("should reject a role outside the enumeration with the invalid-role code", func() {
		err := valid("superuser").Validate()

		gomega.Expect(err).To(gomega.HaveOccurred())
		appErr, ok := apperrors.IsAppError(err)
		gomega.Expect(ok).To(gomega.BeTrue())
		details := appErr.Details.(apperrors.ValidationErrors)
		gomega.Expect(details.Errors).To(gomega.HaveLen(1))
		gomega.Expect(details.Errors[0].Field).To(gomega.Equal("role"))
		gomega.Expect(details.Errors[0].Code).To(gomega.Equal(string(apperrors.ErrCodeInvalidRole)))
	})

	ginkgo.It("should report a missing role as required, not unrecognized", func() {
		err := valid("").Validate()

		gomega.Expect(err).To(gomega.HaveOccurred())
		appErr, _ := apperrors.IsAppError(err)
		details := appErr.Details.(apperrors.ValidationErrors)
		gomega.Expect(details.Errors).To(gomega.HaveLen(1))
		gomega.Expect(details.Errors[0].Message).To(gomega.ContainSubstring("required"))
	})
})

var _ = ginkgo.Describe("UpdateUserRequest.Validate", func() {
	ginkgo.It("should reject an unrecognized role", func() {
		err := UpdateUserRequest{
			UserID:   4,
			FullName: "Some One",
			Role:     "root",
		}.Validate()

		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("should accept a complete request", func() {
		err := UpdateUserRequest{
			UserID:   4,
			FullName: "Some One",
			Role:     user.RoleViewer,
			IsActive: true,
		}.Validate()

		gomega.Expect(err).To(gomega.Succeed())
	})
})
