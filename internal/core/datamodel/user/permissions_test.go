package user

import (
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestUser(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "User Datamodel Suite")
}

var _ = ginkgo.Describe("PermissionsForRole", func() {
	ginkgo.It("should grant administrators everything", func() {
		p := PermissionsForRole(RoleAdmin)

		gomega.Expect(p.CanManageUsers).To(gomega.BeTrue())
		gomega.Expect(p.CanBackupDatabase).To(gomega.BeTrue())
		gomega.Expect(p.CanViewAuditLogs).To(gomega.BeTrue())
	})

	ginkgo.It("should keep system administration away from hr managers", func() {
		p := PermissionsForRole(RoleHRManager)

		gomega.Expect(p.CanDeleteEmployees).To(gomega.BeTrue())
		gomega.Expect(p.CanManageUsers).To(gomega.BeFalse())
		gomega.Expect(p.CanManageSettings).To(gomega.BeFalse())
		gomega.Expect(p.CanBackupDatabase).To(gomega.BeFalse())
		gomega.Expect(p.CanViewAuditLogs).To(gomega.BeFalse())
	})

	ginkgo.It("should limit hr staff to viewing and adding", func() {
		p := PermissionsForRole(RoleHRStaff)

		gomega.Expect(p.CanViewEmployees).To(gomega.BeTrue())
		gomega.Expect(p.CanAddEmployees).To(gomega.BeTrue())
		gomega.Expect(p.CanEditEmployees).To(gomega.BeFalse())
		gomega.Expect(p.CanDeleteEmployees).To(gomega.BeFalse())
	})

	ginkgo.It("should fall back to viewer defaults for unknown roles", func() {
		gomega.Expect(PermissionsForRole("superuser")).To(gomega.Equal(ViewerPermissions()))
		gomega.Expect(PermissionsForRole("")).To(gomega.Equal(ViewerPermissions()))
	})
})

var _ = ginkgo.Describe("PermissionSet.Allows", func() {
	ginkgo.It("should map every capability to its switch", func() {
		p := AdminPermissions()
		caps := []Capability{
			CapViewEmployees, CapAddEmployees, CapEditEmployees, CapDeleteEmployees,
			CapManageUsers, CapViewAllDepartments, CapExportData, CapViewReports,
			CapManageSettings, CapBackupDatabase, CapViewAuditLogs,
		}

		for _, c := range caps {
			gomega.Expect(p.Allows(c)).To(gomega.BeTrue(), string(c))
		}
	})

	ginkgo.It("should never grant an unknown capability", func() {
		gomega.Expect(AdminPermissions().Allows("launch_missiles")).To(gomega.BeFalse())
	})
})

var _ = ginkgo.Describe("ValidRole", func() {
	ginkgo.It("should accept the fixed role names only", func() {
		for _, role := range []string{RoleAdmin, RoleHRManager, RoleHRStaff, RoleViewer, RoleCustom} {
			gomega.Expect(ValidRole(role)).To(gomega.BeTrue(), role)
		}
		gomega.Expect(ValidRole("root")).To(gomega.BeFalse())
		gomega.Expect(ValidRole("")).To(gomega.BeFalse())
	})
})
