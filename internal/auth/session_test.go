package auth

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/hrm-records/internal/core/datamodel/user"
)

var _ = ginkgo.Describe("Credentials", func() {
	ginkgo.It("should produce a stable digest for the same password", func() {
		gomega.Expect(HashPassword("admin123")).To(gomega.Equal(HashPassword("admin123")))
	})

	ginkgo.It("should verify a matching password and reject others", func() {
		digest := HashPassword("opensesame")

		gomega.Expect(VerifyPassword("opensesame", digest)).To(gomega.BeTrue())
		gomega.Expect(VerifyPassword("opensesam", digest)).To(gomega.BeFalse())
		gomega.Expect(VerifyPassword("", digest)).To(gomega.BeFalse())
	})
})

var _ = ginkgo.Describe("SessionStore", func() {
	var store *Store

	ginkgo.BeforeEach(func() {
		store = NewStore()
	})

	ginkgo.It("should start empty", func() {
		gomega.Expect(store.Current()).To(gomega.BeNil())
	})

	ginkgo.It("should hold at most one session", func() {
		first := &Session{Token: "a", Username: "first"}
		second := &Session{Token: "b", Username: "second"}

		store.Set(first)
		store.Set(second)

		gomega.Expect(store.Current().Username).To(gomega.Equal("second"))
	})

	ginkgo.It("should return a copy that cannot mutate the stored session", func() {
		store.Set(&Session{Token: "a", Username: "original"})

		got := store.Current()
		got.Username = "tampered"

		gomega.Expect(store.Current().Username).To(gomega.Equal("original"))
	})

	ginkgo.It("should clear the slot", func() {
		store.Set(&Session{Token: "a", Username: "someone"})

		store.Clear()

		gomega.Expect(store.Current()).To(gomega.BeNil())
	})
})

var _ = ginkgo.Describe("Authorize", func() {
	ginkgo.It("should report not authenticated for a nil session", func() {
		err := Authorize(nil, user.CapViewEmployees)

		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("should deny a capability the session lacks", func() {
		sess := &Session{Permissions: user.ViewerPermissions()}

		gomega.Expect(Authorize(sess, user.CapViewEmployees)).To(gomega.Succeed())
		gomega.Expect(Authorize(sess, user.CapDeleteEmployees)).To(gomega.HaveOccurred())
	})
})
