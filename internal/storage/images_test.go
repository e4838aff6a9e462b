package storage

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	apperrors "github.com/frahmantamala/hrm-records/internal"
	"github.com/frahmantamala/hrm-records/pkg/logger"
)

func TestStorage(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Storage Module Suite")
}

var _ = ginkgo.Describe("ImageStore", func() {
	var (
		store   *ImageStore
		dataDir string
	)

	pixel := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	encoded := base64.StdEncoding.EncodeToString(pixel)

	ginkgo.BeforeEach(func() {
		dataDir = ginkgo.GinkgoT().TempDir()
		store = NewImageStore(dataDir, logger.L())
	})

	ginkgo.Describe("Save", func() {
		ginkgo.It("should write a jpg from a bare base64 payload", func() {
			// When
			relPath, err := store.Save("EPF100", encoded)

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(relPath).To(gomega.Equal("employee_images/EPF100/photo.jpg"))

			raw, readErr := os.ReadFile(filepath.Join(dataDir, filepath.FromSlash(relPath)))
			gomega.Expect(readErr).ToNot(gomega.HaveOccurred())
			gomega.Expect(raw).To(gomega.Equal(pixel))
		})

		ginkgo.It("should strip a data URL prefix and pick png from the MIME hint", func() {
			// When
			relPath, err := store.Save("EPF100", "data:image/png;base64,"+encoded)

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(relPath).To(gomega.Equal("employee_images/EPF100/photo.png"))
		})

		ginkgo.It("should reject undecodable image data", func() {
			// When
			_, err := store.Save("EPF100", "not-base64!!!")

			// Then
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should overwrite an existing photo for the same employee", func() {
			// Given
			_, err := store.Save("EPF100", encoded)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			replacement := base64.StdEncoding.EncodeToString([]byte("replacement"))

			// When
			relPath, err := store.Save("EPF100", replacement)

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			raw, _ := os.ReadFile(filepath.Join(dataDir, filepath.FromSlash(relPath)))
			gomega.Expect(string(raw)).To(gomega.Equal("replacement"))
		})
	})

	ginkgo.Describe("Load", func() {
		ginkgo.It("should round-trip a saved image as a data URL", func() {
			// Given
			relPath, err := store.Save("EPF100", "data:image/png;base64,"+encoded)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			dataURL, err := store.Load(relPath)

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(dataURL).To(gomega.Equal("data:image/png;base64," + encoded))
		})

		ginkgo.It("should default the MIME type to jpeg", func() {
			// Given
			relPath, err := store.Save("EPF100", encoded)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			dataURL, err := store.Load(relPath)

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(dataURL).To(gomega.HavePrefix("data:image/jpeg;base64,"))
		})

		ginkgo.It("should report a missing image", func() {
			// When
			_, err := store.Load("employee_images/EPF999/photo.jpg")

			// Then
			gomega.Expect(err).To(gomega.MatchError(apperrors.ErrImageNotFound))
		})

		ginkgo.It("should refuse paths escaping the data directory", func() {
			// When
			_, err := store.Load("../../etc/passwd")

			// Then
			gomega.Expect(err).To(gomega.MatchError(apperrors.ErrImageNotFound))
		})

		ginkgo.It("should refuse absolute paths", func() {
			// When
			_, err := store.Load("/etc/passwd")

			// Then
			gomega.Expect(err).To(gomega.MatchError(apperrors.ErrImageNotFound))
		})
	})
})
