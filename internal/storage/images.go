package storage

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	errors "github.com/frahmantamala/hrm-records/internal"
)

const imageFolder = "employee_images"

// ImageStore keeps one photo per employee under
// <dataDir>/employee_images/<epf>/photo.<ext>. Paths stored on the employee
// row are relative to the data directory.
type ImageStore struct {
	dataDir string
	logger  *slog.Logger
}

func NewImageStore(dataDir string, logger *slog.Logger) *ImageStore {
	return &ImageStore{dataDir: dataDir, logger: logger}
}

// Save decodes a base64 payload (bare or data-URL form) and writes it as the
// employee's photo. The extension comes from the MIME hint in the data URL,
// defaulting to jpg. Returns the relative path to store on the record.
func (s *ImageStore) Save(epfNumber, imageData string) (string, error) {
	folder := filepath.Join(s.dataDir, imageFolder, epfNumber)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", errors.NewIOError("Failed to create image folder", err)
	}

	payload := imageData
	if idx := strings.IndexByte(imageData, ','); idx >= 0 {
		payload = imageData[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", errors.NewValidationError("Failed to decode image data", errors.ErrCodeValidationFailed).WithCause(err)
	}

	ext := "jpg"
	if strings.Contains(imageData, "image/png") {
		ext = "png"
	}

	fileName := "photo." + ext
	if err := os.WriteFile(filepath.Join(folder, fileName), raw, 0o644); err != nil {
		return "", errors.NewIOError("Failed to save image", err)
	}

	relPath := filepath.ToSlash(filepath.Join(imageFolder, epfNumber, fileName))
	s.logger.Debug("employee image saved", "epf_number", epfNumber, "path", relPath)
	return relPath, nil
}

// Load reads a previously saved photo and re-encodes it as a base64 data URL.
func (s *ImageStore) Load(imagePath string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(imagePath))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", errors.ErrImageNotFound
	}

	fullPath := filepath.Join(s.dataDir, clean)
	raw, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.ErrImageNotFound
		}
		return "", errors.NewIOError("Failed to read image", err)
	}

	mimeType := "image/jpeg"
	if strings.HasSuffix(imagePath, ".png") {
		mimeType = "image/png"
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(raw)), nil
}
