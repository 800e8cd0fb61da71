package utils

import (
	"crypto/rand"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"BlogGolang/pkg/apperror"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ValidateImageFile(file *multipart.FileHeader) error
}

type utils struct {
	maxFileSize int64
}

func New() IUtils {
	return &utils{
		maxFileSize: 5 * 1024 * 1024,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

func (u *utils) ValidateImageFile(file *multipart.FileHeader) error {
	if file == nil {
		return apperror.NewValidation(map[string][]string{
			"image": {"No file uploaded."},
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return apperror.NewValidation(map[string][]string{
			"image": {"Image must be a jpg, jpeg, png, or gif file."},
		})
	}

	if file.Size > u.maxFileSize {
		return apperror.NewValidation(map[string][]string{
			"image": {"Image must not be larger than 5MB."},
		})
	}

	return nil
}
