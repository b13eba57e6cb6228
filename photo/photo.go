// Package photo stores patient photos on local disk or in an S3 bucket.
package photo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ariebrainware/clinique/config"
)

var (
	ErrUnsupportedType = errors.New("unsupported photo type")
	ErrEmptyName       = errors.New("empty photo name")
)

var allowedExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Store persists photos under a flat name.
type Store interface {
	Save(ctx context.Context, name string, body io.Reader, size int64) error
	Delete(ctx context.Context, name string) error
}

// SanitizeFilename reduces an uploaded file name to a safe base name.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.TrimLeft(name, "._")
}

// ObjectName builds the stored name of a patient's photo, "<patientID>_<file>".
func ObjectName(patientID, filename string) (string, error) {
	clean := SanitizeFilename(filename)
	if clean == "" {
		return "", ErrEmptyName
	}
	if _, ok := allowedExt[strings.ToLower(filepath.Ext(clean))]; !ok {
		return "", ErrUnsupportedType
	}
	return SanitizeFilename(patientID) + "_" + clean, nil
}

// ContentType maps a stored name to its MIME type.
func ContentType(name string) string {
	if ct, ok := allowedExt[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// NewStore builds the store selected by PHOTO_STORE.
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.PhotoStore {
	case "", "local":
		return NewLocalStore(cfg.UploadDir)
	case "s3":
		return NewS3Store(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unsupported PHOTO_STORE %q", cfg.PhotoStore)
	}
}
