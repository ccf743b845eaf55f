package core

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxImageBytes caps the decoded size of a profile picture.
const DefaultMaxImageBytes int64 = 2 << 20 // 2 MiB

// DefaultProfilePicture is the placeholder every record starts with,
// a 1x1 transparent PNG.
const DefaultProfilePicture = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// ImageRef is an image embedded as a base64 data URL, the storable
// reference the file-ingestion side hands over.
type ImageRef struct {
	MIME string
	Data []byte
}

// EncodeImageRef builds the storable data URL for an image payload.
func EncodeImageRef(mime string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}

// ParseImageRef splits a data URL into its MIME type and decoded
// payload.
func ParseImageRef(ref string) (*ImageRef, error) {
	rest, ok := strings.CutPrefix(ref, "data:")
	if !ok {
		return nil, errors.New("not a data URL")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, errors.New("data URL has no payload")
	}

	mime, encoding, _ := strings.Cut(meta, ";")
	if encoding != "base64" {
		return nil, fmt.Errorf("unsupported data URL encoding %q", encoding)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}

	return &ImageRef{MIME: mime, Data: data}, nil
}

// ValidateImageRef enforces the upload constraints before anything is
// written: the payload must be an image and must not exceed maxBytes.
func ValidateImageRef(ref string, maxBytes int64) error {
	img, err := ParseImageRef(ref)
	if err != nil {
		return ErrUnsupportedMediaType
	}
	if !strings.HasPrefix(img.MIME, "image/") {
		return ErrUnsupportedMediaType
	}
	if int64(len(img.Data)) > maxBytes {
		return ErrPayloadTooLarge
	}
	return nil
}
