package blobstore

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"

	"auction-platform/internal/auctionerrors"
)

// allowedImageTypes is the fixed allow-list shared by every upload path.
var allowedImageTypes = []string{"image/png", "image/jpeg", "image/webp"}

// DetectImageType sniffs the content and returns its MIME type when it is
// on the allow-list. The declared Content-Type header is ignored; only the
// bytes decide.
func DetectImageType(content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("blobstore: empty image: %w", auctionerrors.ErrValidation)
	}
	detected := mimetype.Detect(content)
	for _, allowed := range allowedImageTypes {
		if detected.Is(allowed) {
			return allowed, nil
		}
	}
	return "", fmt.Errorf("blobstore: %s: %w", detected.String(), auctionerrors.ErrUnsupportedMedia)
}
