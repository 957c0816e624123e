package blobstore

import "context"

//go:generate mockgen -source=blobstore.go -destination=mock_blobstore.go -package=blobstore

// Folders used as logical namespaces per entity kind.
const (
	FolderUsers         = "users"
	FolderAuctions      = "auctions"
	FolderPaymentProofs = "payment-proofs"
)

// UploadResult identifies a stored blob.
type UploadResult struct {
	PublicID string
	URL      string
}

// BlobStore stores binary image content under a logical folder and returns
// a stable identifier plus a public URL.
type BlobStore interface {
	Upload(ctx context.Context, content []byte, contentType, folder string) (UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}
