package service

import "context"

// MediaStore abstracts the opaque object store holding product media.
// Keys are slash-separated strings; every asset of a product lives under a
// single key prefix so a prefix delete removes all of them.
type MediaStore interface {
	// Upload stores data at key and returns a durable public URL for it.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// List returns the keys stored under the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// DeletePrefix removes every blob under the prefix and reports how many
	// were deleted. A partial failure returns both the count so far and the
	// first error encountered.
	DeletePrefix(ctx context.Context, prefix string) (int, error)

	// Close releases the underlying bucket.
	Close() error
}
