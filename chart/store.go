package chart

import (
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultStoreSize is the number of images kept when no size is configured.
const DefaultStoreSize = 256

// ImageStore keeps rendered PNG images in memory for the process lifetime,
// evicting the least recently used image once full. It is safe for
// concurrent use.
type ImageStore struct {
	images *lru.Cache[string, []byte]
}

// NewImageStore creates a store holding at most size images.
func NewImageStore(size int) (*ImageStore, error) {
	if size <= 0 {
		size = DefaultStoreSize
	}
	images, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create image cache: %w", err)
	}
	return &ImageStore{images: images}, nil
}

// Put stores an image and returns its id.
func (s *ImageStore) Put(png []byte) string {
	id := uuid.NewString()
	s.images.Add(id, png)
	return id
}

// Get returns the image stored under id.
func (s *ImageStore) Get(id string) ([]byte, bool) {
	return s.images.Get(id)
}

// Len returns the number of stored images.
func (s *ImageStore) Len() int {
	return s.images.Len()
}
