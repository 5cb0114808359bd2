package upload

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Kind separates the two media categories, which have distinct size
// ceilings and extension filters.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

var allowedExts = map[Kind]map[string]bool{
	KindImage: {".jpg": true, ".jpeg": true, ".png": true},
	KindVideo: {".mp4": true, ".mov": true, ".avi": true},
}

var filePrefix = map[Kind]string{
	KindImage: "room-img-",
	KindVideo: "room-vid-",
}

// Service stores media files and hands back the generated filename.
// Uploading and attaching media to a listing are two separate steps: the
// caller includes returned filenames in a later create or update call.
type Service struct {
	store    *Store
	maxImage int64
	maxVideo int64
}

func NewService(store *Store, maxImage, maxVideo int64) *Service {
	return &Service{store: store, maxImage: maxImage, maxVideo: maxVideo}
}

// Save validates and stores one uploaded file, returning the stored
// filename.
func (s *Service) Save(fileHeader *multipart.FileHeader, kind Kind) (string, error) {
	if fileHeader == nil || fileHeader.Size == 0 {
		return "", ErrNoFile
	}
	if fileHeader.Size > s.maxSize(kind) {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExts[kind][ext] {
		return "", ErrBadFileType
	}

	filename := filePrefix[kind] + uuid.New().String() + ext
	if err := s.store.Save(fileHeader, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// Remover exposes the blob store for best-effort cleanup by other domains.
func (s *Service) Remover() *Store {
	return s.store
}

func (s *Service) maxSize(kind Kind) int64 {
	if kind == KindVideo {
		return s.maxVideo
	}
	return s.maxImage
}
