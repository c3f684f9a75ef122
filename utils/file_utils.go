// utils/file_utils.go
package utils

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// Base directory for storing uploaded pet photos, served at /images
	photoBaseDir = "images"
	// Directory for generated thumbnails
	thumbnailDir = "images/thumbnails"
	// Thumbnail edge length in pixels
	thumbnailSize = 300
)

// InitializeStorage creates the directories for photo storage.
func InitializeStorage() error {
	for _, dir := range []string{photoBaseDir, thumbnailDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}
	return nil
}

// SavePetPhoto stores an uploaded photo under a collision-free name and
// generates a square thumbnail beside it. Returns the stored filename.
// Thumbnail failures are logged, not propagated; the original photo is
// what the listing depends on.
func SavePetPhoto(file *multipart.FileHeader) (string, error) {
	if err := InitializeStorage(); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := uuid.New().String() + ext
	fullPath := filepath.Join(photoBaseDir, filename)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to save file: %v", err)
	}

	if err := generateThumbnail(fullPath, filename); err != nil {
		log.Printf("Error generating thumbnail for %s: %v", filename, err)
	}

	return filename, nil
}

// generateThumbnail writes a square thumbnail for a stored photo.
func generateThumbnail(photoPath, filename string) error {
	img, err := imaging.Open(photoPath)
	if err != nil {
		return err
	}

	thumb := imaging.Thumbnail(img, thumbnailSize, thumbnailSize, imaging.Lanczos)
	return imaging.Save(thumb, filepath.Join(thumbnailDir, filename))
}

// RemovePetPhoto deletes a stored photo and its thumbnail.
func RemovePetPhoto(filename string) {
	// Guard against path traversal from stored data
	filename = filepath.Base(filename)

	for _, path := range []string{
		filepath.Join(photoBaseDir, filename),
		filepath.Join(thumbnailDir, filename),
	} {
		if _, err := os.Stat(path); err == nil {
			if err := os.Remove(path); err != nil {
				log.Printf("Error removing file %s: %v", path, err)
			}
		}
	}
}
