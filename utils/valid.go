// utils/valid.go
package utils

import (
	"errors"
	"html"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// MaxPetPhotoSize is the upload limit for pet photos (5MB).
const MaxPetPhotoSize = 5 * 1024 * 1024

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// Allowed pet photo content types and extensions
	allowedPhotoTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
	}
	allowedPhotoExts = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
	}
)

// SanitizeEmail sanitizes and validates an email address
func SanitizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	email = strings.ToLower(email)

	if !emailRegex.MatchString(email) {
		return "", errors.New("Email not valid")
	}

	return email, nil
}

// IsStrongPassword reports whether a password meets the strength
// policy: at least 8 characters with an uppercase letter, a lowercase
// letter, a digit and a symbol.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSymbol
}

// SanitizeInput sanitizes user input to prevent XSS and injection attacks
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = html.EscapeString(input)

	// Remove control characters
	input = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, input)

	return input
}

// ErrUnsupportedPhotoType is returned for uploads that are not
// jpeg/jpg/png; ErrPhotoTooLarge for uploads over MaxPetPhotoSize.
var (
	ErrUnsupportedPhotoType = errors.New("Only JPEG, JPG, and PNG files are allowed")
	ErrPhotoTooLarge        = errors.New("File too large. Maximum size is 5MB")
)

// ValidatePetPhoto checks the size and type of an uploaded pet photo.
func ValidatePetPhoto(file *multipart.FileHeader) error {
	if file.Size > MaxPetPhotoSize {
		return ErrPhotoTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "" && !allowedPhotoTypes[contentType] {
		return ErrUnsupportedPhotoType
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExts[ext] {
		return ErrUnsupportedPhotoType
	}

	return nil
}
