package utils

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeEmail_Valid(t *testing.T) {
	email, err := SanitizeEmail("  User@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestSanitizeEmail_Invalid(t *testing.T) {
	for _, email := range []string{"", "plainaddress", "missing@tld", "@no-local.com", "spaces in@mail.com"} {
		_, err := SanitizeEmail(email)
		assert.Error(t, err, "expected %q to be rejected", email)
	}
}

func TestIsStrongPassword_Strong(t *testing.T) {
	assert.True(t, IsStrongPassword("Str0ng!Pass"))
}

func TestIsStrongPassword_Weak(t *testing.T) {
	cases := map[string]string{
		"short":       "S1!a",
		"no upper":    "str0ng!pass",
		"no lower":    "STR0NG!PASS",
		"no digit":    "Strong!Pass",
		"no symbol":   "Str0ngPass1",
		"empty":       "",
		"only digits": "12345678",
	}
	for name, password := range cases {
		assert.False(t, IsStrongPassword(password), name)
	}
}

func TestSanitizeInput_StripsControlAndEscapes(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;", SanitizeInput("<b>hi</b>"))
	assert.Equal(t, "ab", SanitizeInput("a\x00b\n"))
	assert.Equal(t, "trimmed", SanitizeInput("  trimmed  "))
}

func photoHeader(filename, contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{
		Filename: filename,
		Header:   header,
		Size:     size,
	}
}

func TestValidatePetPhoto_Accepted(t *testing.T) {
	for _, f := range []*multipart.FileHeader{
		photoHeader("dog.jpg", "image/jpeg", 1024),
		photoHeader("cat.PNG", "image/png", MaxPetPhotoSize),
		photoHeader("bird.jpeg", "", 1024),
	} {
		assert.NoError(t, ValidatePetPhoto(f), f.Filename)
	}
}

func TestValidatePetPhoto_UnsupportedType(t *testing.T) {
	for _, f := range []*multipart.FileHeader{
		photoHeader("clip.gif", "image/gif", 1024),
		photoHeader("doc.pdf", "application/pdf", 1024),
		photoHeader("noext", "", 1024),
	} {
		err := ValidatePetPhoto(f)
		assert.ErrorIs(t, err, ErrUnsupportedPhotoType, f.Filename)
	}
}

func TestValidatePetPhoto_TooLarge(t *testing.T) {
	err := ValidatePetPhoto(photoHeader("big.jpg", "image/jpeg", MaxPetPhotoSize+1))
	assert.ErrorIs(t, err, ErrPhotoTooLarge)
}
