package services

import (
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"
)

// FieldErrors maps field names to validation messages
type FieldErrors map[string]string

// ValidationError carries per-field messages for a rejected mutation.
// No partial write happens when one of these is returned.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// maxImageBytes is the upload size ceiling for logos and images
const maxImageBytes = 5 << 20

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// validateImageUpload checks size and extension of an uploaded image
func validateImageUpload(file *multipart.FileHeader, field string, errs FieldErrors) {
	if file.Size > maxImageBytes {
		errs[field] = "image must be 5MB or smaller"
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		errs[field] = "image must be one of: jpeg, jpg, png, gif, webp"
	}
}

// parseFoundedYear accepts a full date or a bare year and normalizes it
// to January 1 of that year. The stored value is only ever meaningful
// at year granularity.
func parseFoundedYear(value, field string, errs FieldErrors) *time.Time {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		normalized := yearStart(t.Year())
		return &normalized
	}
	if t, err := time.Parse("2006", value); err == nil {
		normalized := yearStart(t.Year())
		return &normalized
	}
	errs[field] = "must be a date (YYYY-MM-DD) or a 4-digit year"
	return nil
}

func yearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// optional converts an empty form string to nil
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
