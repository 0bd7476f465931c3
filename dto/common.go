package dto

import (
	"time"

	"footyref/lib/filestore"
)

// NotAvailable is the display fallback for unresolvable relationships
const NotAvailable = "N/A"

// DescriptionPreviewLen is how many runes of a description list views show
const DescriptionPreviewLen = 100

// YearOf renders a date at year granularity for public views
func YearOf(t time.Time) string {
	return t.Format("2006")
}

// FormatYear renders an optional date at year granularity, nil stays nil
func FormatYear(t *time.Time) *string {
	if t == nil {
		return nil
	}
	year := YearOf(*t)
	return &year
}

// FormatDate renders a human-readable date for admin views
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// ResolveImageURL maps a stored image value to a client-usable URL.
// Absolute URLs pass through unchanged; relative paths are prefixed
// with the public uploads mount. Empty values degrade to nil.
func ResolveImageURL(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	if filestore.IsExternalURL(*value) {
		return value
	}
	resolved := "/uploads/" + *value
	return &resolved
}

// Truncate clips display text to at most n runes, ellipsis-terminated.
// Display-only: stored data is never mutated.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}

// TruncateDescription clips an optional description for list views
func TruncateDescription(s *string) *string {
	if s == nil {
		return nil
	}
	preview := Truncate(*s, DescriptionPreviewLen)
	return &preview
}

// TotalPages computes the last page number for a paginated result set
func TotalPages(totalCount int64, pageSize int) int {
	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}
	return totalPages
}
