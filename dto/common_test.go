package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"footyref/utils"
)

func TestFormatYear(t *testing.T) {
	assert.Nil(t, FormatYear(nil))

	founded := time.Date(1992, time.January, 1, 0, 0, 0, 0, time.UTC)
	got := FormatYear(&founded)
	assert.NotNil(t, got)
	assert.Equal(t, "1992", *got)
}

func TestResolveImageURL(t *testing.T) {
	assert.Nil(t, ResolveImageURL(nil))
	assert.Nil(t, ResolveImageURL(utils.Ptr("")))

	external := ResolveImageURL(utils.Ptr("https://cdn.example.com/logo.png"))
	assert.Equal(t, "https://cdn.example.com/logo.png", *external)

	stored := ResolveImageURL(utils.Ptr("leagues/abc.png"))
	assert.Equal(t, "/uploads/leagues/abc.png", *stored)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))

	long := strings.Repeat("a", 120)
	got := Truncate(long, DescriptionPreviewLen)
	assert.Equal(t, strings.Repeat("a", 100)+"…", got)

	// Rune-safe: multi-byte characters are never split
	assert.Equal(t, "héll…", Truncate("héllo wörld", 4))
}

func TestTruncateDescription(t *testing.T) {
	assert.Nil(t, TruncateDescription(nil))

	long := strings.Repeat("x", 150)
	got := TruncateDescription(&long)
	assert.Len(t, []rune(*got), DescriptionPreviewLen+1)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(45, 15))
}
