package dto

import (
	"mime/multipart"
)

// ImageKind tags the three shapes an image input can take
type ImageKind int

const (
	ImageNone ImageKind = iota
	ImageUploaded
	ImageExternal
)

// ImageInput is the tagged variant for image submissions: an uploaded
// file, an external URL, or nothing. Validation and storage branch on
// Kind rather than on string-prefix checks.
type ImageInput struct {
	Kind ImageKind
	File *multipart.FileHeader
	URL  string
}

// NewImageInput resolves a form submission into the variant. An uploaded
// file wins over a URL when both are supplied.
func NewImageInput(file *multipart.FileHeader, url string) ImageInput {
	if file != nil {
		return ImageInput{Kind: ImageUploaded, File: file}
	}
	if url != "" {
		return ImageInput{Kind: ImageExternal, URL: url}
	}
	return ImageInput{Kind: ImageNone}
}
