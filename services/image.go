package services

import (
	"footyref/dto"
	"footyref/lib/filestore"
	"footyref/logger"
)

// validateImage runs the branch of validation that matches the input's
// variant. External URLs were already length-checked at binding time.
func validateImage(in dto.ImageInput, field string, errs FieldErrors) {
	if in.Kind == dto.ImageUploaded {
		validateImageUpload(in.File, field, errs)
	}
}

// storeImage persists a validated image input and returns the value to
// write on the row: a relative path for uploads, the URL itself for
// external references, nil for none.
func storeImage(in dto.ImageInput, namespace string) (*string, error) {
	switch in.Kind {
	case dto.ImageUploaded:
		path, err := filestore.Save(in.File, namespace)
		if err != nil {
			return nil, err
		}
		return &path, nil
	case dto.ImageExternal:
		url := in.URL
		return &url, nil
	default:
		return nil, nil
	}
}

// cleanupImage removes a previously stored image as a compensating
// action after the row write. The file system is not transactionally
// coupled to the database, so a failure here is logged and surfaced as
// a warning on an otherwise successful response, never as an error.
// External URLs and missing files are no-ops.
func cleanupImage(value *string) string {
	if value == nil || *value == "" {
		return ""
	}
	if err := filestore.Delete(*value); err != nil {
		logger.Log.Warnw("Failed to delete stored image", "path", *value, "error", err)
		return "stored image could not be removed: " + *value
	}
	return ""
}

// joinWarnings folds multiple compensating-action warnings into one
func joinWarnings(warnings []string) string {
	joined := ""
	for _, w := range warnings {
		if w == "" {
			continue
		}
		if joined != "" {
			joined += "; "
		}
		joined += w
	}
	return joined
}
