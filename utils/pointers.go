package utils

// Ptr returns a pointer to the given value. Handy for optional columns
// in seed data and tests.
func Ptr[T any](v T) *T {
	return &v
}
