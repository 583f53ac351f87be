// Package apperr defines shared error sentinels for the dangler application.
// It is a leaf package with no internal imports, allowing any package to use
// the sentinels without creating import cycles.
package apperr
