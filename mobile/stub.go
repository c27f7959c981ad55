//go:build !mobile

// Package mobile only has content with -tags mobile. This stub keeps the
// package buildable otherwise.
package mobile

// Dummy is exported so the package is never empty.
func Dummy() {}
