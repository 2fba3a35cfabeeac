// Package platform smooths over filesystem permission differences between
// Unix and Windows for generated files.
package platform
