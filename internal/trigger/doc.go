// Package trigger decides whether a directory looks like a project of a given
// kind by matching marker file names, file extensions and folder names.
package trigger
