// Package fs provides a filesystem-backed implementation of the
// GuideStore driven port.
//
// Guides live under a single root directory with one subdirectory per
// category; a guide's name is its file stem without the .md extension.
// The store re-reads the directory tree on every call, so edits to
// guides on disk are visible immediately without a restart. No index or
// cache is kept.
package fs
