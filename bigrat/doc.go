// Package bigrat — see the file-level doc comment in rational.go for the
// package overview; this file holds only the package clause, mirroring
// lvlath's per-package doc.go convention.
package bigrat
