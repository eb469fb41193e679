// Package model defines the data structures shared by the apiprep layers.
package model

// Path represents a file system path.
type Path string

// NodeKind classifies a filesystem entry met during traversal.
type NodeKind int

const (
	// NodeFile is a regular file (or anything that is not a directory).
	NodeFile NodeKind = iota
	// NodeDirectory is a directory whose children are visited depth-first.
	NodeDirectory
)

// Node is a single entry of a source tree.
type Node struct {
	Path Path
	Kind NodeKind
}
