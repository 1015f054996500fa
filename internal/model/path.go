// Package model defines the values shared by the renaming pipeline.
package model

// Path represents a file system path.
type Path string

// Paths converts command line arguments into paths, keeping their order.
func Paths(args []string) []Path {
	paths := make([]Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, Path(arg))
	}

	return paths
}
