package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Renamer performs a same-directory rename on the filesystem.
type Renamer interface {
	Rename(from, to Path) error
}

// PathUnwrapError reports a path that cannot be turned into a Replacement.
type PathUnwrapError struct {
	Path  Path
	Field string
}

func (e *PathUnwrapError) Error() string {
	return fmt.Sprintf("unable to extract %s from %q", e.Field, string(e.Path))
}

// InvalidStemError reports a new stem that would move the file or cannot
// name one.
type InvalidStemError struct {
	Stem string
}

func (e *InvalidStemError) Error() string {
	return fmt.Sprintf("invalid file stem %q: must be a non-empty name without path separators", e.Stem)
}

// ValidateStem checks that stem names a file in the same directory.
func ValidateStem(stem string) error {
	switch {
	case stem == "", stem == ".", stem == "..":
		return &InvalidStemError{Stem: stem}
	case strings.ContainsRune(stem, '/'), strings.ContainsRune(stem, filepath.Separator):
		return &InvalidStemError{Stem: stem}
	case !utf8.ValidString(stem), strings.ContainsRune(stem, 0):
		return &InvalidStemError{Stem: stem}
	default:
		return nil
	}
}

// Replacement describes an in-place rename of one file: the directory never
// changes, only the stem does.
type Replacement struct {
	Parent      Path   `yaml:"parent"`
	FileStem    string `yaml:"file_stem"`
	NewFileStem string `yaml:"new_file_stem"`
	Extension   string `yaml:"extension,omitempty"`
}

// NewReplacement splits path into its parent, stem and extension. The new
// stem starts out equal to the current one.
func NewReplacement(path Path) (Replacement, error) {
	raw := string(path)
	if raw == "" {
		return Replacement{}, &PathUnwrapError{Path: path, Field: "parent"}
	}

	name := filepath.Base(raw)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return Replacement{}, &PathUnwrapError{Path: path, Field: "file stem"}
	}

	stem, ext := SplitFileName(name)
	if !utf8.ValidString(stem) {
		return Replacement{}, &PathUnwrapError{Path: path, Field: "file stem"}
	}

	if !utf8.ValidString(ext) {
		return Replacement{}, &PathUnwrapError{Path: path, Field: "extension"}
	}

	return Replacement{
		Parent:      canonicalParent(filepath.Dir(raw)),
		FileStem:    stem,
		NewFileStem: stem,
		Extension:   ext,
	}, nil
}

// SplitFileName separates a file name into stem and extension. Dot files
// without a second dot and names ending with a dot have no extension.
func SplitFileName(name string) (string, string) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return name, ""
	}

	return name[:idx], name[idx+1:]
}

func canonicalParent(dir string) Path {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Path(dir)
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return Path(resolved)
	}

	return Path(abs)
}

// FileName returns the current file name.
func (r Replacement) FileName() string {
	return joinName(r.FileStem, r.Extension)
}

// NewFileName returns the file name after the rename.
func (r Replacement) NewFileName() string {
	return joinName(r.NewFileStem, r.Extension)
}

// Path returns the current location of the file.
func (r Replacement) Path() Path {
	return Path(filepath.Join(string(r.Parent), r.FileName()))
}

// NewPath returns the location of the file after the rename.
func (r Replacement) NewPath() Path {
	return Path(filepath.Join(string(r.Parent), r.NewFileName()))
}

// Changed reports whether executing the replacement would touch the filesystem.
func (r Replacement) Changed() bool {
	return r.FileStem != r.NewFileStem
}

// WithNewFileStem returns a copy of r proposing stem instead.
func (r Replacement) WithNewFileStem(stem string) Replacement {
	r.NewFileStem = stem
	return r
}

// Execute renames the file. An unchanged replacement is a no-op. A new stem
// leaving the parent directory is refused with an *InvalidStemError. Errors
// from the renamer are returned untouched.
func (r Replacement) Execute(renamer Renamer) (Replacement, error) {
	if !r.Changed() {
		return r, nil
	}

	if err := ValidateStem(r.NewFileStem); err != nil {
		return r, err
	}

	if err := renamer.Rename(r.Path(), r.NewPath()); err != nil {
		return r, err
	}

	return r, nil
}

func (r Replacement) String() string {
	ext := ""
	if r.Extension != "" {
		ext = "." + r.Extension
	}

	return fmt.Sprintf("%s%c{%s => %s}%s", string(r.Parent), filepath.Separator, r.FileStem, r.NewFileStem, ext)
}

func joinName(stem, ext string) string {
	if ext == "" {
		return stem
	}

	return stem + "." + ext
}
