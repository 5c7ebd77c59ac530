// Package templatetest builds in-memory template filesystems for unit tests,
// avoiding testdata/ directories.
package templatetest

import (
	"io/fs"
	"testing/fstest"

	"github.com/xy-planning-network/wanderlust/http/template"
)

// A File is a template held in memory under Name.
type File struct {
	Name string
	Data []byte
}

// NewMockFile constructs a File holding data.
func NewMockFile(name string, data []byte) File { return File{Name: name, Data: data} }

// NewMockFS constructs an fs.FS holding files.
// A later File replaces an earlier one of the same Name.
func NewMockFS(files ...File) fs.FS {
	mfs := make(fstest.MapFS, len(files))
	for _, f := range files {
		mfs[f.Name] = &fstest.MapFile{Data: f.Data}
	}

	return mfs
}

// NewParser constructs a *template.Parser over files.
func NewParser(files ...File) *template.Parser {
	return template.NewParser([]fs.FS{NewMockFS(files...)})
}
