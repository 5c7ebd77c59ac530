package template

import (
	"fmt"
	html "html/template"
	"io/fs"
	"path"
)

// Parser parses HTML templates found in a set of fs.FS with the functions provided.
//
// A *Parser is safe for concurrent use: AddFn returns a copy instead of mutating.
type Parser struct {
	fs  fs.FS
	fns html.FuncMap
}

// NewParser constructs a *Parser reading templates from the provided filesystems.
// When more than one holds a template of the same name, the earliest wins.
//
// Every *Parser starts with the currentUser, env, nonce, and rootURL functions defined
// so templates referencing them always parse.
func NewParser(fss []fs.FS, opts ...ParserOptFn) *Parser {
	nonEmpty := make([]fs.FS, 0, len(fss))
	for _, f := range fss {
		if f != nil {
			nonEmpty = append(nonEmpty, f)
		}
	}

	p := &Parser{
		fs:  newMergeFS(nonEmpty...),
		fns: make(html.FuncMap),
	}

	for _, fn := range []func() (string, any){
		func() (string, any) { return CurrentUser(nil) },
		func() (string, any) { return Env("") },
		func() (string, any) { return Nonce() },
		func() (string, any) { return RootURL(nil) },
	} {
		name, f := fn()
		p.fns[name] = f
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// AddFn returns a copy of p including the named function in its function map.
func (p *Parser) AddFn(name string, fn any) *Parser {
	cp := &Parser{fs: p.fs, fns: make(html.FuncMap, len(p.fns)+1)}
	for k, v := range p.fns {
		cp.fns[k] = v
	}

	if name != "" && fn != nil {
		cp.fns[name] = fn
	}

	return cp
}

// Parse parses files found in the *Parser's filesystems with those functions provided previously.
// The returned template is named after the first file.
func (p *Parser) Parse(fps ...string) (*html.Template, error) {
	files := make([]string, 0, len(fps))
	for _, fp := range fps {
		if fp != "" {
			files = append(files, fp)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFiles)
	}

	return html.New(path.Base(files[0])).Funcs(p.fns).ParseFS(p.fs, files...)
}
