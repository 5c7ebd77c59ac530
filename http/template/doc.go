// Package template parses the HTML templates a wanderlust app renders,
// layering html/template over one or more fs.FS.
package template
