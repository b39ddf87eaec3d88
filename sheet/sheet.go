// Package sheet handles worksheets: text files holding one arithmetic
// expression per line. Blank lines and lines starting with '#' are
// ignored.
package sheet

import (
	"strings"

	"github.com/dhamidi/arith/expr"
	"github.com/tliron/commonlog"
)

// Ext is the file extension of worksheets.
const Ext = ".arith"

var log = commonlog.GetLogger("arith.sheet")

// Entry is one expression line of a worksheet. Line is 1-based.
// Expr and Value are only meaningful when Err is nil.
type Entry struct {
	Line   int
	Source string
	Expr   expr.Expression
	Value  int
	Err    error
}

type File struct {
	Path    string
	Content []byte
	Entries []Entry
}

// Parse evaluates every expression line of content. A failing line is
// recorded in its Entry and does not stop the others.
func Parse(path string, content []byte) *File {
	f := &File{Path: path, Content: content}
	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if isSkipped(line) {
			continue
		}
		entry := Entry{Line: i + 1, Source: line}
		entry.Expr, entry.Err = expr.Parse(line, expr.WithFile(path), expr.WithStartLine(i+1))
		if entry.Err == nil {
			entry.Value = entry.Expr.Eval()
		}
		f.Entries = append(f.Entries, entry)
	}
	log.Debugf("parsed %s: %d entries, %d errors", path, len(f.Entries), len(f.Errors()))
	return f
}

func isSkipped(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// Errors returns the entries that failed to parse.
func (f *File) Errors() []Entry {
	var result []Entry
	for _, e := range f.Entries {
		if e.Err != nil {
			result = append(result, e)
		}
	}
	return result
}

// EntryAt returns the entry on the given 1-based line.
func (f *File) EntryAt(line int) (Entry, bool) {
	for _, e := range f.Entries {
		if e.Line == line {
			return e, true
		}
	}
	return Entry{}, false
}
