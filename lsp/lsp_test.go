package lsp

import (
	"strings"
	"testing"

	"github.com/dhamidi/arith/sheet"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnostics(t *testing.T) {
	f := sheet.Parse("d.arith", []byte("1 + 1\n1 + yolo\n( 2 * 3 ) )\n"))

	diags := diagnostics(f)
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(diags))
	}

	first := diags[0]
	if first.Range.Start.Line != 1 || first.Range.Start.Character != 4 || first.Range.End.Character != 8 {
		t.Errorf("range = %+v, want line 1 characters 4-8", first.Range)
	}
	if first.Severity == nil || *first.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity = %v, want error", first.Severity)
	}
	if !strings.Contains(first.Message, "yolo") {
		t.Errorf("message = %q, want it to name the token", first.Message)
	}
	if strings.Contains(first.Message, "d.arith") {
		t.Errorf("message = %q should not repeat the position", first.Message)
	}

	second := diags[1]
	if second.Range.Start.Line != 2 || second.Range.Start.Character != 10 || second.Range.End.Character != 11 {
		t.Errorf("range = %+v, want line 2 characters 10-11", second.Range)
	}
	if !strings.Contains(second.Message, "mismatched parentheses") {
		t.Errorf("message = %q, want mismatched parentheses", second.Message)
	}
}

func TestDiagnosticsClear(t *testing.T) {
	diags := diagnostics(nil)
	if diags == nil || len(diags) != 0 {
		t.Errorf("diagnostics(nil) = %#v, want empty non-nil slice", diags)
	}
}

func TestDiagnosticsEmptyPiece(t *testing.T) {
	f := sheet.Parse("e.arith", []byte("1  + 1"))
	diags := diagnostics(f)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	r := diags[0].Range
	if r.Start.Character != 2 || r.End.Character != 3 {
		t.Errorf("range = %+v, want characters 2-3", r)
	}
}

func TestHoverAt(t *testing.T) {
	f := sheet.Parse("h.arith", []byte("# comment\n( 5 + 6 ) * 3\nyolo\n"))

	h := hoverAt(f, 2)
	if h == nil {
		t.Fatal("hoverAt(2) = nil, want hover")
	}
	content, ok := h.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("Contents = %T, want MarkupContent", h.Contents)
	}
	if !strings.Contains(content.Value, "**33**") {
		t.Errorf("hover = %q, want value 33", content.Value)
	}
	if h.Range == nil || h.Range.Start.Line != 1 {
		t.Errorf("range = %+v, want line 1", h.Range)
	}

	if hoverAt(f, 1) != nil {
		t.Errorf("hover on a comment line should be nil")
	}
	if hoverAt(f, 3) != nil {
		t.Errorf("hover on a failing line should be nil")
	}
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"file:///tmp/a.arith", "/tmp/a.arith"},
		{"file:///tmp/dir/../b.arith", "/tmp/b.arith"},
		{"untitled:Untitled-1", "untitled:Untitled-1"},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			got, err := uriToPath(tt.uri)
			if err != nil {
				t.Fatalf("uriToPath error: %v", err)
			}
			if got != tt.want {
				t.Errorf("uriToPath(%q) = %q, want %q", tt.uri, got, tt.want)
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	ls := NewServer("test", false)
	if ls.server == nil {
		t.Fatal("glsp server not created")
	}
	if ls.handler.TextDocumentHover == nil || ls.handler.TextDocumentDidOpen == nil {
		t.Errorf("hover and didOpen handlers must be registered")
	}
	if ls.workspace == nil || ls.workspace.RootDir() != "." {
		t.Errorf("workspace = %v, want one rooted at %q", ls.workspace, ".")
	}
}
