// Package lsp serves worksheets over the Language Server Protocol:
// lines that fail to parse become diagnostics, hovering a line shows
// its value.
package lsp

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dhamidi/arith/expr"
	"github.com/dhamidi/arith/format"
	"github.com/dhamidi/arith/sheet"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "arith"

var log = commonlog.GetLogger("arith.lsp")

type Server struct {
	workspace *sheet.Workspace
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewServer(version string, debug bool) *Server {
	ls := &Server{
		version:   version,
		workspace: sheet.NewWorkspace("."),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
		TextDocumentHover:     ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, debug)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.workspace = sheet.NewWorkspace(rootDir)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.HoverProvider = true

	log.Infof("initialized workspace at %s", rootDir)

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return ls.workspace.ScanAll()
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	return ls.update(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		return ls.update(ctx, params.TextDocument.URI, []byte(textChange.Text))
	}
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		return ls.update(ctx, params.TextDocument.URI, []byte(*params.Text))
	}
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	f, err := ls.workspace.ScanFile(path)
	if err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}
	ls.publish(ctx, params.TextDocument.URI, f)
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.workspace.RemoveFile(path)
	ls.publish(ctx, params.TextDocument.URI, nil)
	return nil
}

func (ls *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	f := ls.workspace.GetFile(path)
	if f == nil {
		return nil, nil
	}
	return hoverAt(f, int(params.Position.Line)+1), nil
}

func (ls *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, content []byte) error {
	path, err := uriToPath(uri)
	if err != nil {
		return nil
	}
	f := ls.workspace.UpdateFile(path, content)
	ls.publish(ctx, uri, f)
	return nil
}

func (ls *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, f *sheet.File) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics(f),
	})
}

// diagnostics reports one error per failing line. A nil file yields an
// empty list, which clears earlier diagnostics on the client.
func diagnostics(f *sheet.File) []protocol.Diagnostic {
	result := []protocol.Diagnostic{}
	if f == nil {
		return result
	}
	for _, e := range f.Errors() {
		severity := protocol.DiagnosticSeverityError
		source := lsName
		result = append(result, protocol.Diagnostic{
			Range:    errorRange(e),
			Severity: &severity,
			Source:   &source,
			Message:  diagnosticMessage(e.Err),
		})
	}
	return result
}

func diagnosticMessage(err error) string {
	var perr *expr.Error
	if errors.As(err, &perr) {
		msg := perr.Err.Error()
		if perr.Message != "" {
			msg += ": " + perr.Message
		}
		return msg
	}
	return err.Error()
}

// errorRange covers the offending piece, or the whole line when the
// error carries no position.
func errorRange(e sheet.Entry) protocol.Range {
	line := protocol.UInteger(e.Line - 1)
	var perr *expr.Error
	if !errors.As(e.Err, &perr) || perr.Span.Start.Column == 0 {
		return protocol.Range{
			Start: protocol.Position{Line: line},
			End:   protocol.Position{Line: line, Character: protocol.UInteger(len(e.Source))},
		}
	}
	start := perr.Span.Start.Column - 1
	end := perr.Span.End.Column - 1
	if end <= start {
		end = start + 1
	}
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: protocol.UInteger(start)},
		End:   protocol.Position{Line: line, Character: protocol.UInteger(end)},
	}
}

func hoverAt(f *sheet.File, line int) *protocol.Hover {
	e, ok := f.EntryAt(line)
	if !ok || e.Err != nil {
		return nil
	}
	rng := protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(line - 1)},
		End:   protocol.Position{Line: protocol.UInteger(line - 1), Character: protocol.UInteger(len(e.Source))},
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: fmt.Sprintf("`%s` = **%d**", format.Infix(e.Expr), e.Value),
		},
		Range: &rng,
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
