// Command ecmaparse-lsp is a minimal Language Server Protocol server
// that republishes syntax diagnostics for open JavaScript documents
// (spec.md §6 External Interfaces).
package main

import (
	"os"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dewolfson/ecmaparse/js"
)

const lsName = "ecmaparse-lsp"

type langServer struct {
	vm      *js.VM
	handler protocol.Handler
	server  *server.Server
	docs    map[string][]byte
}

func newLangServer() *langServer {
	ls := &langServer{
		vm:   js.NewVM(nil),
		docs: make(map[string][]byte),
	}
	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
	}
	ls.server = server.NewServer(&ls.handler, lsName, false)
	return ls
}

func (ls *langServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (interface{}, error) {
	capabilities := ls.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}
	version := "0.1.0"
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func (ls *langServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *langServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *langServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	ls.docs[uri] = []byte(params.TextDocument.Text)
	ls.publishDiagnostics(ctx, uri)
	return nil
}

func (ls *langServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.docs[uri] = []byte(whole.Text)
		}
	}
	ls.publishDiagnostics(ctx, uri)
	return nil
}

func (ls *langServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	delete(ls.docs, uri)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// publishDiagnostics reparses the document in SyntaxOnly mode (the
// builder a language server wants: it never needs real AST nodes, only
// the pass/fail verdict and position) and republishes exactly zero or
// one diagnostic, since the grammar's error model stops at the first
// syntax error (spec.md §7).
func (ls *langServer) publishDiagnostics(ctx *glsp.Context, uri string) {
	src := ls.docs[uri]
	_, err := js.Parse(ls.vm, src, js.Options{Builder: js.NewSyntaxOnlyBuilder()})

	diagnostics := []protocol.Diagnostic{}
	if err != nil {
		if pe, ok := js.AsParseError(err); ok {
			line := protocol.UInteger(0)
			if pe.Pos.Line > 0 {
				line = protocol.UInteger(pe.Pos.Line - 1)
			}
			severity := protocol.DiagnosticSeverityError
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range: protocol.Range{
					Start: protocol.Position{Line: line, Character: 0},
					End:   protocol.Position{Line: line, Character: 0},
				},
				Severity: &severity,
				Source:   strPtr(lsName),
				Message:  pe.Error(),
			})
		}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }
func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }

func main() {
	ls := newLangServer()
	if err := ls.server.RunStdio(); err != nil {
		os.Exit(1)
	}
}
