// Package lsp exposes the entity tree over the Language Server Protocol
// as a read-only outline: opening or editing a D file re-parses it and
// the client can request a document symbol tree whose nodes mirror the
// splitter's own entities.
package lsp

import (
	"net/url"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/lang-tools/dtree/d/parser"
)

const serverName = "dtree"

// Server is a minimal LSP frontend for the splitter: it keeps the last
// parsed tree for every open document and answers outline requests from
// it, without offering completion, diagnostics, or edits.
type Server struct {
	version string
	handler protocol.Handler
	server  *server.Server

	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	contents []byte
	root     *parser.Entity
}

// NewServer builds a Server ready to run over stdio.
func NewServer(version string) *Server {
	s := &Server{
		version: version,
		docs:    make(map[string]*document),
	}

	s.handler = protocol.Handler{
		Initialize:                s.initialize,
		Initialized:               s.initialized,
		Shutdown:                  s.shutdown,
		SetTrace:                  s.setTrace,
		TextDocumentDidOpen:       s.textDocumentDidOpen,
		TextDocumentDidChange:     s.textDocumentDidChange,
		TextDocumentDidClose:      s.textDocumentDidClose,
		TextDocumentDidSave:       s.textDocumentDidSave,
		TextDocumentDocumentSymbol: s.textDocumentSymbol,
	}
	s.server = server.NewServer(&s.handler, serverName, false)
	return s
}

// RunStdio serves requests over stdin/stdout until the client disconnects.
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}
	capabilities.DocumentSymbolProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	s.update(path, []byte(params.TextDocument.Text))
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.update(path, []byte(whole.Text))
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	s.mu.Lock()
	delete(s.docs, path)
	s.mu.Unlock()
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text == nil {
		return nil
	}
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	s.update(path, []byte(*params.Text))
	return nil
}

func (s *Server) update(path string, contents []byte) {
	data := contents
	root := &parser.Entity{Token: parser.KindNone}
	lex := parser.NewLexer(data)
	parser.ParseScope(lex, root, parser.KindNone)
	parser.PostProcess(root)

	s.mu.Lock()
	s.docs[path] = &document{contents: contents, root: root}
	s.mu.Unlock()
}

func (s *Server) textDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	s.mu.RLock()
	doc := s.docs[path]
	s.mu.RUnlock()
	if doc == nil {
		return nil, nil
	}

	idx := newLineIndex(doc.contents)
	symbols := make([]protocol.DocumentSymbol, 0, len(doc.root.Children))
	offset := 0
	for _, e := range doc.root.Children {
		sym, consumed := entitySymbol(e, idx, offset)
		symbols = append(symbols, sym)
		offset += consumed
	}
	return symbols, nil
}

// entitySymbol converts one entity, rooted at byte offset start, into a
// DocumentSymbol; it returns the symbol together with the number of
// bytes of source text it consumed so the caller can advance a sibling
// cursor without re-measuring.
func entitySymbol(e *parser.Entity, idx *lineIndex, start int) (protocol.DocumentSymbol, int) {
	text := e.Text()
	end := start + len(text)

	name := e.Comment()
	if name == "" {
		name = shortLabel(e.Head)
	}

	sym := protocol.DocumentSymbol{
		Name: name,
		Kind: protocol.SymbolKindNamespace,
		Range: protocol.Range{
			Start: idx.position(start),
			End:   idx.position(end),
		},
		SelectionRange: protocol.Range{
			Start: idx.position(start),
			End:   idx.position(start + len(e.Head)),
		},
	}
	if e.IsPair {
		sym.Kind = protocol.SymbolKindStruct
	}

	childOffset := start + len(e.Head)
	for _, c := range e.Children {
		childSym, consumed := entitySymbol(c, idx, childOffset)
		sym.Children = append(sym.Children, childSym)
		childOffset += consumed
	}

	return sym, len(text)
}

func shortLabel(head string) string {
	const max = 24
	if len(head) <= max {
		if head == "" {
			return "·"
		}
		return head
	}
	return head[:max] + "…"
}

// lineIndex converts byte offsets into LSP line/character positions.
type lineIndex struct {
	lineStarts []int
}

func newLineIndex(contents []byte) *lineIndex {
	starts := []int{0}
	for i, b := range contents {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{lineStarts: starts}
}

func (idx *lineIndex) position(offset int) protocol.Position {
	line := 0
	for line+1 < len(idx.lineStarts) && idx.lineStarts[line+1] <= offset {
		line++
	}
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(offset - idx.lineStarts[line]),
	}
}

func uriToPath(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	return u.Path, nil
}

func boolPtr(b bool) *bool { return &b }
func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }
