package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/mdgraph/internal/doctree"
	"github.com/dgallion1/mdgraph/internal/graph"
	"github.com/dgallion1/mdgraph/internal/parser"
	"github.com/dgallion1/mdgraph/internal/traverse"
)

// handleCreateGraph parses an uploaded document and replaces the stored
// graph with it.
func (s *Server) handleCreateGraph(w http.ResponseWriter, r *http.Request) {
	root, filename, ok := s.parseUpload(w, r)
	if !ok {
		return
	}

	s.writeMu.Lock()
	err := s.store.CreateGraph(r.Context(), root)
	s.writeMu.Unlock()
	if err != nil {
		jsonError(w, "failed to create graph: "+err.Error(), http.StatusInternalServerError)
		return
	}

	count := 0
	root.Walk(func(*doctree.Node) { count++ })
	s.log.Info("graph replaced", "file", filename, "nodes", count)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{"status": "created", "nodes": count})
}

// handleMarkdown traverses the stored graph and responds with the
// reconstructed Markdown.
func (s *Server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	md, err := traverse.NewRenderer(s.store, s.log).Render(r.Context())
	if err != nil {
		if errors.Is(err, graph.ErrRootNotFound) {
			jsonError(w, err.Error(), http.StatusNotFound)
			return
		}
		jsonError(w, "failed to traverse graph: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	fmt.Fprintln(w, md)
}

// handleScript parses an uploaded document and responds with the Cypher
// script that would recreate it, without touching the store.
func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	root, _, ok := s.parseUpload(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.CypherScript(root))
}

// parseUpload reads the multipart "file" field and parses it into a
// document tree. On failure it writes the error response and returns
// ok=false.
func (s *Server) parseUpload(w http.ResponseWriter, r *http.Request) (*doctree.Node, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return nil, "", false
	}

	p, err := parser.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return nil, "", false
	}

	root, err := p.Parse(file, filename)
	if err != nil {
		jsonError(w, "failed to parse document: "+err.Error(), http.StatusUnprocessableEntity)
		return nil, "", false
	}
	return root, filename, true
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
