package server

import (
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/nuggetscustoms/site/internal/errors"
)

const notFoundPage = "404.html"

// StreamFile writes fileName from fsys with a content type taken from its extension.
func StreamFile(w http.ResponseWriter, fsys fs.FS, fileName string) error {
	return streamFile(w, fsys, fileName, http.StatusOK)
}

func streamFile(w http.ResponseWriter, fsys fs.FS, fileName string, status int) error {
	data, err := fs.ReadFile(fsys, fileName)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", fileName, err)
	}

	ext := strings.ToLower(path.Ext(fileName))
	ctype := mime.TypeByExtension(ext)
	if ctype == "" {
		// Fallback for unknown extensions
		ctype = http.DetectContentType(data)
	}
	// Ensure UTF-8 for text types when not present
	if strings.HasPrefix(ctype, "text/") && !strings.Contains(strings.ToLower(ctype), "charset=") {
		ctype += "; charset=utf-8"
	}
	w.Header().Set("Content-Type", ctype)
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write %s content: %w", fileName, err)
	}
	return nil
}

func (s *Server) pageHandler(fileName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.servePage(w, r, fileName)
	}
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request, fileName string) {
	err := StreamFile(w, s.site, fileName)
	if err == nil {
		return
	}
	if errors.Is(err, fs.ErrNotExist) {
		s.notFound(w, r)
		return
	}
	logError(r.Method, r.URL.Path, err.Error())
	http.Error(w, "500 - Server Error", http.StatusInternalServerError)
}

// serveFileHandler serves the site folder. Extension-less paths resolve to
// the matching .html file, directories only serve their index.html, and
// dot-files are never exposed.
func (s *Server) serveFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name == "" {
			name = "."
		}
		if hasDotSegment(name) {
			s.notFound(w, r)
			return
		}

		info, err := fs.Stat(s.site, name)
		switch {
		case err != nil && path.Ext(name) == "":
			if _, htmlErr := fs.Stat(s.site, name+".html"); htmlErr == nil {
				s.servePage(w, r, name+".html")
				return
			}
			s.notFound(w, r)
			return
		case err != nil:
			s.notFound(w, r)
			return
		case info.IsDir():
			if _, indexErr := fs.Stat(s.site, path.Join(name, "index.html")); indexErr != nil {
				s.notFound(w, r)
				return
			}
		}

		s.fileServer.ServeHTTP(w, r)
	}
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	if isAPIRequest(r) {
		writeJSON(w, http.StatusNotFound, errorResponse{OK: false, Error: "not found"})
		return
	}
	if err := streamFile(w, s.site, notFoundPage, http.StatusNotFound); err != nil {
		http.Error(w, "404 - Page Not Found", http.StatusNotFound)
	}
}

func hasDotSegment(name string) bool {
	for _, segment := range strings.Split(name, "/") {
		if strings.HasPrefix(segment, ".") && segment != "." {
			return true
		}
	}
	return false
}
