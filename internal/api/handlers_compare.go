package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/liinaD3210/Tender-Expert/internal/analysis"
	"github.com/liinaD3210/Tender-Expert/internal/export"
)

// handleCompare runs one full comparison over the uploaded quotation files.
// The run executes synchronously; on success the result replaces the
// session's previous one. On failure the previous result stays untouched.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	maxTotal := s.cfg.MaxUploadBytes*int64(s.cfg.MaxFiles) + 10*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxTotal)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}
	if len(files) > s.cfg.MaxFiles {
		jsonError(w, fmt.Sprintf("too many files (max %d)", s.cfg.MaxFiles), http.StatusBadRequest)
		return
	}

	sessionID := r.FormValue("session_id")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var docs []analysis.Document
	for _, fh := range files {
		filename := sanitizeFilename(fh.Filename)

		f, err := fh.Open()
		if err != nil {
			jsonError(w, fmt.Sprintf("failed to open %s", filename), http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
		f.Close()
		if err != nil {
			jsonError(w, fmt.Sprintf("failed to read %s", filename), http.StatusBadRequest)
			return
		}
		if int64(len(data)) > s.cfg.MaxUploadBytes {
			jsonError(w, fmt.Sprintf("%s exceeds max size (%d bytes)", filename, s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return
		}
		docs = append(docs, analysis.Document{Filename: filename, Data: data})
	}

	result, err := s.pipeline.Run(r.Context(), docs)
	if err != nil {
		switch {
		case errors.Is(err, analysis.ErrNoItems):
			jsonError(w, "no structured data could be extracted from any file", http.StatusUnprocessableEntity)
		case errors.Is(err, analysis.ErrGroupingFailed):
			s.log.Error("grouping failed", "session_id", sessionID, "error", err)
			jsonError(w, "items could not be grouped; no comparison table produced", http.StatusUnprocessableEntity)
		default:
			s.log.Error("comparison run failed", "session_id", sessionID, "error", err)
			jsonError(w, "analysis failed", http.StatusInternalServerError)
		}
		return
	}

	s.sessions.Put(sessionID, result)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"session_id": sessionID,
		"result":     result,
	})
}

// handleLatest redisplays the session's last result without recomputation.
func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		jsonError(w, "session_id query parameter is required", http.StatusBadRequest)
		return
	}
	result := s.sessions.Get(sessionID)
	if result == nil {
		jsonError(w, "no analysis result for this session", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"session_id": sessionID,
		"result":     result,
	})
}

// handleExport streams the session's last comparison table as XLSX.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		jsonError(w, "session_id query parameter is required", http.StatusBadRequest)
		return
	}
	result := s.sessions.Get(sessionID)
	if result == nil {
		jsonError(w, "no analysis result for this session", http.StatusNotFound)
		return
	}

	data, err := export.Workbook(result)
	if err != nil {
		s.log.Error("xlsx export failed", "session_id", sessionID, "error", err)
		jsonError(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="tender_expert_report.xlsx"`)
	w.Write(data)
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
