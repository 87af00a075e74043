// Package web provides the HTTP upload boundary around the processing
// core: a minimal upload form and a process endpoint that returns the
// converted CSV as a download.
package web

import (
	"errors"
	"fmt"
	"net/http"

	"gsd/a2z-flashing/internal/config"
	"gsd/a2z-flashing/internal/export"
	"gsd/a2z-flashing/internal/logging"
	"gsd/a2z-flashing/internal/processerror"
	"gsd/a2z-flashing/internal/processor"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>A2Z Flashing</title></head>
<body>
<h1>A2Z Flashing</h1>
<p>Upload your Excel or CSV file for A2Z Flashing processing:</p>
<form action="/process" method="post" enctype="multipart/form-data">
<input type="file" name="file" accept=".csv,.xls,.xlsx" required>
<button type="submit">Process</button>
</form>
</body>
</html>
`

// Server serves the upload form and the processing endpoint.
type Server struct {
	cfg    *config.Config
	logger logging.Logger
	router chi.Router
}

// NewServer wires the routes onto a chi router.
func NewServer(cfg *config.Config, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	s := &Server{cfg: cfg, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Post("/process", s.handleProcess)
	s.router = r
	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving HTTP on the configured address.
func (s *Server) ListenAndServe() error {
	s.logger.Info("Starting HTTP server",
		logging.Field{Key: "addr", Value: s.cfg.Server.Addr})
	return http.ListenAndServe(s.cfg.Server.Addr, s.router)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

// handleProcess accepts one multipart file upload, runs the pipeline and
// responds with the processed CSV as an attachment. Pipeline errors map
// to 400 with the error message; the upload size cap is enforced at this
// boundary, not in the core.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Server.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	rows, err := processor.ProcessFile(file, header.Filename, s.logger)
	if err != nil {
		s.logger.WithError(err).Warn("Processing failed",
			logging.Field{Key: "file", Value: header.Filename})
		writeError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", s.cfg.Output.Filename))
	if err := export.WriteCSV(rows, w, s.cfg.DelimiterRune()); err != nil {
		s.logger.WithError(err).Error("Failed to write CSV response")
	}
}

// statusFor maps pipeline error kinds onto HTTP status codes. All the
// user-correctable errors are 400s.
func statusFor(err error) int {
	var (
		unsupported *processerror.UnsupportedFormatError
		empty       *processerror.EmptyInputError
		missing     *processerror.MissingColumnsError
		parse       *processerror.ParseError
	)
	switch {
	case errors.As(err, &unsupported),
		errors.As(err, &empty),
		errors.As(err, &missing),
		errors.As(err, &parse):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = fmt.Fprintln(w, msg)
}
