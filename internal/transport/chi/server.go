// Package chi serves the ranking form, the JSON/CSV ranking API, health and metrics over a chi router.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/resrank/internal/domain"
	"github.com/kailas-cloud/resrank/internal/domain/document"
	"github.com/kailas-cloud/resrank/internal/report"
	healthuc "github.com/kailas-cloud/resrank/internal/usecase/health"
	rankinguc "github.com/kailas-cloud/resrank/internal/usecase/ranking"
)

// Multipart form field names.
const (
	fieldJobDescription = "job_description"
	fieldResumes        = "resumes"
)

// multipartMemory is the part of an upload kept in memory; the rest spills to temp files.
const multipartMemory = 32 << 20

// maxJobDescriptionBytes caps the job description read back from an oversized request.
const maxJobDescriptionBytes = 1 << 20

// DefaultMaxUploadBytes limits the whole multipart body when not configured.
const DefaultMaxUploadBytes = 50 << 20

// Server holds the HTTP handlers.
type Server struct {
	ranking        *rankinguc.Service
	health         *healthuc.Service
	logger         *zap.Logger
	maxUploadBytes int64
	errorHandlers  []errorHandler
}

// NewServer creates an HTTP server.
func NewServer(ranking *rankinguc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{
		ranking:        ranking,
		health:         health,
		logger:         logger,
		maxUploadBytes: DefaultMaxUploadBytes,
		errorHandlers:  defaultErrorHandlers(),
	}
}

// WithMaxUploadBytes limits the multipart request body size.
func (s *Server) WithMaxUploadBytes(n int64) *Server {
	if n > 0 {
		s.maxUploadBytes = n
	}
	return s
}

// Routes mounts all handlers on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.Form)
	r.Post("/", s.RankForm)
	r.Post("/api/v1/rank", s.Rank)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Rank handles POST /api/v1/rank.
// Responds with JSON, or with a CSV attachment for ?format=csv / Accept: text/csv.
func (s *Server) Rank(w http.ResponseWriter, r *http.Request) {
	query, uploads, err := s.readRankRequest(w, r)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	rep, err := s.ranking.Rank(r.Context(), query, uploads)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	if wantsCSV(r) {
		s.writeCSV(w, &rep)
		return
	}
	writeJSON(w, http.StatusOK, reportToDTO(&rep))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	rep := s.health.Check(r.Context())

	checks := make(map[string]string, len(rep.Checks))
	for k, v := range rep.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if rep.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(rep.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// readRankRequest parses the multipart form into a job description and uploads.
// The job description is returned on error paths too whenever it could be read.
func (s *Server) readRankRequest(w http.ResponseWriter, r *http.Request) (string, []document.Upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if r.ContentLength > s.maxUploadBytes {
		return leadingJobDescription(r), nil,
			fmt.Errorf("%w: %w", domain.ErrInvalidRequest, &http.MaxBytesError{Limit: s.maxUploadBytes})
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return "", nil, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, mbe)
		}
		return "", nil, fmt.Errorf("%w: expected multipart/form-data with %s and %s fields",
			domain.ErrInvalidRequest, fieldJobDescription, fieldResumes)
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	query := ""
	if v := r.MultipartForm.Value[fieldJobDescription]; len(v) > 0 {
		query = v[0]
	}

	files := r.MultipartForm.File[fieldResumes]
	uploads := make([]document.Upload, 0, len(files))
	for _, fh := range files {
		data, err := readFormFile(fh)
		if err != nil {
			return query, nil, fmt.Errorf("read upload %q: %w", fh.Filename, err)
		}
		u, err := document.NewUpload(fh.Filename, data)
		if err != nil {
			return query, nil, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
		}
		uploads = append(uploads, u)
	}
	return query, uploads, nil
}

// leadingJobDescription streams multipart parts up to the first file and
// returns the job description field if it comes before any upload.
func leadingJobDescription(r *http.Request) string {
	mr, err := r.MultipartReader()
	if err != nil {
		return ""
	}
	for {
		part, err := mr.NextPart()
		if err != nil {
			return ""
		}
		if part.FileName() != "" {
			return ""
		}
		if part.FormName() == fieldJobDescription {
			data, err := io.ReadAll(io.LimitReader(part, maxJobDescriptionBytes))
			if err != nil {
				return ""
			}
			return string(data)
		}
	}
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return data, nil
}

func wantsCSV(r *http.Request) bool {
	if strings.EqualFold(r.URL.Query().Get("format"), "csv") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/csv")
}

func (s *Server) writeCSV(w http.ResponseWriter, rep *rankinguc.Report) {
	data, err := report.CSV(rep.Results)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	w.Header().Set("X-Run-ID", rep.RunID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// classify maps an error to a response without exposing internals.
func (s *Server) classify(err error) apiError {
	for _, h := range s.errorHandlers {
		if e, ok := h(err); ok {
			return e
		}
	}
	return internalError
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	e := s.classify(err)
	if e.status == http.StatusInternalServerError {
		s.logger.Error("internal error", zap.Error(err))
	} else {
		s.logger.Warn("domain error", zap.Error(err))
	}
	writeError(w, e.status, e.code, e.message)
}
