package chi

import (
	"bytes"
	"embed"
	"encoding/base64"
	"html/template"
	"math"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/resrank/internal/domain/keyword"
	"github.com/kailas-cloud/resrank/internal/report"
	rankinguc "github.com/kailas-cloud/resrank/internal/usecase/ranking"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

// Keyword cloud font sizes in px.
const (
	cloudMaxFontPx = 40
	cloudMinWeight = 0.3
)

type pageView struct {
	JobDescription string
	Error          string
	Warnings       []string
	Results        []RankedItem
	Top            *RankedItem
	Keywords       []cloudTerm
	CSVHref        template.URL
	CSVFilename    string
}

type cloudTerm struct {
	Term   string
	Count  int
	SizePx int
}

// Form handles GET /.
func (s *Server) Form(w http.ResponseWriter, _ *http.Request) {
	s.renderPage(w, http.StatusOK, &pageView{})
}

// RankForm handles POST / (form submission) and renders the results page.
func (s *Server) RankForm(w http.ResponseWriter, r *http.Request) {
	query, uploads, err := s.readRankRequest(w, r)
	if err != nil {
		s.renderError(w, &pageView{JobDescription: query}, err)
		return
	}

	rep, err := s.ranking.Rank(r.Context(), query, uploads)
	view := &pageView{JobDescription: query}
	for _, wn := range rep.Warnings {
		view.Warnings = append(view.Warnings, wn.Message())
	}
	if err != nil {
		s.renderError(w, view, err)
		return
	}

	if err := fillResults(view, &rep); err != nil {
		s.renderError(w, view, err)
		return
	}
	s.renderPage(w, http.StatusOK, view)
}

func fillResults(view *pageView, rep *rankinguc.Report) error {
	dto := reportToDTO(rep)
	view.Results = dto.Results
	view.Top = dto.Top
	view.Keywords = cloud(rep.Keywords)

	data, err := report.CSV(rep.Results)
	if err != nil {
		return err //nolint:wrapcheck // wrapped by report
	}
	//nolint:gosec // data URI is built from our own CSV bytes
	view.CSVHref = template.URL("data:text/csv;charset=utf-8;base64," + base64.StdEncoding.EncodeToString(data))
	view.CSVFilename = report.Filename
	return nil
}

func cloud(freqs []keyword.Frequency) []cloudTerm {
	if len(freqs) == 0 {
		return nil
	}
	maxCount := freqs[0].Count
	terms := make([]cloudTerm, len(freqs))
	for i, f := range freqs {
		terms[i] = cloudTerm{
			Term:   f.Term,
			Count:  f.Count,
			SizePx: int(math.Round(cloudMaxFontPx * keyword.Weight(f, maxCount, cloudMinWeight))),
		}
	}
	return terms
}

func (s *Server) renderError(w http.ResponseWriter, view *pageView, err error) {
	e := s.classify(err)
	if e.status == http.StatusInternalServerError {
		s.logger.Error("internal error", zap.Error(err))
	} else {
		s.logger.Warn("domain error", zap.Error(err))
	}
	view.Error = e.message
	s.renderPage(w, e.status, view)
}

func (s *Server) renderPage(w http.ResponseWriter, status int, view *pageView) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		s.logger.Error("render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
