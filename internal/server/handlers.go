package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/hejijunhao/kidneyrisk/internal/form"
	"github.com/hejijunhao/kidneyrisk/internal/logging"
	"github.com/hejijunhao/kidneyrisk/internal/output"
	"github.com/hejijunhao/kidneyrisk/internal/pipeline"
	"github.com/hejijunhao/kidneyrisk/internal/present"
	"github.com/hejijunhao/kidneyrisk/internal/schema"
)

type pageData struct {
	Title   string
	Submit  string
	Columns [][]form.Widget
	Error   string
	Result  *resultView
}

type resultView struct {
	Headline string
	Chart    template.HTML
	Bars     []present.Bar
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pageData{
		Columns: form.Layout(s.pipeline.Schema(), nil),
	})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		slog.InfoContext(r.Context(), "submission rejected", "error", err)
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.render(w, r, status, pageData{
			Columns: form.Layout(s.pipeline.Schema(), nil),
			Error:   "Prediction failed: the form submission could not be read",
		})
		return
	}

	page := pageData{Columns: form.Layout(s.pipeline.Schema(), r.PostForm)}
	out, err := s.pipeline.Submit(r.Context(), r.PostForm)
	if err != nil {
		page.Error = pipeline.Describe(err)
		s.render(w, r, statusFor(err), page)
		return
	}

	view := &resultView{Headline: out.Report.Headline, Bars: out.Report.Bars}
	var chart bytes.Buffer
	if err := present.RenderChart(out.Report, &chart); err != nil {
		slog.WarnContext(r.Context(), "chart render failed", "error", err)
	} else {
		// go-chart output is generated locally from numbers and fixed labels.
		view.Chart = template.HTML(chart.String())
	}
	page.Result = view
	s.render(w, r, http.StatusOK, page)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page pageData) {
	page.Title = Title
	page.Submit = SubmitLabel

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, page); err != nil {
		slog.ErrorContext(r.Context(), "render page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// schemaResponse is the body of GET /api/schema.
type schemaResponse struct {
	Fields        []schema.FieldInfo `json:"fields"`
	Columns       []string           `json:"columns"`
	ColumnsSource string             `json:"columns_source"`
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	eng := s.pipeline.Engine()
	writeJSON(w, http.StatusOK, schemaResponse{
		Fields:        s.pipeline.Schema().Info(),
		Columns:       eng.ExpectedColumns(),
		ColumnsSource: eng.ColumnsSource(),
	})
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body", Kind: "request"})
		return
	}

	values, err := form.ValuesFromMap(body)
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: pipeline.Describe(err), Kind: pipeline.Classify(err)})
		return
	}

	out, err := s.pipeline.Submit(r.Context(), values)
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: pipeline.Describe(err), Kind: pipeline.Classify(err)})
		return
	}

	id := logging.SubmissionID(r.Context())
	writeJSON(w, http.StatusOK, output.FormatResult(id, out.Report, out.Vector, output.Standard))
}

type healthResponse struct {
	Status          string   `json:"status"`
	ColumnsSource   string   `json:"columns_source"`
	ExpectedColumns int      `json:"expected_columns"`
	Unproducible    []string `json:"unproducible,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	eng := s.pipeline.Engine()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:          "ok",
		ColumnsSource:   eng.ColumnsSource(),
		ExpectedColumns: len(eng.ExpectedColumns()),
		Unproducible:    eng.Unproducible(),
	})
}

// statusFor maps a per-submission error to an HTTP status.
func statusFor(err error) int {
	switch pipeline.Classify(err) {
	case pipeline.ClassEncoding, pipeline.ClassInference:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
