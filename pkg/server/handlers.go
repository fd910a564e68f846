package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/genetracks/genetracks/pkg/buildinfo"
	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/figure"
	"github.com/genetracks/genetracks/pkg/io"
	"github.com/genetracks/genetracks/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	Field     string      `json:"field,omitempty"`
	Offset    *int64      `json:"offset,omitempty"`
	RequestID string      `json:"request_id"`
}

type problem struct {
	Track    int    `json:"track"`
	Element  int    `json:"element"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type validateBody struct {
	Valid    bool      `json:"valid"`
	Problems []problem `json:"problems"`
	Tracks   int       `json:"tracks"`
	Elements int       `json:"elements"`
	Height   uint      `json:"height"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts := pipeline.Options{Formats: []string{format}}
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "scale %q is not a number", v))
			return
		}
		if err := errors.ValidateScale(scale); err != nil {
			s.writeError(w, r, err)
			return
		}
		opts.Scale = scale
	}
	if v := q.Get("width"); v != "" {
		width, err := strconv.ParseUint(v, 10, 32)
		if err != nil || width == 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "width %q is not a positive integer", v))
			return
		}
		opts.Width = uint(width)
	}

	fig, err := s.readFigure(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Render(r.Context(), fig, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	if res.CacheHits[format] {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	fig, err := s.readFigure(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	st := fig.Stats()
	body := validateBody{
		Valid:    true,
		Problems: []problem{},
		Tracks:   st.Tracks,
		Elements: st.Elements,
		Height:   st.Height,
	}
	for _, p := range fig.Check() {
		if p.Severity == figure.Invalid {
			body.Valid = false
		}
		body.Problems = append(body.Problems, problem{
			Track:    p.Track,
			Element:  p.Element,
			Severity: p.Severity.String(),
			Message:  p.Message,
		})
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) readFigure(w http.ResponseWriter, r *http.Request) (*figure.Figure, error) {
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		return io.ReadYAML(body)
	}
	return io.ReadJSON(body)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	body := errorBody{
		Code:      errors.GetCode(err),
		Message:   errors.UserMessage(err),
		RequestID: RequestID(r.Context()),
	}
	var pe *io.ParseError
	if stderrors.As(err, &pe) {
		body.Message = pe.Error()
		body.Field = pe.Field
		if pe.Offset >= 0 {
			body.Offset = &pe.Offset
		}
	}
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		body.Code = errors.ErrCodeInvalidInput
		body.Message = "request body too large"
	}
	if body.Code == "" {
		body.Code = errors.ErrCodeInternal
	}

	status := statusFor(body.Code)
	if tooLarge != nil {
		status = http.StatusRequestEntityTooLarge
	}
	if status >= 500 {
		s.logger.Error("request failed", "error", err, "request_id", body.RequestID)
		body.Message = "internal error"
	}
	writeJSON(w, status, body)
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidInterval,
		errors.ErrCodeInvalidFigure, errors.ErrCodeParse:
		return http.StatusBadRequest
	case errors.ErrCodeUnsupported:
		return http.StatusUnsupportedMediaType
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
