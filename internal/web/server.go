package web

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/phyten/cmtrans/internal/engine"
	engineopts "github.com/phyten/cmtrans/internal/engine/opts"
	"github.com/phyten/cmtrans/internal/lang"
	"github.com/phyten/cmtrans/internal/output"
	"github.com/phyten/cmtrans/internal/termcolor"
	"github.com/phyten/cmtrans/internal/translate"
)

// maxBodyBytes bounds a POST to /api/extract.
const maxBodyBytes = 4 << 20

// Translate is the default translation target offered with each result.
type Translate struct {
	Site   translate.Site
	Source string
	Target string
}

// Server はWeb UIとAPIのハンドラをまとめたものです。
type Server struct {
	logger    kitlog.Logger
	defaults  engine.Options
	translate Translate
}

// New returns a server whose requests start from defaults.
func New(logger kitlog.Logger, defaults engine.Options, tr Translate) *Server {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &Server{logger: logger, defaults: defaults, translate: tr}
}

// Handler returns the routed, logged handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.indexHandler)
	mux.HandleFunc(stylesPath, stylesHandler)
	mux.HandleFunc(scriptPath, scriptHandler)
	mux.HandleFunc("/api/extract", s.extractHandler)
	mux.HandleFunc("/api/langs", langsHandler)
	return s.logRequests(mux)
}

type extractResponse struct {
	engine.Item
	Translate      *translate.Link `json:"translate,omitempty"`
	TranslateError string          `json:"translate_error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}

// extractHandler runs one text through the engine. Form fields: text,
// name (used for detection), lang, line/block/string (custom markers),
// with_spans, with_lines, site, source, target.
func (s *Server) extractHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	form := r.PostForm

	opts, err := engineopts.ApplyWebQueryToOptions(s.defaults, form)
	if err == nil {
		err = engineopts.NormalizeAndValidate(&opts)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	name := strings.TrimSpace(form.Get("name"))
	if name == "" {
		name = "-"
	}
	opts.Inputs = []engine.Input{{Name: name, Text: form.Get("text")}}
	opts.Jobs = 1
	opts.Progress = false

	res, err := engine.Run(r.Context(), opts)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, engine.ErrInvalidDelimiterSet) {
			status = http.StatusBadRequest
		}
		writeError(w, status, errorResponse{Error: err.Error()})
		return
	}
	if len(res.Items) == 0 {
		e := errorResponse{Error: "no result"}
		if len(res.Errors) > 0 {
			e = errorResponse{Error: res.Errors[0].Message, Stage: res.Errors[0].Stage}
		}
		writeError(w, http.StatusUnprocessableEntity, e)
		return
	}

	resp := extractResponse{Item: res.Items[0]}
	for _, warn := range resp.Warnings {
		_ = level.Debug(s.logger).Log("msg", "delimiter warning", "kind", warn.Kind, "detail", warn.Message)
	}
	if resp.Document != "" {
		link, err := s.translateLink(form.Get("site"), form.Get("source"), form.Get("target"), resp.Document)
		if err != nil {
			resp.TranslateError = err.Error()
		} else {
			resp.Translate = &link
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) translateLink(site, source, target, text string) (translate.Link, error) {
	tr := s.translate
	if strings.TrimSpace(site) != "" {
		parsed, err := translate.ParseSite(site)
		if err != nil {
			return translate.Link{}, err
		}
		tr.Site = parsed
	}
	if v := strings.TrimSpace(source); v != "" {
		tr.Source = v
	}
	if v := strings.TrimSpace(target); v != "" {
		tr.Target = v
	}
	if tr.Site == "" {
		tr.Site = translate.Google
	}
	return translate.URL(tr.Site, tr.Source, tr.Target, text)
}

func langsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_ = output.WriteLangs(w, "json", lang.Presets(), termcolor.Palette{})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, e errorResponse) {
	writeJSON(w, status, e)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		_ = level.Info(s.logger).Log(
			"msg", "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
