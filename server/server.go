// Package server exposes the analysis pipelines as HTML pages.
package server

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/researchaccelerator-hub/video-insights/chart"
	"github.com/researchaccelerator-hub/video-insights/common"
	"github.com/researchaccelerator-hub/video-insights/service"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

// channelSlots is the number of channel name inputs on the home page.
const channelSlots = 3

// Analyzer runs the pipelines behind the pages.
type Analyzer interface {
	SearchVideos(ctx context.Context, query string) (*service.VideoSearch, error)
	AnalyzeVideoComments(ctx context.Context, videoID string) (*service.CommentAnalysis, error)
	SearchChannels(ctx context.Context, names []string) (*service.ChannelSearch, error)
	CompareChannels(ctx context.Context, channelIDs []string) (*service.ChannelComparison, error)
}

// Options configure the HTTP layer.
type Options struct {
	RequestTimeout time.Duration
	RateLimit      float64 // requests per second per client, 0 disables
	RateBurst      int
}

// Server renders the pages of the front-end.
type Server struct {
	analyzer Analyzer
	images   *chart.ImageStore
	logger   zerolog.Logger
	opts     Options
	pages    map[string]*template.Template
}

// page is the data every template receives.
type page struct {
	Data      any
	Quota     *service.Quota
	RequestID string
	Slots     []int
}

type message struct {
	Heading string
	Message string
}

var templateFuncs = template.FuncMap{
	"counter": func(v *uint64) string {
		if v == nil {
			return "0"
		}
		return strconv.FormatUint(*v, 10)
	},
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

// New creates a server. images serves the charts the analyzer rendered.
func New(analyzer Analyzer, images *chart.ImageStore, logger zerolog.Logger, opts Options) (*Server, error) {
	s := &Server{
		analyzer: analyzer,
		images:   images,
		logger:   logger,
		opts:     opts,
		pages:    make(map[string]*template.Template),
	}
	for _, name := range []string{"home", "select_video", "video_comments", "select_channels", "channels", "message"} {
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		s.pages[name] = t
	}
	return s, nil
}

// Handler returns the routes wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /select_video", s.handleSelectVideo)
	mux.HandleFunc("GET /video_comments", s.handleVideoComments)
	mux.HandleFunc("GET /select_channels", s.handleSelectChannels)
	mux.HandleFunc("GET /channels", s.handleChannels)
	mux.HandleFunc("GET /images/{id}", s.handleImage)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	var h http.Handler = mux
	h = withTimeout(s.opts.RequestTimeout, h)
	if s.opts.RateLimit > 0 {
		h = newRateLimiter(s.opts.RateLimit, s.opts.RateBurst).middleware(h)
	}
	h = withRecovery(s.logger, h)
	h = withRequestLog(s.logger, h)
	h = withRequestID(h)
	return h
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	slots := make([]int, channelSlots)
	for i := range slots {
		slots[i] = i + 1
	}
	s.render(w, r, http.StatusOK, "home", page{Slots: slots})
}

func (s *Server) handleSelectVideo(w http.ResponseWriter, r *http.Request) {
	res, err := s.analyzer.SearchVideos(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "select_video", page{Data: res, Quota: &res.Quota})
}

func (s *Server) handleVideoComments(w http.ResponseWriter, r *http.Request) {
	res, err := s.analyzer.AnalyzeVideoComments(r.Context(), r.URL.Query().Get("video_id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "video_comments", page{Data: res, Quota: &res.Quota})
}

func (s *Server) handleSelectChannels(w http.ResponseWriter, r *http.Request) {
	res, err := s.analyzer.SearchChannels(r.Context(), queryValues(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "select_channels", page{Data: res, Quota: &res.Quota})
}

func (s *Server) handleChannels(w http.ResponseWriter, r *http.Request) {
	res, err := s.analyzer.CompareChannels(r.Context(), queryValues(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "channels", page{Data: res, Quota: &res.Quota})
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	img, ok := s.images.Get(r.PathValue("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	_, _ = w.Write(img)
}

// queryValues returns every query value ordered by parameter name.
func queryValues(r *http.Request) []string {
	q := r.URL.Query()
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var values []string
	for _, k := range keys {
		values = append(values, q[k]...)
	}
	return values
}

// statusFor maps a pipeline error to the response status and the message shown.
func statusFor(err error) (int, message) {
	switch {
	case errors.Is(err, common.ErrEmptyInput):
		return http.StatusOK, message{Heading: "No results", Message: "Nothing to analyze for this input."}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, message{Heading: "Timeout", Message: "The video platform did not answer in time."}
	case errors.Is(err, common.ErrDataShapeMismatch), errors.Is(err, common.ErrExternalAPI):
		return http.StatusBadGateway, message{Heading: "Error", Message: "The video platform request failed."}
	default:
		return http.StatusInternalServerError, message{Heading: "Error", Message: "The analysis failed."}
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	evt := s.logger.Error()
	if status == http.StatusOK {
		evt = s.logger.Info()
	}
	evt.Err(err).Str("request_id", common.RequestID(r.Context())).Int("status", status).Msg("Request failed")
	s.render(w, r, status, "message", page{Data: msg})
}

// render executes the page completely before writing any of it.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, p page) {
	p.RequestID = common.RequestID(r.Context())

	var buf bytes.Buffer
	if err := s.pages[name].ExecuteTemplate(&buf, "layout", p); err != nil {
		s.logger.Error().Err(err).Str("template", name).Msg("Failed to render page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
