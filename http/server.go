package http

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/navdir"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// LoadFailureMessage is shown in place of the site grid when the catalog
// cannot be loaded.
const LoadFailureMessage = "加载数据失败，请刷新页面重试"

// NoDescription is shown for sites without a description.
const NoDescription = "暂无描述"

//go:embed templates/*.html
var templateFS embed.FS

var indexTemplate = template.Must(template.New("index.html").ParseFS(templateFS, "templates/index.html"))

// Server serves the catalog web client. The catalog is loaded from the
// store on every request so a new extraction run shows up without restart.
type Server struct {
	store      navdir.CatalogStore
	logger     *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// NewServer creates a new Server reading from store.
func NewServer(store navdir.CatalogStore, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{store: store, logger: logger}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", s.handleIndex)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Get("/sites", s.handleSites)
	})

	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe listens on addr until Shutdown is called.
// Returns nil after a graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown is called.
// Returns nil after a graceful shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("serving catalog", "addr", ln.Addr().String())
	if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server. A server shut down before
// Serve is called refuses to start.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(begin),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// browse loads the catalog and applies the request's category and keyword.
// An unparsable or out-of-range category index selects the first category.
func (s *Server) browse(r *http.Request) (*navdir.Browser, error) {
	c, err := s.store.LoadCatalog(r.Context())
	if err != nil {
		return nil, err
	}

	b := navdir.NewBrowser(c)
	if idx, err := strconv.Atoi(r.URL.Query().Get("c")); err == nil {
		b.SwitchCategory(idx)
	}
	b.Search(r.URL.Query().Get("q"))
	return b, nil
}

type indexView struct {
	Error      string
	Categories []categoryView
	Current    string
	Active     int
	Keyword    string
	Sites      []siteView
}

type categoryView struct {
	Index  int
	Icon   string
	Name   string
	Count  int
	Active bool
}

type siteView struct {
	Name string
	URL  string
	// Icon is a string, sanitized by the template, or a template.URL for a
	// vetted inline image.
	Icon        any
	Description string
	Initials    string
	Delay       string
}

// newIndexView builds the page model. query is echoed into the search box
// as typed; b holds the normalized keyword.
func newIndexView(b *navdir.Browser, query string) indexView {
	v := indexView{Active: b.ActiveIndex(), Keyword: query}

	for i, cat := range b.Catalog().Categories {
		v.Categories = append(v.Categories, categoryView{
			Index:  i,
			Icon:   navdir.CategoryIcon(i),
			Name:   cat.Name,
			Count:  len(cat.Sites),
			Active: i == b.ActiveIndex(),
		})
	}
	if cat := b.ActiveCategory(); cat != nil {
		v.Current = cat.Name
	}

	for i, site := range b.VisibleSites() {
		desc := site.Description
		if desc == "" {
			desc = NoDescription
		}
		v.Sites = append(v.Sites, siteView{
			Name:        site.Name,
			URL:         site.URL,
			Icon:        iconSrc(site.Icon),
			Description: desc,
			Initials:    navdir.Initials(site.Name),
			Delay:       strconv.FormatFloat(math.Min(float64(i)*0.05, 0.4), 'f', 2, 64),
		})
	}

	return v
}

// inlineIconTypes are the image media types allowed as data: icon URLs.
var inlineIconTypes = map[string]bool{
	"image/png":                true,
	"image/gif":                true,
	"image/jpeg":               true,
	"image/webp":               true,
	"image/svg+xml":            true,
	"image/x-icon":             true,
	"image/vnd.microsoft.icon": true,
}

// iconSrc marks data:image icons of a known media type as safe URLs.
// Everything else is left to the template's URL sanitizer.
func iconSrc(icon string) any {
	rest, ok := strings.CutPrefix(icon, "data:")
	if !ok {
		return icon
	}
	end := strings.IndexAny(rest, ";,")
	if end < 0 {
		return icon
	}
	if !inlineIconTypes[strings.ToLower(rest[:end])] {
		return icon
	}
	return template.URL(icon)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var (
		view   indexView
		status = http.StatusOK
	)

	b, err := s.browse(r)
	if err != nil {
		s.logger.Error("loading catalog", "error", err)
		view.Error = LoadFailureMessage
		status = http.StatusServiceUnavailable
	} else {
		view = newIndexView(b, r.URL.Query().Get("q"))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := indexTemplate.Execute(w, view); err != nil {
		s.logger.Error("rendering index", "error", err)
	}
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.LoadCatalog(r.Context())
	if err != nil {
		s.logger.Error("loading catalog", "error", err)
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := navdir.EncodeCatalog(w, c); err != nil {
		s.logger.Error("encoding catalog", "error", err)
	}
}

type sitesResponse struct {
	Category string        `json:"category"`
	Index    int           `json:"index"`
	Keyword  string        `json:"keyword"`
	Sites    []navdir.Site `json:"sites"`
}

func (s *Server) handleSites(w http.ResponseWriter, r *http.Request) {
	b, err := s.browse(r)
	if err != nil {
		s.logger.Error("loading catalog", "error", err)
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}

	resp := sitesResponse{Index: b.ActiveIndex(), Keyword: b.Keyword(), Sites: b.VisibleSites()}
	if cat := b.ActiveCategory(); cat != nil {
		resp.Category = cat.Name
	}
	if resp.Sites == nil {
		resp.Sites = []navdir.Site{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{
		"code":  navdir.ErrorCode(err),
		"error": fmt.Sprintf("%s: %s", LoadFailureMessage, navdir.ErrorMessage(err)),
	})
}
