// Package site serves the portfolio over HTTP: HTML pages, a JSON API, the
// contact form and a small admin area.
package site

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/catalog"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/github"
	"github.com/Zachkp/folio/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// ImportLog reports the most recent catalog import, when a database is in use.
type ImportLog interface {
	LastImport(ctx context.Context) (*store.ImportRun, error)
}

type Options struct {
	Config  *config.Config
	Source  catalog.Source
	Fetcher github.Fetcher
	Mailer  Mailer
	Imports ImportLog
}

// Server holds the loaded catalog and the current GitHub session. The catalog
// is replaced wholesale on reload; handlers never see a partial one.
type Server struct {
	cfg     *config.Config
	source  catalog.Source
	fetcher github.Fetcher
	mailer  Mailer
	imports ImportLog
	admin   *adminAuth
	started time.Time

	mu      sync.RWMutex
	catalog *catalog.Catalog
	loader  *github.Loader

	engine *gin.Engine
}

// New loads the catalog from opts.Source and builds the router.
func New(ctx context.Context, opts Options) (*Server, error) {
	if opts.Config == nil || opts.Source == nil || opts.Fetcher == nil {
		return nil, fmt.Errorf("site: config, source and fetcher are required")
	}
	s := &Server{
		cfg:     opts.Config,
		source:  opts.Source,
		fetcher: opts.Fetcher,
		mailer:  opts.Mailer,
		imports: opts.Imports,
		admin:   newAdminAuth(opts.Config.Admin),
		started: time.Now(),
	}
	if s.mailer == nil {
		s.mailer = NewSMTPMailer(opts.Config.SMTP)
	}
	if err := s.ReloadCatalog(ctx); err != nil {
		return nil, err
	}
	s.loader = github.NewLoader(s.fetcher)

	engine, err := s.routes()
	if err != nil {
		return nil, err
	}
	s.engine = engine
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.engine }

// ReloadCatalog reads the Source Lists again and swaps them in.
func (s *Server) ReloadCatalog(ctx context.Context) error {
	c, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	s.mu.Lock()
	s.catalog = c
	s.mu.Unlock()
	log.Printf("Catalog loaded: %d posts, %d projects, %d photos", len(c.Posts), len(c.Projects), len(c.Photos))
	return nil
}

// githubSession returns the session a GitHub page load waits on. Loads that
// arrive while a fetch is in flight share it; once a session has finished,
// Ready or Failed, the next load starts a new one.
func (s *Server) githubSession() *github.Loader {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.loader.Status() {
	case github.StatusReady, github.StatusFailed:
		s.loader = github.NewLoader(s.fetcher)
	}
	return s.loader
}

// ResetGitHub discards the current GitHub session. The next visit to the
// GitHub page starts a fresh fetch.
func (s *Server) ResetGitHub() {
	s.mu.Lock()
	s.loader = github.NewLoader(s.fetcher)
	s.mu.Unlock()
}

func (s *Server) currentCatalog() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

func (s *Server) currentLoader() *github.Loader {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loader
}

func (s *Server) routes() (*gin.Engine, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	r := gin.Default()
	r.Use(requestID())
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.home)
	r.GET("/projects", s.projectsPage)
	r.GET("/blog", s.blogPage)
	r.GET("/blog/:slug", s.postPage)
	r.GET("/photos", s.photosPage)
	r.GET("/photos/:id", s.photoPage)
	r.GET("/github", s.githubPage)

	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.contact)

	api := r.Group("/api")
	api.GET("/projects", s.projectsAPI)
	api.GET("/blog", s.blogAPI)
	api.GET("/photos", s.photosAPI)
	api.GET("/github", s.githubAPI)

	s.setupAdminRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		s.notFound(c)
	})
	return r, nil
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Serving portfolio on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
