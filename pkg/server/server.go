package server

import (
	"context"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/wmspro/wmsui/pkg/api"
	"github.com/wmspro/wmsui/pkg/clock"
	"github.com/wmspro/wmsui/pkg/middleware"
	"github.com/wmspro/wmsui/pkg/render"
	"github.com/wmspro/wmsui/pkg/shell"
	"github.com/wmspro/wmsui/pkg/vdom"
)

// Loader fills a session's page after the bridge connects. Loaders run on
// their own goroutine and should use s.API so failures toast on the page.
type Loader func(ctx context.Context, s *Session, query url.Values) error

// PageBuilder builds the layout for one page.
type PageBuilder func(title string) *vdom.VNode

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMetrics sets the metrics served on /metrics.
func WithMetrics(m *middleware.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithAPI gives every session a backend client bound to its page.
func WithAPI(c *api.Client) Option {
	return func(s *Server) { s.api = c }
}

// WithPage registers a loader for a page path.
func WithPage(path string, l Loader) Option {
	return func(s *Server) { s.pages[path] = l }
}

// WithShellOptions passes options to every session's shell.
func WithShellOptions(opts ...shell.Option) Option {
	return func(s *Server) { s.shellOpts = append(s.shellOpts, opts...) }
}

// WithScheduler sets the clock driving toasts and render coalescing.
func WithScheduler(sched clock.Scheduler) Option {
	return func(s *Server) { s.sched = sched }
}

// WithPageBuilder replaces the default layout.
func WithPageBuilder(b PageBuilder) Option {
	return func(s *Server) { s.build = b }
}

// WithHeadScripts adds script URLs to every page head, such as the icon
// library.
func WithHeadScripts(src ...string) Option {
	return func(s *Server) { s.headScripts = append(s.headScripts, src...) }
}

// Server is the HTTP and WebSocket server.
type Server struct {
	config   *ServerConfig
	router   chi.Router
	upgrader websocket.Upgrader
	sessions *SessionManager

	logger      *slog.Logger
	metrics     *middleware.Metrics
	api         *api.Client
	pages       map[string]Loader
	shellOpts   []shell.Option
	sched       clock.Scheduler
	build       PageBuilder
	headScripts []string
	static      fs.FS

	httpServer *http.Server
}

// WithStatic serves fsys under StaticPrefix.
func WithStatic(fsys fs.FS) Option {
	return func(s *Server) { s.static = fsys }
}

// New creates a Server. A nil config uses DefaultServerConfig.
func New(config *ServerConfig, opts ...Option) *Server {
	s := &Server{
		config: config.withDefaults(),
		logger: slog.Default(),
		pages:  make(map[string]Loader),
		sched:  clock.Real(),
		build:  shell.DefaultPage,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "server")
	if s.metrics == nil {
		s.metrics = middleware.NewMetrics()
	}

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  s.config.ReadBufferSize,
		WriteBufferSize: s.config.WriteBufferSize,
		CheckOrigin:     s.config.CheckOrigin,
	}
	s.sessions = NewSessionManager(s.config.MaxSessions, s.logger)
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	r.Get("/ws", s.HandleWebSocket)
	r.Get(ClientPath, s.serveClient)
	r.Head(ClientPath, s.serveClient)
	if s.static != nil {
		r.Get(StaticPrefix+"*", s.serveStatic)
		r.Head(StaticPrefix+"*", s.serveStatic)
	}
	r.Get("/*", s.handlePage)
	return r
}

// requestLogger logs every non-bridge request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ws" {
			next.ServeHTTP(w, r)
			return
		}
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

// Handler returns the server's http.Handler for mounting in other routers.
func (s *Server) Handler() http.Handler { return s.router }

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// newPage builds the layout with the bridge client and head scripts.
func (s *Server) newPage() *vdom.VNode {
	root := s.build(s.config.Title)
	var head *vdom.VNode
	root.Walk(func(n *vdom.VNode) bool {
		if n.Kind == vdom.KindElement && n.Tag == "head" {
			head = n
			return false
		}
		return true
	})
	if head == nil {
		head = root
	}
	for _, src := range s.headScripts {
		head.AppendChild(vdom.Script(vdom.Src(src)))
	}
	head.AppendChild(vdom.Script(vdom.Src(ClientPath), vdom.Attr{Key: "defer", Value: true}))
	return root
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	html, err := render.String(s.newPage())
	if err != nil {
		s.logger.Error("page render failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<!DOCTYPE html>\n" + html))
}

// HandleWebSocket upgrades the connection and runs a page session on it.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		s.metrics.RecordWSError("upgrade")
		return
	}

	sess := s.newSession(conn, r)
	if err := s.sessions.add(sess); err != nil {
		sess.cancel()
		s.logger.Warn("session rejected", "error", err)
		s.metrics.RecordWSError("limit")
		deadline := time.Now().Add(time.Second)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, err.Error()), deadline)
		conn.Close()
		return
	}
	s.metrics.RecordSessionOpen()
	sess.logger.Info("session opened", "page", sess.Page, "ip", sess.IP)

	sess.teardown = sess.shell.OnReady(shell.Handlers{Navigator: sess})
	go sess.WriteLoop()
	sess.Render()

	if u, err := url.Parse(sess.Page); err == nil {
		if load, ok := s.pages[u.Path]; ok {
			go func() {
				if err := load(sess.ctx, sess, u.Query()); err != nil {
					sess.logger.Warn("page load failed", "page", u.Path, "error", err)
				}
			}()
		}
	}

	sess.ReadLoop()
}

func (s *Server) newSession(conn *websocket.Conn, r *http.Request) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	id := uuid.NewString()
	page := r.URL.Query().Get("page")
	if page == "" {
		page = "/"
	}

	sess := &Session{
		ID:        id,
		Page:      page,
		IP:        remoteIP(r),
		CreatedAt: time.Now(),
		conn:      conn,
		config:    s.config,
		logger:    s.logger.With("session", id),
		metrics:   s.metrics,
		send:      make(chan []byte, 32),
		done:      make(chan struct{}),
		ctx:       ctx,
		cancel:    cancel,
		onClose:   s.sessions.remove,
	}
	sess.useRenderDebounce(s)

	root := s.newPage()
	opts := append([]shell.Option{
		shell.WithScheduler(s.sched),
		shell.WithLogger(sess.logger),
		shell.WithMetrics(s.metrics),
		shell.OnRender(sess.scheduleRender),
	}, s.shellOpts...)
	sess.shell = shell.New(root, shell.SurfacesFromPage(root), opts...)
	if s.api != nil {
		sess.api = s.api.With(sess.shell)
	}
	return sess
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}

// Run starts the server and blocks until shutdown.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	// Set up graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil

	case <-shutdown:
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes every session, then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.sessions.Shutdown()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Sessions returns the session manager.
func (s *Server) Sessions() *SessionManager { return s.sessions }

// Config returns the effective configuration.
func (s *Server) Config() *ServerConfig { return s.config }

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger { return s.logger }
