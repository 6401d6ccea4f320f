package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wmspro/wmsui/internal/errors"
	"github.com/wmspro/wmsui/pkg/api"
	"github.com/wmspro/wmsui/pkg/debounce"
	"github.com/wmspro/wmsui/pkg/middleware"
	"github.com/wmspro/wmsui/pkg/shell"
)

// Session is one bridge connection and the page it drives.
type Session struct {
	// ID is a random UUID.
	ID string

	// Page is the path and query the browser was showing when it connected.
	Page string

	// IP is the client address.
	IP string

	// CreatedAt is when the connection was accepted.
	CreatedAt time.Time

	conn    *websocket.Conn
	config  *ServerConfig
	shell   *shell.Shell
	api     *api.Client
	logger  *slog.Logger
	metrics *middleware.Metrics

	render   func()
	teardown func()

	send      chan []byte
	done      chan struct{}
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	onClose   func(*Session)
}

// Shell returns the session's page shell.
func (s *Session) Shell() *shell.Shell { return s.shell }

// API returns the backend client bound to this page, so failures toast on
// it. Nil when the server has no API client.
func (s *Session) API() *api.Client { return s.api }

// Context is cancelled when the session closes.
func (s *Session) Context() context.Context { return s.ctx }

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// Done is closed when the session closes.
func (s *Session) Done() <-chan struct{} { return s.done }

// Navigate sends the browser to url. Session implements shell.Navigator.
func (s *Session) Navigate(url string) {
	s.enqueue(Message{Type: MessageNavigate, URL: url})
}

// Render pushes the current page body to the browser now.
func (s *Session) Render() {
	select {
	case <-s.done:
		return
	default:
	}
	html, err := s.shell.RenderBody()
	if err != nil {
		s.logger.Error("render failed", "error", err)
		return
	}
	s.enqueue(Message{Type: MessageRender, HTML: html})
}

func (s *Session) scheduleRender() {
	if s.render != nil {
		s.render()
	}
}

func (s *Session) useRenderDebounce(srv *Server) {
	if s.config.RenderDebounce < 0 {
		s.render = s.Render
		return
	}
	s.render = debounce.Func(srv.sched, s.config.RenderDebounce, s.Render)
}

func (s *Session) enqueue(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("encode message failed", "type", msg.Type, "error", err)
		return
	}
	select {
	case s.send <- data:
	case <-s.done:
	}
}

// ReadLoop reads browser events and dispatches them to the shell. It blocks
// until the connection fails or the session closes.
func (s *Session) ReadLoop() {
	defer s.Close()

	s.conn.SetReadLimit(s.config.MaxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	})

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
				s.metrics.RecordWSError("read")
			}
			return
		}
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		var ev shell.Event
		if err := json.Unmarshal(msg, &ev); err != nil || ev.Type == "" {
			if err == nil {
				err = errors.New("W030").WithDetail("missing event type")
			}
			s.logger.Warn("invalid bridge message", "error", errors.FromError(err, "W030").String())
			s.metrics.RecordWSError("decode")
			continue
		}
		s.shell.Dispatch(ev)
	}
}

// WriteLoop writes queued messages and heartbeat pings. It blocks until the
// session closes or a write fails.
func (s *Session) WriteLoop() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case data := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				s.logger.Debug("write failed", "error", err)
				s.metrics.RecordWSError("write")
				s.Close()
				return
			}

		case <-ticker.C:
			deadline := time.Now().Add(s.config.WriteTimeout)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				s.metrics.RecordWSError("ping")
				s.Close()
				return
			}

		case <-s.done:
			return
		}
	}
}

// Close ends the session. It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		close(s.done)
		if s.teardown != nil {
			s.teardown()
		}
		s.shell.Toaster().Clear()

		deadline := time.Now().Add(time.Second)
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		s.conn.Close()

		s.metrics.RecordSessionClose()
		s.logger.Info("session closed", "duration", time.Since(s.CreatedAt))
		if s.onClose != nil {
			s.onClose(s)
		}
	})
}
