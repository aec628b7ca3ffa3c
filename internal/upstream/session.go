package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/putwheel/optionstream/internal/translate"
)

const (
	handshakeTimeout = 10 * time.Second
	bootstrapTimeout = 10 * time.Second
	writeTimeout     = 5 * time.Second
)

// Session is a single authenticated, subscribed feed connection.
type Session struct {
	cfg    Config
	logger *slog.Logger

	conn *websocket.Conn

	// Output channels
	frames chan []byte
	errs   chan error
	done   chan struct{}

	// Write serialization
	writeMu sync.Mutex

	// State
	mu       sync.Mutex
	lastPong time.Time
	closed   bool
	started  bool
}

// NewSession creates an unconnected session.
func NewSession(cfg Config, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		cfg:    cfg,
		logger: logger,
		frames: make(chan []byte, cfg.BufferSize),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}
}

// Start runs the ordered bootstrap: dial, authenticate, subscribe the given
// canonical symbol to both trade and quote channels. Any failure leaves the
// session closed; it cannot be restarted.
func (s *Session) Start(ctx context.Context, symbol string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.mu.Unlock()

	dialer := websocket.Dialer{
		HandshakeTimeout: handshakeTimeout,
	}

	conn, _, err := dialer.DialContext(ctx, s.cfg.URL, nil)
	if err != nil {
		return fmt.Errorf("dial feed: %w", err)
	}

	s.mu.Lock()
	s.conn = conn
	s.lastPong = time.Now()
	s.mu.Unlock()

	conn.SetPongHandler(func(string) error {
		s.mu.Lock()
		s.lastPong = time.Now()
		s.mu.Unlock()
		return nil
	})

	if err := s.authenticate(); err != nil {
		conn.Close()
		return err
	}

	if err := s.subscribe(symbol); err != nil {
		conn.Close()
		return err
	}

	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	go s.readLoop()
	go s.heartbeatLoop()

	s.logger.Debug("upstream session streaming", "symbol", symbol)

	return nil
}

// authenticate sends the auth frame and reads exactly one response frame.
// The provider may answer with its connection greeting or the auth ack
// first; both carry the success tag.
func (s *Session) authenticate() error {
	if err := s.sendJSON(authRequest{
		Action: "auth",
		Key:    s.cfg.Key,
		Secret: s.cfg.Secret,
	}); err != nil {
		return fmt.Errorf("send auth: %w", err)
	}

	s.conn.SetReadDeadline(time.Now().Add(bootstrapTimeout))
	_, frame, err := s.conn.ReadMessage()
	if err != nil {
		return fmt.Errorf("read auth response: %w", err)
	}
	s.conn.SetReadDeadline(time.Time{})

	if !translate.IsAuthAck(frame) {
		return ErrAuthFailed
	}

	return nil
}

// subscribe names the symbol on both channels. The provider may interleave
// the ack with data frames, so no ack wait happens here.
func (s *Session) subscribe(symbol string) error {
	if err := s.sendJSON(subscribeRequest{
		Action: "subscribe",
		Trades: []string{symbol},
		Quotes: []string{symbol},
	}); err != nil {
		return fmt.Errorf("send subscribe: %w", err)
	}
	return nil
}

// NextFrame waits for the next raw frame, bounded by timeout. Returns
// ErrTimeout when the window elapses without a frame, ErrClosed when the
// session is gone, or the underlying transport error.
func (s *Session) NextFrame(ctx context.Context, timeout time.Duration) ([]byte, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case frame := <-s.frames:
		return frame, nil
	case err := <-s.errs:
		return nil, err
	case <-timer.C:
		return nil, ErrTimeout
	case <-s.done:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close shuts the session down. Idempotent and safe to call from any state,
// including a session that never connected.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	conn := s.conn
	s.mu.Unlock()

	close(s.done)

	if conn != nil {
		conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		conn.Close()
	}
}

// sendJSON writes one frame under the write lock with a bounded deadline.
func (s *Session) sendJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// readLoop drains the connection into the frame queue.
func (s *Session) readLoop() {
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			// Errors after Close() are expected teardown noise.
			select {
			case <-s.done:
			default:
				select {
				case s.errs <- err:
				default:
				}
			}
			return
		}

		select {
		case s.frames <- data:
		case <-s.done:
			return
		default:
			s.logger.Warn("frame queue full, dropping frame")
		}
	}
}

// heartbeatLoop pings the provider and flags stale connections.
func (s *Session) heartbeatLoop() {
	ticker := time.NewTicker(s.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.writeMu.Lock()
			err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
			s.writeMu.Unlock()
			if err != nil {
				s.logger.Debug("failed to send ping", "error", err)
			}

			s.mu.Lock()
			lastPong := s.lastPong
			s.mu.Unlock()

			if time.Since(lastPong) > s.cfg.PingTimeout {
				s.logger.Warn("no pong received, connection stale",
					"last_pong", lastPong,
					"timeout", s.cfg.PingTimeout,
				)
				select {
				case s.errs <- ErrStaleConnection:
				default:
				}
				return
			}
		}
	}
}
