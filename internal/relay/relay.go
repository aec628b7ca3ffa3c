package relay

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/putwheel/optionstream/internal/translate"
	"github.com/putwheel/optionstream/internal/upstream"
)

const clientWriteTimeout = 2 * time.Second

// State tracks where a connection is in its lifecycle.
type State int

const (
	StateAccepting State = iota
	StateGreeting
	StateUpstreamConnecting
	StateUpstreamAuthenticating
	StateUpstreamSubscribing
	StateStreaming
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAccepting:
		return "accepting"
	case StateGreeting:
		return "greeting"
	case StateUpstreamConnecting:
		return "upstream_connecting"
	case StateUpstreamAuthenticating:
		return "upstream_authenticating"
	case StateUpstreamSubscribing:
		return "upstream_subscribing"
	case StateStreaming:
		return "streaming"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Config configures relays created by a Relay factory.
type Config struct {
	Upstream    upstream.Config // feed endpoint, credentials, queue sizing
	ReadTimeout time.Duration   // keepalive window during upstream silence
}

// Relay creates and runs per-connection streaming sessions.
type Relay struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a Relay factory.
func New(cfg Config, logger *slog.Logger) *Relay {
	if logger == nil {
		logger = slog.Default()
	}
	return &Relay{cfg: cfg, logger: logger}
}

// connContext is the per-connection state, owned exclusively by the
// goroutine running Handle for its entire lifetime.
type connContext struct {
	id           uuid.UUID
	conn         *websocket.Conn
	symbol       string
	session      *upstream.Session // present only once upstream is open
	state        State
	lastActivity time.Time
}

// Handle runs the full relay lifecycle on an accepted client connection.
// It returns when the client disconnects or the stream fails; the caller
// closes the websocket afterwards.
func (r *Relay) Handle(ctx context.Context, conn *websocket.Conn, rawSymbol string) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cc := &connContext{
		id:           uuid.New(),
		conn:         conn,
		symbol:       CanonicalSymbol(rawSymbol),
		state:        StateAccepting,
		lastActivity: time.Now(),
	}
	logger := r.logger.With("conn_id", cc.id, "symbol", cc.symbol)

	defer func() {
		cc.state = StateTerminated
		if cc.session != nil {
			cc.session.Close()
		}
		logger.Info("relay session ended")
	}()

	// Watch the client side. A read error means the client is gone; cancel
	// to unblock any pending upstream wait.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	cc.state = StateGreeting
	if err := r.send(cc, connectingMessage(cc.symbol, time.Now())); err != nil {
		return
	}

	cc.state = StateUpstreamConnecting
	logger.Debug("opening upstream session")

	// The session's Start covers connecting, authenticating, and
	// subscribing as one ordered sequence; any failure here is final for
	// this connection.
	sess := upstream.NewSession(r.cfg.Upstream, logger)
	if err := sess.Start(ctx, cc.symbol); err != nil {
		sess.Close()
		r.reportError(cc, err, logger)
		return
	}
	cc.session = sess

	cc.state = StateStreaming
	if err := r.send(cc, connectedMessage(time.Now())); err != nil {
		return
	}
	logger.Info("streaming started")

	if err := r.stream(ctx, cc); err != nil {
		r.reportError(cc, err, logger)
	}
}

// stream is the steady-state loop: wait for the next upstream frame
// bounded by the keepalive window, forward what translates, mask provider
// silence with keepalives. Returns nil on client disconnect and the
// terminal error otherwise.
func (r *Relay) stream(ctx context.Context, cc *connContext) error {
	for {
		frame, err := cc.session.NextFrame(ctx, r.cfg.ReadTimeout)
		switch {
		case err == nil:
			cc.lastActivity = time.Now()
			if werr := r.forward(cc, frame); werr != nil {
				if ctx.Err() != nil {
					return nil // client went away mid-write
				}
				return werr
			}

		case errors.Is(err, upstream.ErrTimeout):
			// Provider silence, not a failure. One keepalive per window.
			if werr := r.send(cc, keepaliveMessage(time.Now())); werr != nil {
				if ctx.Err() != nil {
					return nil
				}
				return werr
			}

		case ctx.Err() != nil:
			// Client disconnect is not an error; no message is owed.
			return nil

		default:
			return err
		}
	}
}

// forward translates one frame and writes it downstream. Frames that
// decode to neither trade nor quote are dropped without failing the
// stream.
func (r *Relay) forward(cc *connContext, frame []byte) error {
	res := translate.Decode(frame)
	switch res.Kind {
	case translate.KindTrade:
		return r.send(cc, newTradeMessage(res.Trade))
	case translate.KindQuote:
		return r.send(cc, newQuoteMessage(res.Quote))
	default:
		return nil
	}
}

// reportError sends the single error notice and closes the upstream
// session if one is open. Both halves are best-effort; teardown proceeds
// regardless.
func (r *Relay) reportError(cc *connContext, cause error, logger *slog.Logger) {
	logger.Warn("relay session failed", "state", cc.state.String(), "error", cause)

	if err := r.send(cc, errorMessage(cause.Error(), time.Now())); err != nil {
		logger.Debug("error notice undeliverable", "error", err)
	}
	if cc.session != nil {
		cc.session.Close()
	}
}

// send writes one JSON message to the client under a bounded deadline.
func (r *Relay) send(cc *connContext, v any) error {
	cc.conn.SetWriteDeadline(time.Now().Add(clientWriteTimeout))
	return cc.conn.WriteJSON(v)
}
