package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/litebot/internal/domain"
	"github.com/bnema/litebot/internal/ports"
	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxFrameBytes     = 4 << 20
	credsEntry        = "creds"
	keepAliveFailText = "keep-alive failed"
)

// Client creates sessions against a protocol gateway websocket endpoint.
type Client struct {
	Endpoint   string
	Header     http.Header
	HTTPClient *http.Client
	Logger     *zap.Logger
}

var _ ports.SessionFactory = (*Client)(nil)

func (c *Client) NewSession(ctx context.Context, cfg ports.SessionConfig) (ports.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.Endpoint == "" {
		return nil, errors.New("gateway endpoint is empty")
	}

	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		endpoint:   c.Endpoint,
		header:     c.Header,
		httpClient: c.HTTPClient,
		cfg:        cfg,
		registered: registeredFromCreds(cfg.Credentials),
		logger:     logger.With(zap.String("session_id", uuid.NewString())),
		pending:    map[string]chan frame{},
		queue:      newEventQueue(),
		done:       make(chan struct{}),
	}, nil
}

// Session is one websocket connection to the gateway. Events are read by
// one goroutine and delivered to the handler by another, in order.
type Session struct {
	endpoint   string
	header     http.Header
	httpClient *http.Client
	cfg        ports.SessionConfig
	registered bool
	logger     *zap.Logger

	conn    *websocket.Conn
	handler ports.EventHandler
	cancel  context.CancelFunc

	mu      sync.Mutex
	pending map[string]chan frame

	queue          *eventQueue
	closeQueued    atomic.Bool
	closing        atomic.Bool
	keepAliveLost  atomic.Bool
	connected      atomic.Bool
	done           chan struct{}
	dispatcherDone chan struct{}
	shutdownOnce   sync.Once
}

var _ ports.Session = (*Session)(nil)

func (s *Session) Registered() bool {
	return s.registered
}

func (s *Session) Connect(ctx context.Context, h ports.EventHandler) error {
	if h == nil {
		return errors.New("event handler is nil")
	}
	if !s.connected.CompareAndSwap(false, true) {
		return errors.New("session already connected")
	}

	conn, _, err := websocket.Dial(ctx, s.endpoint, &websocket.DialOptions{
		HTTPClient: s.httpClient,
		HTTPHeader: s.header,
	})
	if err != nil {
		return fmt.Errorf("dial gateway: %w", err)
	}
	conn.SetReadLimit(maxFrameBytes)

	hello, err := json.Marshal(newHello(s.cfg))
	if err != nil {
		_ = conn.CloseNow()
		return fmt.Errorf("encode hello frame: %w", err)
	}
	if err := conn.Write(ctx, websocket.MessageText, hello); err != nil {
		_ = conn.CloseNow()
		return fmt.Errorf("send hello frame: %w", err)
	}

	connCtx, cancel := context.WithCancel(context.Background())
	s.conn = conn
	s.handler = h
	s.cancel = cancel
	s.dispatcherDone = make(chan struct{})

	// Handlers run on the caller's context so a close of the socket does
	// not cancel a credential write that is already queued.
	deliverCtx := context.WithoutCancel(ctx)

	go s.readLoop(connCtx)
	go s.dispatchLoop(deliverCtx)
	if s.cfg.KeepAliveInterval > 0 {
		go s.keepAliveLoop(connCtx)
	}

	s.logger.Info("gateway session connected", zap.String("endpoint", s.endpoint), zap.Bool("registered", s.registered))
	return nil
}

func (s *Session) SendText(ctx context.Context, chatID, text string, mentions []string) error {
	select {
	case <-s.done:
		return domain.ErrSessionClosed
	default:
	}
	if s.conn == nil {
		return domain.ErrSessionClosed
	}

	requestID := uuid.NewString()
	reply := make(chan frame, 1)
	s.mu.Lock()
	s.pending[requestID] = reply
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.pending, requestID)
		s.mu.Unlock()
	}()

	if err := s.writeFrame(ctx, frame{
		Type:      frameSend,
		RequestID: requestID,
		ChatID:    chatID,
		Text:      text,
		Mentions:  mentions,
	}); err != nil {
		return fmt.Errorf("send text to %s: %w", chatID, err)
	}

	timeout := s.cfg.QueryTimeout
	if timeout <= 0 {
		timeout = domain.DefaultQueryTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-reply:
		if result.Error != "" {
			return fmt.Errorf("send text to %s: gateway: %s", chatID, result.Error)
		}
		return nil
	case <-timer.C:
		return fmt.Errorf("send text to %s: %w", chatID, domain.ErrSendTimeout)
	case <-s.done:
		return domain.ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes the socket. The handler still receives the final close
// update once the reader notices.
func (s *Session) Close() error {
	if s.conn == nil {
		return nil
	}
	s.closing.Store(true)

	if err := s.conn.Close(websocket.StatusNormalClosure, ""); err != nil {
		select {
		case <-s.done:
			return nil
		default:
		}
		return fmt.Errorf("close gateway session: %w", err)
	}
	return nil
}

// Done is closed when every queued event has been delivered. A session that
// never connected is already done.
func (s *Session) Done() <-chan struct{} {
	if s.dispatcherDone == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	return s.dispatcherDone
}

func (s *Session) readLoop(ctx context.Context) {
	defer s.shutdown()

	for {
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			s.queueSyntheticClose(err)
			return
		}

		var f frame
		if err := json.Unmarshal(data, &f); err != nil {
			s.logger.Warn("dropping malformed gateway frame", zap.Error(err))
			continue
		}

		s.route(ctx, f)
	}
}

func (s *Session) route(ctx context.Context, f frame) {
	switch f.Type {
	case frameSendResult:
		s.mu.Lock()
		reply, ok := s.pending[f.RequestID]
		s.mu.Unlock()
		if ok {
			select {
			case reply <- f:
			default:
			}
		}
	case frameGetMessage:
		s.answerGetMessage(ctx, f)
	case frameRetryCounter:
		s.answerRetryCounter(ctx, f)
	case frameConnectionUpdate:
		if domain.Connection(f.Connection) == domain.ConnectionClose {
			s.closeQueued.Store(true)
		}
		s.queue.push(f)
	case frameMessagesUpsert:
		if f = s.filterIgnored(f); len(f.Messages) > 0 {
			s.queue.push(f)
		}
	case frameCredsUpdate, frameGroupParticipants:
		s.queue.push(f)
	default:
		s.logger.Debug("ignoring unknown gateway frame", zap.String("type", f.Type))
	}
}

func (s *Session) filterIgnored(f frame) frame {
	if s.cfg.ShouldIgnoreChat == nil {
		return f
	}

	kept := f.Messages[:0]
	for _, m := range f.Messages {
		if s.cfg.ShouldIgnoreChat(m.Key.RemoteJID) {
			continue
		}
		kept = append(kept, m)
	}
	f.Messages = kept
	return f
}

func (s *Session) answerGetMessage(ctx context.Context, f frame) {
	reply := frame{Type: frameGetMessageResult, RequestID: f.RequestID}
	if f.Key != nil && s.cfg.GetMessage != nil {
		if msg, ok := s.cfg.GetMessage(ctx, f.Key.toDomain()); ok {
			reply.Found = true
			reply.Message = fromDomainMessage(msg)
		}
	}

	if err := s.writeFrame(ctx, reply); err != nil {
		s.logger.Debug("answer get-message failed", zap.Error(err))
	}
}

func (s *Session) answerRetryCounter(ctx context.Context, f frame) {
	reply := frame{Type: frameRetryCounterReply, RequestID: f.RequestID}
	if f.Key != nil && s.cfg.RetryCounter != nil {
		reply.Count = s.cfg.RetryCounter.Increment(f.Key.ID)
	}

	if err := s.writeFrame(ctx, reply); err != nil {
		s.logger.Debug("answer retry-counter failed", zap.Error(err))
	}
}

func (s *Session) queueSyntheticClose(err error) {
	if s.closeQueued.Swap(true) {
		return
	}

	reason := domain.ReasonConnectionLost
	if !s.keepAliveLost.Load() && (s.closing.Load() || websocket.CloseStatus(err) == websocket.StatusNormalClosure) {
		reason = domain.ReasonConnectionClosed
	}

	s.logger.Debug("gateway connection ended", zap.Int("reason", int(reason)), zap.Error(err))
	s.queue.push(frame{
		Type:       frameConnectionUpdate,
		Connection: string(domain.ConnectionClose),
		Disconnect: &disconnectFrame{StatusCode: int(reason), Message: err.Error()},
	})
}

func (s *Session) dispatchLoop(ctx context.Context) {
	defer close(s.dispatcherDone)

	for {
		f, ok := s.queue.pop()
		if !ok {
			return
		}

		if err := s.deliver(ctx, f); err != nil {
			s.logger.Error("event handler failed", zap.String("event", f.Type), zap.Error(err))
		}
	}
}

func (s *Session) deliver(ctx context.Context, f frame) error {
	switch f.Type {
	case frameConnectionUpdate:
		return s.handler.OnConnectionUpdate(ctx, f.connectionUpdate())
	case frameCredsUpdate:
		return s.handler.OnCredentialsUpdate(ctx, domain.CredentialBundle{Entries: f.Auth})
	case frameMessagesUpsert:
		return s.handler.OnMessages(ctx, f.messageBatch())
	case frameGroupParticipants:
		return s.handler.OnGroupParticipants(ctx, f.groupParticipants())
	default:
		return nil
	}
}

func (s *Session) keepAliveLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.KeepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			timeout := s.cfg.QueryTimeout
			if timeout <= 0 {
				timeout = domain.DefaultQueryTimeout
			}
			pingCtx, cancel := context.WithTimeout(ctx, timeout)
			err := s.conn.Ping(pingCtx)
			cancel()
			if err != nil && ctx.Err() == nil {
				s.logger.Warn("gateway keep-alive failed", zap.Error(err))
				s.keepAliveLost.Store(true)
				_ = s.conn.Close(websocket.StatusGoingAway, keepAliveFailText)
				return
			}
		}
	}
}

func (s *Session) writeFrame(ctx context.Context, f frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode %s frame: %w", f.Type, err)
	}

	return s.conn.Write(ctx, websocket.MessageText, data)
}

func (s *Session) shutdown() {
	s.shutdownOnce.Do(func() {
		close(s.done)
		s.cancel()
		s.queue.close()
		_ = s.conn.CloseNow()
	})
}

func registeredFromCreds(bundle domain.CredentialBundle) bool {
	raw, ok := bundle.Entries[credsEntry]
	if !ok {
		return false
	}

	var creds struct {
		Registered bool `json:"registered"`
	}
	if err := json.Unmarshal(raw, &creds); err != nil {
		return false
	}
	return creds.Registered
}
