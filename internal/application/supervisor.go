package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/litebot/internal/domain"
	"github.com/bnema/litebot/internal/ports"
	"go.uber.org/zap"
)

const (
	noticeCredentialsMissing = "Credentials not configured yet!"
	noticeScanPairingCode    = "Scan the QR code that will appear shortly to link your account."
	noticeConnected          = "Bot connected successfully!"
	tutorQuestion            = "Enable the tutor with detailed pairing instructions (for example on Termux)? (y/n)"
)

var tutorSteps = []string{
	"Open WhatsApp on the phone that will run the bot.",
	"Tap the menu, then Linked devices, then Link a device.",
	"Point the camera at the code below. When it expires a new one is shown automatically.",
}

type SupervisorDeps struct {
	Credentials ports.CredentialStore
	Versions    ports.VersionSource
	Sessions    ports.SessionFactory
	Messages    ports.MessageStore
	Retries     ports.RetryCounter
	Handler     ports.MessageHandler
	Welcomer    ports.GroupWelcomer
	Notifier    ports.Notifier
	Pairing     ports.PairingRenderer
	// Prompter is optional; without one tutor mode is never offered.
	Prompter ports.Prompter
	Clock    ports.Clock
	Logger   *zap.Logger
}

type SupervisorOptions struct {
	Browser             domain.Browser
	QueryTimeout        time.Duration
	KeepAliveInterval   time.Duration
	MarkOnlineOnConnect bool
	SyncHistory         bool
	PairingValidity     time.Duration
	TutorPrompt         bool
	Reconnect           ReconnectPolicy
}

// DefaultSupervisorOptions mirrors the connection settings the bot has
// always used.
func DefaultSupervisorOptions() SupervisorOptions {
	return SupervisorOptions{
		Browser:             domain.DefaultBrowser(),
		QueryTimeout:        domain.DefaultQueryTimeout,
		KeepAliveInterval:   domain.DefaultKeepAliveInterval,
		MarkOnlineOnConnect: true,
		SyncHistory:         false,
		PairingValidity:     domain.DefaultPairingValidity,
	}
}

// Supervisor owns the current session and replaces it after every
// non-terminal disconnect.
type Supervisor struct {
	deps SupervisorDeps
	opts SupervisorOptions

	mu      sync.RWMutex
	state   domain.SessionState
	session ports.Session
	tutor   bool
}

func NewSupervisor(deps SupervisorDeps, opts SupervisorOptions) (*Supervisor, error) {
	var missing []error
	if deps.Credentials == nil {
		missing = append(missing, errors.New("credential store is nil"))
	}
	if deps.Versions == nil {
		missing = append(missing, errors.New("version source is nil"))
	}
	if deps.Sessions == nil {
		missing = append(missing, errors.New("session factory is nil"))
	}
	if deps.Notifier == nil {
		missing = append(missing, errors.New("notifier is nil"))
	}
	if deps.Pairing == nil {
		missing = append(missing, errors.New("pairing renderer is nil"))
	}
	if err := errors.Join(missing...); err != nil {
		return nil, fmt.Errorf("new supervisor: %w", err)
	}

	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if opts.Browser == (domain.Browser{}) {
		opts.Browser = domain.DefaultBrowser()
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = domain.DefaultQueryTimeout
	}
	if opts.PairingValidity <= 0 {
		opts.PairingValidity = domain.DefaultPairingValidity
	}

	return &Supervisor{deps: deps, opts: opts, state: domain.StateInit}, nil
}

func (s *Supervisor) State() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Session returns the most recently started session, or nil.
func (s *Supervisor) Session() ports.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Start acquires and connects one session.
func (s *Supervisor) Start(ctx context.Context) (ports.Session, error) {
	events, err := s.start(ctx)
	if err != nil {
		return nil, err
	}
	return events.session, nil
}

// Run keeps a session alive until ctx is cancelled or the device is logged
// out. Cancellation closes the current session and returns nil. A new session
// is only started once the previous one delivered its last event.
func (s *Supervisor) Run(ctx context.Context) error {
	attempt := 0
	for {
		events, err := s.start(ctx)
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			events.shuttingDown.Store(true)
			if err := events.session.Close(); err != nil {
				s.deps.Logger.Warn("close session on shutdown failed", zap.Error(err))
			}
			s.awaitDrained(nil, events.session)
			return nil
		case category := <-events.closed:
			if err := events.session.Close(); err != nil {
				s.deps.Logger.Debug("close ended session failed", zap.Error(err))
			}
			s.awaitDrained(ctx.Done(), events.session)
			if category.Terminal {
				return domain.ErrLoggedOut
			}
			if ctx.Err() != nil {
				return nil
			}
		}

		if events.opened.Load() {
			attempt = 0
		}
		delay := s.opts.Reconnect.Next(attempt)
		attempt++

		s.deps.Logger.Info("reconnecting", zap.Int("attempt", attempt), zap.Duration("delay", delay))
		if delay <= 0 {
			continue
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

func (s *Supervisor) start(ctx context.Context) (*sessionEvents, error) {
	s.setState(domain.StateConnecting)

	creds, err := s.deps.Credentials.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	version, err := s.deps.Versions.LatestVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch protocol version: %w", err)
	}

	session, err := s.deps.Sessions.NewSession(ctx, s.sessionConfig(version, creds))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if !session.Registered() {
		if err := s.preparePairing(ctx); err != nil {
			_ = session.Close()
			return nil, err
		}
	}

	events := &sessionEvents{
		sup:     s,
		session: session,
		closed:  make(chan domain.DisconnectCategory, 1),
		started: s.deps.Clock.Now(),
	}
	if err := session.Connect(ctx, events); err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("connect session: %w", err)
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.deps.Logger.Info("session started",
		zap.Ints("version", version[:]),
		zap.Bool("registered", session.Registered()))
	return events, nil
}

// awaitDrained waits until session delivered its queued events, stop is
// closed or the query timeout passes.
func (s *Supervisor) awaitDrained(stop <-chan struct{}, session ports.Session) {
	timer := time.NewTimer(s.opts.QueryTimeout)
	defer timer.Stop()

	select {
	case <-session.Done():
	case <-stop:
	case <-timer.C:
		s.deps.Logger.Warn("ended session still delivering events", zap.Duration("waited", s.opts.QueryTimeout))
	}
}

func (s *Supervisor) sessionConfig(version domain.ProtocolVersion, creds domain.CredentialBundle) ports.SessionConfig {
	cfg := ports.SessionConfig{
		Version:             version,
		Browser:             s.opts.Browser,
		QueryTimeout:        s.opts.QueryTimeout,
		KeepAliveInterval:   s.opts.KeepAliveInterval,
		MarkOnlineOnConnect: s.opts.MarkOnlineOnConnect,
		SyncHistory:         s.opts.SyncHistory,
		Credentials:         creds,
		ShouldIgnoreChat:    domain.IgnoredChat,
		RetryCounter:        s.deps.Retries,
	}
	if store := s.deps.Messages; store != nil {
		cfg.GetMessage = func(_ context.Context, key domain.MessageKey) (domain.Message, bool) {
			return store.Load(key.ChatID, key.ID)
		}
	}
	return cfg
}

func (s *Supervisor) preparePairing(ctx context.Context) error {
	s.deps.Notifier.Notify(domain.NoticeWarning, noticeCredentialsMissing)

	if s.opts.TutorPrompt && s.deps.Prompter != nil {
		enabled, err := s.deps.Prompter.Confirm(ctx, tutorQuestion)
		if err != nil {
			return fmt.Errorf("ask for tutor mode: %w", err)
		}
		s.mu.Lock()
		s.tutor = enabled
		s.mu.Unlock()
	}

	s.deps.Notifier.Notify(domain.NoticeInfo, noticeScanPairingCode)
	return nil
}

func (s *Supervisor) setState(state domain.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *Supervisor) tutorEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tutor
}

// sessionEvents handles the events of one session.
type sessionEvents struct {
	sup     *Supervisor
	session ports.Session
	closed  chan domain.DisconnectCategory
	started time.Time
	opened  atomic.Bool
	ended   atomic.Bool
	// shuttingDown marks a close requested by Run itself on cancellation.
	shuttingDown atomic.Bool
}

var _ ports.EventHandler = (*sessionEvents)(nil)

func (e *sessionEvents) OnConnectionUpdate(_ context.Context, update domain.ConnectionUpdate) error {
	s := e.sup

	if update.QR != "" {
		s.setState(domain.StatePairing)
		if s.tutorEnabled() {
			for _, step := range tutorSteps {
				s.deps.Notifier.Notify(domain.NoticeTutor, step)
			}
		}
		if err := s.deps.Pairing.RenderPairing(update.QR, s.opts.PairingValidity); err != nil {
			return fmt.Errorf("render pairing code: %w", err)
		}
	}

	switch update.Connection {
	case domain.ConnectionConnecting:
		s.deps.Logger.Debug("session connecting")
	case domain.ConnectionOpen:
		if !e.opened.CompareAndSwap(false, true) {
			return nil
		}
		s.setState(domain.StateOpen)
		s.deps.Notifier.Notify(domain.NoticeSuccess, noticeConnected)
		s.deps.Logger.Info("session open", zap.Duration("took", s.deps.Clock.Now().Sub(e.started)))
	case domain.ConnectionClose:
		e.onClose(update)
	}

	return nil
}

func (e *sessionEvents) onClose(update domain.ConnectionUpdate) {
	if !e.ended.CompareAndSwap(false, true) {
		return
	}
	s := e.sup

	category := update.Reason.Classify()
	if e.shuttingDown.Load() {
		s.deps.Logger.Debug("session closed on shutdown", zap.String("reason", category.Label))
		return
	}
	s.deps.Notifier.Notify(category.Level, category.Notice)

	fields := []zap.Field{
		zap.Int("status_code", int(update.Reason)),
		zap.String("reason", category.Label),
		zap.String("message", update.Message),
		zap.Duration("uptime", s.deps.Clock.Now().Sub(e.started)),
	}
	if category.Terminal {
		s.setState(domain.StateClosedTerminal)
		s.deps.Logger.Error("session logged out", fields...)
	} else {
		s.setState(domain.StateClosedRetrying)
		s.deps.Logger.Warn("session closed", fields...)
	}

	select {
	case e.closed <- category:
	default:
	}
}

func (e *sessionEvents) OnCredentialsUpdate(ctx context.Context, bundle domain.CredentialBundle) error {
	if err := e.sup.deps.Credentials.Save(ctx, bundle); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

func (e *sessionEvents) OnMessages(ctx context.Context, batch domain.MessageBatch) error {
	if store := e.sup.deps.Messages; store != nil {
		for _, msg := range batch.Messages {
			store.Record(msg)
		}
	}

	if e.sup.deps.Handler == nil {
		return nil
	}
	if err := e.sup.deps.Handler.HandleMessages(ctx, e.session, batch); err != nil {
		return fmt.Errorf("handle messages: %w", err)
	}
	return nil
}

func (e *sessionEvents) OnGroupParticipants(ctx context.Context, update domain.GroupParticipantsUpdate) error {
	if e.sup.deps.Welcomer == nil {
		return nil
	}
	if err := e.sup.deps.Welcomer.Welcome(ctx, e.session, update); err != nil {
		return fmt.Errorf("welcome participants: %w", err)
	}
	return nil
}
