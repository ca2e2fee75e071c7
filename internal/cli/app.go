package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"picshelf/internal/auth"
	"picshelf/internal/config"
	"picshelf/internal/gallery"
	"picshelf/internal/localstore"
	"picshelf/internal/logging"
	"picshelf/internal/services"
)

// App holds the session context of the running client: the wired services,
// the current user, and the watcher bound to the logged-in session. There is
// no ambient global session state; everything flows through this object.
type App struct {
	config  *config.Config
	logger  logging.Logger
	creds   services.CredentialService
	session services.SessionService
	listing *gallery.Service
	view    *gallery.View
	db      *sql.DB
	reader  *bufio.Reader

	mu            sync.Mutex
	userEmail     string
	watcher       *services.Watcher
	watcherCancel context.CancelFunc
	notices       chan string
}

// NewApp opens the local store and wires the services. The caller owns the
// returned App and must Close it on shutdown.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	store, db, err := localstore.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing local store", "error", err)
		return nil, err
	}

	creds := services.NewCredentialService(db)
	session := services.NewSessionService(creds, store, logger, []byte(auth.SigningKey), cfg.TokenTTL)
	listing := gallery.NewService(cfg.ListingEndpoint, cfg.ListingPage, cfg.ListingLimit, logger)

	return &App{
		config:  cfg,
		logger:  logger,
		creds:   creds,
		session: session,
		listing: listing,
		view:    gallery.NewView(cfg.PageSize),
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		notices: make(chan string, 1),
	}, nil
}

// Close releases the local store.
func (a *App) Close() error {
	return a.db.Close()
}

// Run resumes a persisted session if one is still valid, then blocks in the
// REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.endSession()

	if email, err := a.session.CurrentUser(ctx); err == nil {
		a.startSession(ctx, email)
		printlnFn(fmt.Sprintf("Welcome back, %s", email))
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, a.touch, a.pendingNotice, scanner)
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userEmail != ""
}

func (a *App) currentEmail() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userEmail
}

func (a *App) getStatus() string {
	email := a.currentEmail()
	if email == "" {
		return "(logged out)"
	}
	return fmt.Sprintf("(%s)", email)
}

// startSession records the logged-in user and starts the idle/expiry watcher
// for this session. Exactly one watcher runs at a time: any previous session
// is torn down first.
func (a *App) startSession(ctx context.Context, email string) {
	a.endSession()

	// a listing fetched by a previous session must not leak into this one;
	// the view is only touched from the command loop, never from the watcher
	a.view.Reset()

	watcherCtx, cancel := context.WithCancel(ctx)
	w := services.NewWatcher(a.session, a.logger, a.config.IdleTimeout, a.config.PollInterval, a.handleForcedLogout)

	a.mu.Lock()
	a.userEmail = email
	a.watcher = w
	a.watcherCancel = cancel
	a.mu.Unlock()

	go w.Run(watcherCtx)
}

// endSession clears the in-memory session state and releases the watcher.
// Safe to call when no session is active.
func (a *App) endSession() {
	a.mu.Lock()
	cancel := a.watcherCancel
	a.userEmail = ""
	a.watcher = nil
	a.watcherCancel = nil
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// handleForcedLogout is the navigation boundary callback: it runs on the
// watcher goroutine after the token has been evicted, clears the session
// context, and queues the reason for the REPL banner.
func (a *App) handleForcedLogout(reason string) {
	a.endSession()

	select {
	case a.notices <- reason:
	default:
	}
}

// touch records a qualifying user-interaction event with the active watcher.
func (a *App) touch() {
	a.mu.Lock()
	w := a.watcher
	a.mu.Unlock()

	if w != nil {
		w.Touch()
	}
}

// pendingNotice returns a queued forced-logout reason, if any.
func (a *App) pendingNotice() (string, bool) {
	select {
	case msg := <-a.notices:
		return msg, true
	default:
		return "", false
	}
}
