package services

import (
	"context"
	"errors"
	"time"

	"picshelf/internal/common"
	"picshelf/internal/logging"
)

// User-facing reasons carried over the navigation boundary on forced logout.
const (
	ReasonInactivity     = "You've been logged out due to inactivity"
	ReasonSessionExpired = "Your session has expired, please log in again"
)

// Watcher forces a logout when the user has been idle for too long or when a
// periodic poll finds the session token invalid or expired.
//
// One Watcher serves one logged-in session: Run signals onLogout at most once
// and then returns, and cancelling the context passed to Run releases the
// idle timer, the poll ticker, and the goroutine. The owner must make sure
// exactly one Run loop is active at a time, otherwise a stale loop could fire
// a duplicate forced logout.
type Watcher struct {
	session      SessionService
	logger       logging.Logger
	idleTimeout  time.Duration
	pollInterval time.Duration
	onLogout     func(reason string)
	activity     chan struct{}
}

// NewWatcher constructs a Watcher. idleTimeout is the inactivity window
// (2 minutes in the reference behavior), pollInterval the validity re-check
// period (10 seconds). onLogout is invoked, with a user-facing reason, after
// the token has been evicted.
func NewWatcher(session SessionService, logger logging.Logger, idleTimeout, pollInterval time.Duration, onLogout func(reason string)) *Watcher {
	return &Watcher{
		session:      session,
		logger:       logger,
		idleTimeout:  idleTimeout,
		pollInterval: pollInterval,
		onLogout:     onLogout,
		activity:     make(chan struct{}, 1),
	}
}

// Touch records a user-interaction event. It never blocks: if a previous
// signal is still pending, the two collapse into one.
func (w *Watcher) Touch() {
	select {
	case w.activity <- struct{}{}:
	default:
	}
}

// Run watches the session until a forced logout or until ctx is cancelled.
// Every Touch restarts the idle timer from zero.
func (w *Watcher) Run(ctx context.Context) {
	idle := time.NewTimer(w.idleTimeout)
	defer idle.Stop()

	poll := time.NewTicker(w.pollInterval)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.activity:
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(w.idleTimeout)

		case <-idle.C:
			w.logger.Info(ctx, "idle timeout reached, forcing logout")
			w.forceLogout(ctx, ReasonInactivity)
			return

		case <-poll.C:
			err := w.session.Validate(ctx)
			if err == nil {
				continue
			}
			switch {
			case errors.Is(err, common.ErrTokenExpired):
				w.logger.Info(ctx, "session token expired, forcing logout")
			case errors.Is(err, common.ErrNotFound):
				w.logger.Info(ctx, "session token gone, forcing logout")
			default:
				w.logger.Warn(ctx, "session token invalid, forcing logout", "error", err)
			}
			w.forceLogout(ctx, ReasonSessionExpired)
			return
		}
	}
}

// forceLogout evicts the token and notifies the owner. Logging out an already
// logged-out session is a no-op, so double signals stay harmless.
func (w *Watcher) forceLogout(ctx context.Context, reason string) {
	if err := w.session.Logout(ctx); err != nil {
		w.logger.Error(ctx, "failed to evict token on forced logout", "error", err)
	}
	if w.onLogout != nil {
		w.onLogout(reason)
	}
}
