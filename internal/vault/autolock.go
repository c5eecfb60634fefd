package vault

import (
	"time"

	"github.com/akarpov/passvault/internal/logger"
)

// AutoLock is a background worker that locks the session after it has been
// idle for longer than the configured timeout. It implements
// [workers.Worker].
type AutoLock struct {
	session Session
	timeout time.Duration
	logger  *logger.Logger

	stop chan struct{}
	done chan struct{}
}

// pollInterval bounds how late an auto-lock can fire past the idle timeout.
const pollInterval = 5 * time.Second

// NewAutoLock constructs an [AutoLock] worker. A zero or negative timeout
// disables it.
func NewAutoLock(session Session, timeout time.Duration, log *logger.Logger) *AutoLock {
	return &AutoLock{
		session: session,
		timeout: timeout,
		logger:  log,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Run starts the idle watcher goroutine and returns.
func (a *AutoLock) Run() {
	if a.timeout <= 0 {
		close(a.done)
		return
	}

	go a.watch()
}

// Stop signals the watcher to finish and waits for it.
func (a *AutoLock) Stop() {
	close(a.stop)
	<-a.done
}

func (a *AutoLock) watch() {
	defer close(a.done)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stop:
			return
		case <-ticker.C:
			if a.session.Unlocked() && a.session.IdleFor() >= a.timeout {
				a.logger.Info().Str("func", "AutoLock.watch").Msg("idle timeout reached, locking vault")
				a.session.Lock()
			}
		}
	}
}
