package thrower

import (
	"runtime"
	"sync/atomic"

	"github.com/joeycumines/logiface"
)

type (
	// LauncherConfig models optional configuration, for NewLauncher.
	LauncherConfig struct {
		// ConcurrencyLimit bounds the number of concurrently-admitted
		// optional launches (Launcher.TryGo), if nonzero.
		// **Defaults to max(1, runtime.GOMAXPROCS(0)/2), if 0.**
		// Negative values cause every optional launch to be rejected.
		//
		// The limit may be adjusted at any time, after initialization, via
		// Launcher.SetConcurrencyLimit.
		ConcurrencyLimit int

		// Logger receives diagnostic events (discarded failures, rejected
		// launches, handler panics), if non-nil.
		// **Defaults to nil (fully silent).**
		Logger *logiface.Logger[logiface.Event]
	}

	// Launcher schedules fire-and-forget work items. The zero value is NOT
	// usable - instances must be initialized using the NewLauncher factory.
	//
	// All methods are safe for concurrent use.
	Launcher struct {
		logger   atomic.Pointer[logiface.Logger[logiface.Event]] // configurable
		limit    atomic.Int64                                    // configurable
		inFlight atomic.Int64                                    // admissions not yet released
	}
)

// for testing purposes
var admitHook func(count int64)

// defaultLauncher backs the package-level launch functions.
var defaultLauncher = NewLauncher(nil)

// NewLauncher initializes a new Launcher, using the provided LauncherConfig.
// The provided config may be nil, in which case the documented defaults will
// be used.
func NewLauncher(config *LauncherConfig) *Launcher {
	launcher := new(Launcher)
	launcher.limit.Store(int64(defaultConcurrencyLimit()))
	if config != nil {
		if config.ConcurrencyLimit != 0 {
			launcher.limit.Store(int64(config.ConcurrencyLimit))
		}
		if config.Logger != nil {
			launcher.logger.Store(config.Logger)
		}
	}
	return launcher
}

func defaultConcurrencyLimit() int {
	if n := runtime.GOMAXPROCS(0) / 2; n > 1 {
		return n
	}
	return 1
}

// Go schedules work to run on its own goroutine, returning without waiting
// for it to start (or finish). It is never subject to the concurrency limit.
//
// If work fails (returns a non-nil error, or panics), the failure is
// delivered to handler, on the work goroutine, after work terminates.
// Recovered panics are delivered wrapped as [PanicError]. The handler may be
// nil, in which case failures are discarded.
//
// A nil work results in a [MissingArgumentError], with nothing scheduled.
// That is the only error returned by this method.
func (x *Launcher) Go(work func() error, handler func(error)) error {
	if work == nil {
		return &MissingArgumentError{Name: `work`}
	}
	go x.run(work, handler)
	return nil
}

// TryGo attempts to schedule work, subject to the concurrency limit,
// returning whether it was admitted. Rejection is a normal outcome, not an
// error. Admitted work behaves exactly as if scheduled via [Launcher.Go].
//
// The limit is read once per attempt, at the admission decision - later
// adjustments don't affect attempts already past that point. The in-flight
// count may transiently exceed the limit, between the (optimistic) increment
// and the admission decision.
//
// The admission slot is released when TryGo returns, NOT when the work item
// finishes. See the package documentation for the implications.
//
// A nil work results in a [MissingArgumentError], with nothing scheduled or
// counted. That is the only error returned by this method.
func (x *Launcher) TryGo(work func() error, handler func(error)) (admitted bool, _ error) {
	if work == nil {
		return false, &MissingArgumentError{Name: `work`}
	}

	count := x.inFlight.Add(1)
	defer x.inFlight.Add(-1)

	if admitHook != nil {
		admitHook(count)
	}

	if limit := x.limit.Load(); count > limit {
		x.logRejected(count, limit)
		return false, nil
	}

	go x.run(work, handler)
	return true, nil
}

// ConcurrencyLimit returns the current concurrency limit, for optional
// launches.
func (x *Launcher) ConcurrencyLimit() int {
	return int(x.limit.Load())
}

// SetConcurrencyLimit adjusts the concurrency limit, for optional launches.
// Values <= 0 cause every subsequent [Launcher.TryGo] to be rejected.
//
// In-flight attempts which already read the limit are unaffected.
func (x *Launcher) SetConcurrencyLimit(limit int) {
	x.limit.Store(int64(limit))
}

// SetLogger configures the logger receiving diagnostic events. A nil logger
// disables logging (the default).
func (x *Launcher) SetLogger(logger *logiface.Logger[logiface.Event]) {
	x.logger.Store(logger)
}

// run executes work on the calling (work) goroutine, routing any failure to
// handler, or discarding it. Failures must never escape this method.
func (x *Launcher) run(work func() error, handler func(error)) {
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = PanicError{Value: r}
		}
		if err == nil {
			return
		}
		if handler == nil {
			x.logDiscarded(err)
			return
		}
		defer x.recoverHandlerPanic()
		handler(err)
	}()
	err = work()
}

func (x *Launcher) recoverHandlerPanic() {
	if r := recover(); r != nil {
		x.logHandlerPanic(r)
	}
}

// Go schedules work on the process-wide default [Launcher], see
// [Launcher.Go].
func Go(work func() error, handler func(error)) error {
	return defaultLauncher.Go(work, handler)
}

// TryGo attempts to schedule work on the process-wide default [Launcher],
// subject to its concurrency limit, see [Launcher.TryGo].
func TryGo(work func() error, handler func(error)) (admitted bool, _ error) {
	return defaultLauncher.TryGo(work, handler)
}

// ConcurrencyLimit returns the concurrency limit of the process-wide default
// [Launcher].
func ConcurrencyLimit() int {
	return defaultLauncher.ConcurrencyLimit()
}

// SetConcurrencyLimit adjusts the concurrency limit of the process-wide
// default [Launcher], see [Launcher.SetConcurrencyLimit].
func SetConcurrencyLimit(limit int) {
	defaultLauncher.SetConcurrencyLimit(limit)
}

// SetLogger configures the logger of the process-wide default [Launcher],
// see [Launcher.SetLogger].
func SetLogger(logger *logiface.Logger[logiface.Event]) {
	defaultLauncher.SetLogger(logger)
}
