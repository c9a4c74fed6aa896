package thrower

// Logging is deliberately opt-in: the default behavior of the discard path
// is fully silent, matching a nil handler's contract. All log methods
// tolerate a nil logger.

func (x *Launcher) logDiscarded(err error) {
	if logger := x.logger.Load(); logger != nil {
		logger.Err().
			Err(err).
			Str(`op`, `go`).
			Log(`work item failed without a handler`)
	}
}

func (x *Launcher) logRejected(count, limit int64) {
	if logger := x.logger.Load(); logger != nil {
		logger.Debug().
			Int64(`count`, count).
			Int64(`limit`, limit).
			Str(`op`, `trygo`).
			Log(`optional launch rejected`)
	}
}

func (x *Launcher) logHandlerPanic(value any) {
	if logger := x.logger.Load(); logger != nil {
		logger.Err().
			Err(PanicError{Value: value}).
			Str(`op`, `go`).
			Log(`handler panicked`)
	}
}
