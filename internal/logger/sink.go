package logger

// Sink is a minimal logging interface that components accept at
// construction. It keeps the tokenizer, loader and serializer free of
// package-level state and independently testable.
type Sink interface {
	// Debug logs a message at debug level.
	Debug(format string, args ...any)

	// Info logs a message at info level.
	Info(format string, args ...any)

	// Warn logs a message at warn level.
	Warn(format string, args ...any)
}

// Default returns a Sink backed by this package's verbose logger.
func Default() Sink {
	return defaultSink{}
}

// Nop returns a Sink that discards everything. Useful in tests.
func Nop() Sink {
	return nopSink{}
}

type defaultSink struct{}

func (defaultSink) Debug(format string, args ...any) { Debug(format, args...) }
func (defaultSink) Info(format string, args ...any)  { Info(format, args...) }
func (defaultSink) Warn(format string, args ...any)  { Warn(format, args...) }

type nopSink struct{}

func (nopSink) Debug(string, ...any) {}
func (nopSink) Info(string, ...any)  {}
func (nopSink) Warn(string, ...any)  {}
