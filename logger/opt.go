package logger

import "log"

// A LoggerOptFn is a functional option configuring a WanderLogger when constructing a new one.
type LoggerOptFn func(*WanderLogger)

// WithEnv sets the environment WanderLogger is operating in.
func WithEnv(env string) LoggerOptFn {
	return func(l *WanderLogger) {
		l.env = env
	}
}

// WithLevel sets the log level WanderLogger uses.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(l *WanderLogger) {
		if level == LogLevelUnk {
			return
		}
		l.ll = level
	}
}

// WithLogger sets the log.Logger WanderLogger uses.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *WanderLogger) {
		l.l = log
	}
}

// WithSentryDSN configures forwarding warnings and errors to Sentry.
func WithSentryDSN(dsn string) LoggerOptFn {
	return func(l *WanderLogger) {
		l.sentryDSN = dsn
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(l *WanderLogger) {
		l.skip = skip
	}
}
