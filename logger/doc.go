/*
Package logger provides logging functionality to a wanderlust app by defining the required behavior in [Logger]
and providing an implementation of it with [WanderLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
[WanderLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*WanderLogger.Warn], [*WanderLogger.Error], and [*WanderLogger.Fatal] produce messages.

Log messages emitted by [WanderLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2022/04/28 15:55:21 [INFO] web/auth.go:43 'logged in' log_context: {"user":{"id":1,"username":"alice"}}

# SentryLogger

When configured with a DSN, [NewLogger] wraps the WanderLogger in a [SentryLogger],
which also captures any [LogContext.Error] logged at WARN or above.
*/
package logger
