// SPDX-License-Identifier: EPL-2.0

package sound

// Logger is the logging surface used by Sound. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
