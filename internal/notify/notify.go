// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notify delivers user-facing status messages. Every export failure
// ends up here as a notification rather than a fatal error.
package notify

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Notifier displays fire-and-forget status messages to the user.
type Notifier interface {
	// Notify shows an informational message.
	Notify(msg string)

	// Notifyf shows a formatted informational message.
	Notifyf(format string, args ...any)

	// Error shows an error message.
	Error(msg string)

	// Errorf shows a formatted error message.
	Errorf(format string, args ...any)

	// Debugf logs a low-level detail line, visible only in verbose mode.
	Debugf(format string, args ...any)
}

// Console is a Notifier backed by charm/log, writing styled lines to a
// terminal.
type Console struct {
	logger *log.Logger
}

// NewConsole creates a console notifier writing to w.
func NewConsole(w io.Writer) *Console {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Console{logger: l}
}

// NewVerboseConsole creates a console notifier that also emits debug lines.
func NewVerboseConsole(w io.Writer) *Console {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           log.DebugLevel,
	})
	return &Console{logger: l}
}

func (c *Console) Notify(msg string) { c.logger.Info(msg) }

func (c *Console) Notifyf(format string, args ...any) { c.logger.Info(fmt.Sprintf(format, args...)) }

func (c *Console) Error(msg string) { c.logger.Error(msg) }

func (c *Console) Errorf(format string, args ...any) { c.logger.Error(fmt.Sprintf(format, args...)) }

func (c *Console) Debugf(format string, args ...any) {
	c.logger.Debug(fmt.Sprintf(format, args...))
}

// Discard returns a notifier that drops all messages. Used in tests.
func Discard() *Console {
	return NewConsole(io.Discard)
}
