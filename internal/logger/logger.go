// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

// Package logger provides a leveled console logger for the host adapter and CLI.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level is a log verbosity level.
type Level int

// Log levels, lowest is most verbose.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

var levelColors = map[Level]*color.Color{
	LevelTrace: color.New(color.FgHiBlack),
	LevelDebug: color.New(color.FgCyan),
	LevelInfo:  color.New(color.FgBlue),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed),
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}

	return "INFO"
}

// ParseLevel converts a level name to Level.
// Empty or unknown names fall back to LevelInfo and ok=false.
func ParseLevel(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return LevelTrace, true
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

// Logger is the logging surface used across the module.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines to a writer.
// It is safe for concurrent use.
type ConsoleLogger struct {
	writer io.Writer
	now    func() time.Time
	mu     sync.Mutex
	level  Level
	color  bool
}

// New creates a ConsoleLogger. A nil writer discards everything.
// Colors are enabled only for os.Stdout/os.Stderr when fatih/color allows it.
func New(w io.Writer, level string) *ConsoleLogger {
	lvl, _ := ParseLevel(level)

	return &ConsoleLogger{
		writer: w,
		level:  lvl,
		color:  isTerminal(w),
		now:    time.Now,
	}
}

// Discard returns a logger that drops all messages.
func Discard() *ConsoleLogger {
	return New(nil, "error")
}

// isTerminal reports whether w is a standard stream that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}

	if w == os.Stdout || w == os.Stderr {
		// NO_COLOR and non-TTY are already folded into color.NoColor.
		return !color.NoColor
	}

	return false
}

// Enabled reports whether messages at level are written.
func (l *ConsoleLogger) Enabled(level Level) bool {
	return l != nil && l.writer != nil && level >= l.level
}

// Tracef logs at trace level.
func (l *ConsoleLogger) Tracef(format string, args ...any) {
	l.logf(LevelTrace, format, args...)
}

// Debugf logs at debug level.
func (l *ConsoleLogger) Debugf(format string, args ...any) {
	l.logf(LevelDebug, format, args...)
}

// Infof logs at info level.
func (l *ConsoleLogger) Infof(format string, args ...any) {
	l.logf(LevelInfo, format, args...)
}

// Warnf logs at warn level.
func (l *ConsoleLogger) Warnf(format string, args ...any) {
	l.logf(LevelWarn, format, args...)
}

// Errorf logs at error level.
func (l *ConsoleLogger) Errorf(format string, args ...any) {
	l.logf(LevelError, format, args...)
}

func (l *ConsoleLogger) logf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	msg := fmt.Sprintf(format, args...)
	ts := l.now().Format("15:04:05")

	name := level.String()
	if l.color {
		name = levelColors[level].Sprint(name)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = fmt.Fprintf(l.writer, "[%s] [%s] %s\n", ts, name, msg)
}
