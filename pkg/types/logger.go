/*
Copyright © 2022 - 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package types

import (
	"bytes"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Logger is the logging surface used across the decoder and the CLI. It is
// satisfied by *logrus.Logger.
type Logger interface {
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Error(...interface{})
	Trace(...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Errorf(string, ...interface{})
	Tracef(string, ...interface{})
	SetLevel(level log.Level)
	GetLevel() log.Level
	SetOutput(writer io.Writer)
	SetFormatter(formatter log.Formatter)
}

// LoggerOption tunes a logger on creation
type LoggerOption func(l *log.Logger)

// WithLogOutput sends log entries to w
func WithLogOutput(w io.Writer) LoggerOption {
	return func(l *log.Logger) {
		l.SetOutput(w)
	}
}

// WithLogLevel sets the lowest level that gets logged
func WithLogLevel(level log.Level) LoggerOption {
	return func(l *log.Logger) {
		l.SetLevel(level)
	}
}

// NewLogger returns a logrus logger writing to stderr at info level, so
// reports printed on stdout are never mixed with log lines.
func NewLogger(opts ...LoggerOption) Logger {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	for _, o := range opts {
		o(logger)
	}
	return logger
}

// NewNullLogger will return a logger that discards all logs, used mainly for testing
func NewNullLogger() Logger {
	return NewLogger(WithLogOutput(io.Discard))
}

// NewBufferLogger will return a logger that stores all logs in a buffer, used mainly for testing
func NewBufferLogger(b *bytes.Buffer) Logger {
	return NewLogger(WithLogOutput(b))
}

func DebugLevel() log.Level {
	return log.DebugLevel
}

// IsDebugLevel is true when debug entries get through, trace level included
func IsDebugLevel(l Logger) bool {
	return l.GetLevel() >= DebugLevel()
}
