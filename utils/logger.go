/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05.000"

var (
	loggerRegistryMu sync.RWMutex
	loggerRegistry   = map[string]*logrus.Logger{}
	defaultLevel     = ParseLogLevel(EnvDefaultString("LOG_LEVEL", "info"))
	consoleLogFormat = EnvDefaultString("CONSOLE_LOG_FORMAT", "text")
)

var logOutput io.Writer = os.Stderr

// NewLogger returns a named logger. Loggers are registered by name so that
// level, format and output changes reach every one of them.
func NewLogger(name string) *logrus.Logger {
	loggerRegistryMu.Lock()
	defer loggerRegistryMu.Unlock()
	if l, ok := loggerRegistry[name]; ok {
		return l
	}
	l := logrus.New()
	l.SetOutput(logOutput)
	l.SetLevel(defaultLevel)
	l.SetReportCaller(true)
	l.SetFormatter(newFormatter(name, consoleLogFormat))
	loggerRegistry[name] = l
	return l
}

func ParseLogLevel(s string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info", "":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}

// ConfigureLogLevel sets the level of every registered and future logger.
func ConfigureLogLevel(levelStr string) {
	lvl := ParseLogLevel(levelStr)
	loggerRegistryMu.Lock()
	defer loggerRegistryMu.Unlock()
	defaultLevel = lvl
	for _, lg := range loggerRegistry {
		lg.SetLevel(lvl)
	}
}

// ConfigureConsoleLogFormat switches between the "text" and "json" formats.
func ConfigureConsoleLogFormat(format string) {
	s := strings.ToLower(strings.TrimSpace(format))
	if s != "json" {
		s = "text"
	}
	loggerRegistryMu.Lock()
	defer loggerRegistryMu.Unlock()
	consoleLogFormat = s
	for name, lg := range loggerRegistry {
		lg.SetFormatter(newFormatter(name, s))
	}
}

// ConfigureLogOutput redirects every logger, e.g. to io.Discard in tests.
func ConfigureLogOutput(w io.Writer) {
	loggerRegistryMu.Lock()
	defer loggerRegistryMu.Unlock()
	logOutput = w
	for _, lg := range loggerRegistry {
		lg.SetOutput(w)
	}
}

func newFormatter(name, format string) logrus.Formatter {
	if format == "json" {
		return &logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg: "message",
			},
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
			},
		}
	}
	return &Log4jColorFormatter{LoggerName: name, NameWidth: 10}
}

// Log4jColorFormatter renders
// "time LEVEL pid - [main] name file:line : message k=v".
type Log4jColorFormatter struct {
	LoggerName      string
	TimestampFormat string
	NameWidth       int
}

func (f *Log4jColorFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	tsFmt := f.TimestampFormat
	if tsFmt == "" {
		tsFmt = timestampFormat
	}
	var b strings.Builder
	b.WriteString(entry.Time.Format(tsFmt))
	b.WriteByte(' ')
	b.WriteString(levelColor(entry.Level).Sprintf("%7s", strings.ToUpper(entry.Level.String())))
	b.WriteByte(' ')
	b.WriteString(pidColor.Sprintf("%-6d", os.Getpid()))
	b.WriteString(" - ")
	b.WriteString(pidColor.Sprint("[main]"))
	b.WriteByte(' ')
	b.WriteString(nameColor.Sprintf("%*s", f.NameWidth, limitRunes(f.LoggerName, f.NameWidth)))
	if entry.Caller != nil {
		b.WriteString(callerColor.Sprintf(" %s:%d", filepath.Base(entry.Caller.File), entry.Caller.Line))
	}
	b.WriteString(callerColor.Sprint(" :"))
	b.WriteByte(' ')
	b.WriteString(entry.Message)
	for _, k := range sortedKeys(entry.Data) {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

var (
	pidColor    = color.New(color.FgMagenta)
	nameColor   = color.New(color.FgCyan)
	callerColor = color.New(color.Faint)
)

// levelColor picks the level highlight. fatih/color drops the escapes when
// the output is not a terminal or NO_COLOR is set.
func levelColor(level logrus.Level) *color.Color {
	switch level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return color.New(color.FgRed)
	case logrus.WarnLevel:
		return color.New(color.FgYellow)
	case logrus.InfoLevel:
		return color.New(color.FgGreen)
	case logrus.DebugLevel:
		return color.New(color.FgBlue)
	default:
		return color.New(color.FgMagenta)
	}
}

func limitRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func EnvDefaultString(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, _ := strconv.ParseBool(v)
		return b
	}
	return def
}
