package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

func init() {
	logLevel := slog.LevelInfo
	if logLevelStr := os.Getenv("LOG_LEVEL"); logLevelStr != "" {
		if err := logLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
			panic(fmt.Sprintf("invalid log level: %s", logLevelStr))
		}
	}

	if logLevel == slog.LevelDebug {
		slog.SetDefault(newDebugLogger(os.Stdout, modulePrefix()))
		slog.Info("debug logging enabled")
		return
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

// newDebugLogger writes colourised lines with source paths relative to the module
func newDebugLogger(w io.Writer, prefix string) *slog.Logger {
	replacer := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.SourceKey {
			if source, ok := a.Value.Any().(*slog.Source); ok {
				source.File = trimSourcePath(source.File, prefix)
			}
		}
		if err, ok := a.Value.Any().(error); ok {
			aErr := tint.Err(err)
			aErr.Key = a.Key
			return aErr
		}
		return a
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:       slog.LevelDebug,
		TimeFormat:  time.TimeOnly,
		ReplaceAttr: replacer,
		AddSource:   true,
	}))
}

// modulePrefix is "/<last module path element>/", e.g. "/bedaie-web/"
func modulePrefix() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Path == "" {
		if wd, err := os.Getwd(); err == nil {
			return "/" + filepath.Base(wd) + "/"
		}
		return "/bedaie-web/"
	}
	return "/" + filepath.Base(info.Main.Path) + "/"
}

func trimSourcePath(filePath, prefix string) string {
	if _, after, found := strings.Cut(filePath, prefix); found {
		return after
	}
	if idx := strings.LastIndex(filePath, "/src/"); idx != -1 {
		return filePath[idx+len("/src/"):]
	}
	return filePath
}
