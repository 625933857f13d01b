// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const logFilePermissions = 0o666

// setupAudit points the global logger at the configured outputs.
func (cfg *ServerConfig) setupAudit() {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Development.InDevelopment {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)

	outputs := cfg.Log.Outputs
	if len(outputs) == 0 {
		outputs = []string{"/dev/stderr"}
	}

	writers := make([]io.Writer, 0, len(outputs))

	for _, output := range outputs {
		w, err := cfg.logWriter(output)
		if err != nil {
			// The logger is being replaced, so report on stderr directly.
			fmt.Fprintf(os.Stderr, "Failed to open log output %s: %v\n", output, err)

			continue
		}

		writers = append(writers, w)
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(writers...))
}

// logWriter opens a single log output in the configured format.
func (cfg *ServerConfig) logWriter(output string) (io.Writer, error) {
	var file *os.File

	switch output {
	case "/dev/stdout":
		file = os.Stdout
	case "/dev/stderr":
		file = os.Stderr
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions) // #nosec:G302,G304
		if err != nil {
			return nil, err
		}

		file = f
	}

	if cfg.Log.Format == "json" {
		return file, nil
	}

	return ConsoleWriter(file), nil
}

// ConsoleWriter returns a writer for zerolog that only colours output for terminals.
func ConsoleWriter(f *os.File) io.Writer {
	noColor := !isatty.IsTerminal(f.Fd())

	w := zerolog.ConsoleWriter{Out: f, NoColor: noColor, TimeFormat: time.DateTime}

	if !noColor {
		w.FormatPrepare = func(m map[string]any) error {
			// pretty print request logs
			if sys, ok := m["sys"]; ok && sys == "http" {
				m["message"] = fmt.Sprintf("%v %-5v %v", m["status_code"], m["method"], m["url"])
				delete(m, "sys")
				delete(m, "method")
				delete(m, "status_code")
				delete(m, "url")
			}

			return nil
		}
	}

	return w
}
