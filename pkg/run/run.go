// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package run orchestrates one edit run: collect files, confirm with the
// user, process each file, report.
package run

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/capedit/pkg/config"
	"github.com/walteh/capedit/pkg/scan"
	"github.com/walteh/capedit/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidUTF8 marks files whose bytes are not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// confirmSample is how many files the confirmation prompt lists in full.
const confirmSample = 10

// Options configures a Runner.
type Options struct {
	Config      *config.Config
	Editor      *text.Editor
	Console     *UserLogger
	Prompt      io.Reader // confirmation input, defaults to os.Stdin
	Out         io.Writer // confirmation output, defaults to os.Stdout
	AutoConfirm bool      // skip the confirmation prompt
	LogDir      string    // where the error log is written, defaults to "."
}

// Runner drives a single run. Runs are strictly sequential and single-pass:
// collect, confirm, process every job once, report. Failed jobs are never
// retried within a run.
type Runner struct {
	config      *config.Config
	editor      *text.Editor
	console     *UserLogger
	prompt      io.Reader
	out         io.Writer
	autoConfirm bool
	logDir      string
}

// Summary is the end-of-run accounting.
type Summary struct {
	Processed int
	Succeeded int
	Failed    int
	Cancelled bool
	LogPath   string // error log path, set only when failures occurred
}

// NewRunner creates a new Runner
func NewRunner(opts Options) *Runner {
	r := &Runner{
		config:      opts.Config,
		editor:      opts.Editor,
		console:     opts.Console,
		prompt:      opts.Prompt,
		out:         opts.Out,
		autoConfirm: opts.AutoConfirm,
		logDir:      opts.LogDir,
	}
	if r.editor == nil {
		r.editor = text.NewEditor()
	}
	if r.prompt == nil {
		r.prompt = os.Stdin
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	if r.logDir == "" {
		r.logDir = "."
	}
	return r
}

// Run executes the full run. Per-file failures are collected, not fatal; a
// declined confirmation is a normal early return with Cancelled set, not an
// error.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	logger := zerolog.Ctx(ctx)

	// Collect
	files, err := scan.Scan(r.config.Root, r.config.Recursive)
	if err != nil {
		return nil, errors.Errorf("scanning %s: %w", r.config.Root, err)
	}
	if len(files) == 0 {
		msg := fmt.Sprintf("No %s files found in %s", scan.Ext, r.config.Root)
		if r.config.Recursive {
			msg += " and its subdirectories"
		}
		r.console.LogRunMessage(msg)
		return &Summary{}, nil
	}
	logger.Debug().Int("files", len(files)).Msg("collected files")

	jobs := ResolveJobs(r.config.Root, r.config.Output, files)

	// Confirm
	ok, err := r.confirm(jobs)
	if err != nil {
		return nil, errors.Errorf("reading confirmation: %w", err)
	}
	if !ok {
		r.console.LogRunMessage("Operation cancelled by user.")
		return &Summary{Cancelled: true}, nil
	}

	// Process
	op := text.EditOp{
		Prepend: r.config.Prepend,
		Target:  r.config.Target,
		Swap:    r.config.Swap,
		Append:  r.config.Append,
	}
	summary := &Summary{}
	var records []ErrorRecord
	for _, job := range jobs {
		summary.Processed++
		count, err := r.processJob(ctx, job, op)
		if err != nil {
			summary.Failed++
			records = append(records, ErrorRecord{
				Path:    job.Source,
				Message: err.Error(),
				Time:    time.Now(),
			})
			r.console.LogFileEdit(FileEdit{Type: FileError, Path: job.Source, Err: err})
			continue
		}
		summary.Succeeded++
		r.console.LogFileEdit(FileEdit{Type: FileEdited, Path: job.Source, Replacements: count})
	}

	// Report
	if len(records) > 0 {
		logPath, err := WriteErrorLog(r.logDir, records)
		if err != nil {
			return summary, errors.Errorf("flushing error log: %w", err)
		}
		summary.LogPath = logPath
	}
	r.console.LogSummary(*summary)

	return summary, nil
}

// confirm shows the collected file list and asks for a y/n answer. It
// re-prompts until it gets one; EOF counts as a decline.
func (r *Runner) confirm(jobs []FileJob) (bool, error) {
	if r.autoConfirm {
		return true, nil
	}

	fmt.Fprintf(r.out, "\nFound %d %s files to process:\n", len(jobs), scan.Ext)
	for i, job := range jobs {
		if i == confirmSample {
			fmt.Fprintf(r.out, "  ... and %d more files\n", len(jobs)-confirmSample)
			break
		}
		fmt.Fprintf(r.out, "  - %s\n", color.CyanString(job.Source))
	}

	scanner := bufio.NewScanner(r.prompt)
	for {
		fmt.Fprint(r.out, "\nProceed with editing these files? (y/n): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, err
			}
			return false, nil
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(r.out, "Please answer with 'y' or 'n'")
	}
}

// processJob reads, transforms and writes one file. Returns the replacement
// count on success.
func (r *Runner) processJob(ctx context.Context, job FileJob, op text.EditOp) (int, error) {
	data, err := os.ReadFile(job.Source)
	if err != nil {
		return 0, errors.Errorf("reading file: %w", err)
	}
	if !utf8.Valid(data) {
		return 0, errors.Errorf("decoding file: %w", ErrInvalidUTF8)
	}

	result, err := r.editor.Edit(ctx, bytes.NewReader(data), op)
	if err != nil {
		return 0, errors.Errorf("editing content: %w", err)
	}

	if job.Dest != job.Source {
		if err := os.MkdirAll(filepath.Dir(job.Dest), 0o755); err != nil {
			return 0, errors.Errorf("creating destination directory: %w", err)
		}
	}
	if err := os.WriteFile(job.Dest, result.ModifiedContent, 0o644); err != nil {
		return 0, errors.Errorf("writing file: %w", err)
	}

	return result.ReplacementCount, nil
}
