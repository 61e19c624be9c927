package run

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about file edits
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎨 FileEditType represents the outcome of editing one file
type FileEditType int

const (
	FileEdited FileEditType = iota
	FileError
)

// 🖼️ FileEdit represents the result of one file job
type FileEdit struct {
	Type         FileEditType
	Path         string
	Replacements int
	Err          error
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogFileEdit logs a file edit with appropriate prefix and formatting
func (u *UserLogger) LogFileEdit(edit FileEdit) {
	var action string
	var printer *pterm.PrefixPrinter
	switch edit.Type {
	case FileEdited:
		action = "Edited"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "✏️"})
	case FileError:
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"})
	}

	msg := fmt.Sprintf("%s %s", action, edit.Path)
	if edit.Type == FileEdited && edit.Replacements > 0 {
		msg += fmt.Sprintf(" (%d replacements)", edit.Replacements)
	}

	if edit.Err != nil {
		printer.Println(msg)
		pterm.Error.Println(edit.Err)
		u.log.Error().Err(edit.Err).Str("file", edit.Path).Msg(msg)
	} else {
		printer.Println(msg)
		u.log.Info().
			Str("file", edit.Path).
			Int("replacements", edit.Replacements).
			Msg(msg)
	}
}

// 📊 LogRunMessage logs a run-level status message
func (u *UserLogger) LogRunMessage(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"})
	printer.Println(description)
	u.log.Info().Msg(description)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
		pterm.Error.Println(err)
		u.log.Error().Err(err).Msg(description)
	} else {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
		u.log.Warn().Msg(description)
	}
}

// 📈 LogSummary logs the end-of-run summary
func (u *UserLogger) LogSummary(s Summary) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📊"}).
		Printf("Successfully processed: %d files\n", s.Succeeded)
	if s.Failed > 0 {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).
			Printf("Errors encountered: %d files\n", s.Failed)
		if s.LogPath != "" {
			pterm.Warning.Printf("See %s for details\n", s.LogPath)
		}
	}
	u.log.Info().
		Int("processed", s.Processed).
		Int("succeeded", s.Succeeded).
		Int("failed", s.Failed).
		Msg("run complete")
}
