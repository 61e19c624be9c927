package text

import (
	"context"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// EditOp describes the transformations applied to a single file's content.
// The zero value is a no-op edit.
type EditOp struct {
	Prepend string // text added verbatim at the start of the content
	Target  string // literal string to search for (empty disables replacement)
	Swap    string // replacement string
	Append  string // text added verbatim at the end of the content
}

// EditResult holds the outcome of applying an EditOp to some content
type EditResult struct {
	OriginalContent  []byte
	ModifiedContent  []byte
	ReplacementCount int
	WasModified      bool
}

// Editor applies EditOps using basic string operations
type Editor struct{}

// NewEditor creates a new Editor
func NewEditor() *Editor {
	return &Editor{}
}

// Edit applies op to content in a fixed order: prepend, then replace, then
// append. The replacement is a literal, case-sensitive, leftmost-first
// non-overlapping substring scan. An empty Target makes the replacement step a
// no-op regardless of Swap. Note that prepended text takes part in the
// replacement step while appended text does not.
func (e *Editor) Edit(ctx context.Context, content io.Reader, op EditOp) (*EditResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &EditResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	currentContent := string(originalContent)

	if op.Prepend != "" {
		currentContent = op.Prepend + currentContent
		result.WasModified = true
	}

	if op.Target != "" {
		newContent := strings.ReplaceAll(currentContent, op.Target, op.Swap)
		if newContent != currentContent {
			result.WasModified = true
			result.ReplacementCount = strings.Count(currentContent, op.Target)
		}
		currentContent = newContent
	}

	if op.Append != "" {
		currentContent = currentContent + op.Append
		result.WasModified = true
	}

	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// TODO(dr.methodical): 🧪 Add benchmarks for large content
