// Package logs keeps the lines of the backend log console. Progress updates
// replace the previous progress line instead of piling up.
package logs

import (
	"context"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
)

// Prefix is prepended to every console line
const Prefix = "> "

// Defaults of a console buffer
const (
	DefaultMaxLines = 1000
	DefaultMaxWidth = 400
)

// IsProgress reports whether a line is a frequent progress update
func IsProgress(line string) bool {
	return strings.Contains(line, "Downloading") || strings.Contains(line, "Decrypting")
}

// Buffer is a bounded list of console lines
type Buffer struct {
	mu       sync.Mutex
	lines    []string
	maxLines int
	maxWidth int
	onChange func(lines []string)
}

// NewBuffer creates a buffer keeping at most maxLines lines; values <= 0 use the default
func NewBuffer(maxLines int) *Buffer {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	return &Buffer{maxLines: maxLines, maxWidth: DefaultMaxWidth}
}

// SetChangeCallback sets the function receiving a snapshot after each change
func (b *Buffer) SetChangeCallback(callback func(lines []string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onChange = callback
}

// Append adds a raw line. A progress line overwrites the last line when that
// one is a progress line too.
func (b *Buffer) Append(raw string) {
	line := Prefix + runewidth.Truncate(strings.TrimRight(raw, "\r\n"), b.maxWidth, "…")

	b.mu.Lock()
	n := len(b.lines)
	if IsProgress(raw) && n > 0 && IsProgress(b.lines[n-1]) {
		b.lines[n-1] = line
	} else {
		b.lines = append(b.lines, line)
		if len(b.lines) > b.maxLines {
			b.lines = append(b.lines[:0:0], b.lines[len(b.lines)-b.maxLines:]...)
		}
	}
	snapshot := append([]string(nil), b.lines...)
	callback := b.onChange
	b.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

// Lines returns a copy of the buffered lines
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.lines...)
}

// Text returns the lines joined for display
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// Len returns the number of lines
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// Consume appends lines from ch until it closes or ctx is done
func (b *Buffer) Consume(ctx context.Context, ch <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-ch:
			if !ok {
				return
			}
			b.Append(line)
		}
	}
}
