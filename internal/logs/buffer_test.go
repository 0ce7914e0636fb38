package logs

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAppendOverwritesProgress(t *testing.T) {
	b := NewBuffer(0)
	for _, line := range []string{
		"Added to queue: u",
		"Decrypting 10% [1/3]",
		"Decrypting 20% [1/3]",
		"Downloading 5% [2/3]",
		"Track finished",
		"Downloading 50% [3/3]",
	} {
		b.Append(line)
	}

	want := []string{
		"> Added to queue: u",
		"> Downloading 5% [2/3]",
		"> Track finished",
		"> Downloading 50% [3/3]",
	}
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendBounded(t *testing.T) {
	b := NewBuffer(3)
	for _, line := range []string{"a", "b", "c", "d", "e"} {
		b.Append(line)
	}
	if diff := cmp.Diff([]string{"> c", "> d", "> e"}, b.Lines()); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendTruncatesLongLines(t *testing.T) {
	b := NewBuffer(0)
	b.Append(strings.Repeat("y", DefaultMaxWidth*2))
	if got := len([]rune(b.Lines()[0])); got > DefaultMaxWidth+len(Prefix) {
		t.Errorf("Expected truncated line, got %d runes", got)
	}
}

func TestChangeCallback(t *testing.T) {
	b := NewBuffer(0)
	var last []string
	calls := 0
	b.SetChangeCallback(func(lines []string) {
		calls++
		last = lines
	})
	b.Append("one")
	b.Append("two\n")
	if calls != 2 || b.Text() != "> one\n> two" || len(last) != 2 {
		t.Errorf("Unexpected callback state calls=%d text=%q", calls, b.Text())
	}
}

func TestConsume(t *testing.T) {
	b := NewBuffer(0)
	ch := make(chan string, 3)
	ch <- "x"
	ch <- "Decrypting 1%"
	ch <- "Decrypting 2%"
	close(ch)

	b.Consume(context.Background(), ch)
	if b.Len() != 2 {
		t.Errorf("Expected 2 lines, got %d", b.Len())
	}
}
