package queue

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ytget/amdl-client/internal/model"
)

const (
	labelInitializing = "Initializing..."
	labelDecrypting   = "Decrypting..."
	labelDownloading  = "Downloading..."
	skippedPhrase     = "Skipped (Exists)"
	skippingMarker    = "(Skipping)"
)

var (
	trackCounterRe = regexp.MustCompile(`Track (\d+)\s*(?:/|\||of)\s*(\d+)`)
	bareCounterRe  = regexp.MustCompile(`(\d+)/(\d+)`)
	percentRe      = regexp.MustCompile(`(\d+)%`)
)

// ParseProgress reads counters, percent and a label out of a task's progress
// text. The backend format is free text, so anything that does not match falls
// back to defaults instead of failing.
func ParseProgress(text string, task model.Task) model.ProgressInfo {
	info := model.ProgressInfo{
		Current: 1,
		Label:   labelInitializing,
	}
	if task.HasTotalTracks() {
		info.Total = *task.TotalTracks
		info.TotalKnown = true
	}

	if cur, total, ok := matchCounter(text); ok {
		info.Current = cur
		info.Total = total
		info.TotalKnown = true
	} else if task.HasTotalTracks() && task.SubTasks != nil {
		info.Current = *task.TotalTracks - task.PendingSubTasks()
		if info.Current < 1 {
			info.Current = 1
		}
	}

	if m := percentRe.FindStringSubmatch(text); m != nil {
		if p, err := strconv.Atoi(m[1]); err == nil {
			info.Percent = clampPercent(p)
		}
	}

	info.Label, info.Skipping = progressLabel(text)
	return info
}

func matchCounter(text string) (int, int, bool) {
	m := trackCounterRe.FindStringSubmatch(text)
	if m == nil {
		m = bareCounterRe.FindStringSubmatch(text)
	}
	if m == nil {
		return 0, 0, false
	}
	cur, err1 := strconv.Atoi(m[1])
	total, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return cur, total, true
}

func progressLabel(text string) (string, bool) {
	if idx := strings.Index(text, ":"); idx > -1 {
		label := strings.TrimSpace(text[idx+1:])
		if strings.Contains(label, skippedPhrase) {
			label = strings.TrimSpace(strings.ReplaceAll(label, skippedPhrase, ""))
			return strings.TrimSpace(label + " " + skippingMarker), true
		}
		if label == "" {
			return labelInitializing, false
		}
		return label, false
	}
	switch {
	case strings.Contains(text, "Decrypting"):
		return labelDecrypting, false
	case strings.Contains(text, "Downloading"):
		return labelDownloading, false
	}
	return labelInitializing, false
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
