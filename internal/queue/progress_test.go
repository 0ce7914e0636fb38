package queue

import (
	"testing"

	"github.com/ytget/amdl-client/internal/model"
)

func intPtr(n int) *int { return &n }

func TestParseProgress(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		task       model.Task
		current    int
		total      int
		totalKnown bool
		percent    int
		label      string
		skipping   bool
	}{
		{
			name:    "empty text",
			text:    "",
			current: 1, label: "Initializing...",
		},
		{
			name:    "slash counter",
			text:    "Track 3/10",
			current: 3, total: 10, totalKnown: true, label: "Initializing...",
		},
		{
			name:    "of counter with label",
			text:    "Track 3 of 10: Song Name",
			current: 3, total: 10, totalKnown: true, label: "Song Name",
		},
		{
			name:    "backend track format",
			text:    "Track 4/12 (45%): Get Lucky",
			current: 4, total: 12, totalKnown: true, percent: 45, label: "Get Lucky",
		},
		{
			name:    "decrypting with bracket counter",
			text:    "Decrypting 67% [2/9]",
			current: 2, total: 9, totalKnown: true, percent: 67, label: "Decrypting...",
		},
		{
			name:    "downloading",
			text:    "Downloading 5%",
			current: 1, percent: 5, label: "Downloading...",
		},
		{
			name:    "percent anywhere",
			text:    "something 45% done",
			current: 1, percent: 45, label: "Initializing...",
		},
		{
			name:    "skipped existing",
			text:    "Track 2/5 (40%): Intro Skipped (Exists)",
			current: 2, total: 5, totalKnown: true, percent: 40, label: "Intro (Skipping)", skipping: true,
		},
		{
			name:    "skipped without name",
			text:    "Track 2/5: Skipped (Exists)",
			current: 2, total: 5, totalKnown: true, label: "(Skipping)", skipping: true,
		},
		{
			name:    "empty after colon",
			text:    "Track 1/2:",
			current: 1, total: 2, totalKnown: true, label: "Initializing...",
		},
		{
			name: "total from task",
			text: "Preparing",
			task: model.Task{TotalTracks: intPtr(8)},
			current: 1, total: 8, totalKnown: true, label: "Initializing...",
		},
		{
			name: "current from pending sub tasks",
			text: "Preparing",
			task: model.Task{TotalTracks: intPtr(4), SubTasks: []model.SubTask{
				{Status: model.SubTaskCompleted},
				{Status: model.SubTaskDownloading},
				{Status: model.SubTaskPending},
				{Status: model.SubTaskPending},
			}},
			current: 2, total: 4, totalKnown: true, label: "Initializing...",
		},
		{
			name: "current floored at one",
			text: "",
			task: model.Task{TotalTracks: intPtr(2), SubTasks: []model.SubTask{
				{Status: model.SubTaskPending},
				{Status: model.SubTaskPending},
				{Status: model.SubTaskPending},
			}},
			current: 1, total: 2, totalKnown: true, label: "Initializing...",
		},
		{
			name:    "counter wins over sub tasks",
			text:    "Track 7/9",
			task:    model.Task{TotalTracks: intPtr(4), SubTasks: []model.SubTask{{Status: model.SubTaskPending}}},
			current: 7, total: 9, totalKnown: true, label: "Initializing...",
		},
		{
			name:    "percent clamped",
			text:    "Downloading 250%",
			current: 1, percent: 100, label: "Downloading...",
		},
		{
			name:    "huge counter falls back",
			text:    "Track 99999999999999999999/2",
			current: 1, label: "Initializing...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseProgress(tt.text, tt.task)
			if got.Current != tt.current {
				t.Errorf("Current = %d, expected %d", got.Current, tt.current)
			}
			if got.Total != tt.total || got.TotalKnown != tt.totalKnown {
				t.Errorf("Total = %d (known %v), expected %d (known %v)", got.Total, got.TotalKnown, tt.total, tt.totalKnown)
			}
			if got.Percent != tt.percent {
				t.Errorf("Percent = %d, expected %d", got.Percent, tt.percent)
			}
			if got.Label != tt.label {
				t.Errorf("Label = %q, expected %q", got.Label, tt.label)
			}
			if got.Skipping != tt.skipping {
				t.Errorf("Skipping = %v, expected %v", got.Skipping, tt.skipping)
			}
		})
	}
}
