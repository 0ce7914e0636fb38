package model

import (
	"encoding/json"
	"testing"
)

func intPtr(n int) *int { return &n }

func TestTaskIDUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TaskID
		wantErr  bool
	}{
		{"number", `{"id": 7}`, "7", false},
		{"string", `{"id": "abc-1"}`, "abc-1", false},
		{"null", `{"id": null}`, "", false},
		{"object", `{"id": {}}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var task Task
			err := json.Unmarshal([]byte(tt.input), &task)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && task.ID != tt.expected {
				t.Errorf("Expected id %q, got %q", tt.expected, task.ID)
			}
		})
	}
}

func TestTaskIDMarshal(t *testing.T) {
	b, _ := json.Marshal(TaskID("12"))
	if string(b) != "12" {
		t.Errorf("Expected numeric id, got %s", b)
	}
	b, _ = json.Marshal(TaskID("x1"))
	if string(b) != `"x1"` {
		t.Errorf("Expected quoted id, got %s", b)
	}
}

func TestTaskDecodeSubTasks(t *testing.T) {
	raw := `{"id":1,"url":"u","status":"downloading","total_tracks":12,
		"sub_tasks":[{"title":"One","track_number":1,"status":"completed"},{"title":"Two","status":"pending"}]}`
	var task Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if task.Status != TaskStatusDownloading {
		t.Errorf("Expected downloading, got %s", task.Status)
	}
	if !task.HasTotalTracks() || *task.TotalTracks != 12 {
		t.Errorf("Expected 12 total tracks, got %v", task.TotalTracks)
	}
	if len(task.SubTasks) != 2 {
		t.Fatalf("Expected 2 sub tasks, got %d", len(task.SubTasks))
	}
	if task.SubTasks[1].NumberLabel() != "-" {
		t.Errorf("Expected '-' for missing track number, got %s", task.SubTasks[1].NumberLabel())
	}
	if task.PendingSubTasks() != 1 {
		t.Errorf("Expected 1 pending sub task, got %d", task.PendingSubTasks())
	}

	var bare Task
	_ = json.Unmarshal([]byte(`{"id":2,"url":"u","status":"pending"}`), &bare)
	if bare.SubTasks != nil {
		t.Error("Absent sub_tasks should decode as nil")
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected string
	}{
		{"album wins", Task{Album: "A", Title: "T", URL: "U"}, "A"},
		{"title", Task{Title: "T", URL: "U"}, "T"},
		{"url", Task{URL: "U"}, "U"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.DisplayTitle(); got != tt.expected {
				t.Errorf("DisplayTitle() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestTaskDefaults(t *testing.T) {
	task := Task{}
	if task.ArtworkURL() != DefaultArtworkURL {
		t.Errorf("Expected default artwork, got %s", task.ArtworkURL())
	}
	if task.CodecLabel() != "ALAC" {
		t.Errorf("Expected ALAC, got %s", task.CodecLabel())
	}
	task.Codec = "aac"
	if task.CodecLabel() != "AAC" {
		t.Errorf("Expected AAC, got %s", task.CodecLabel())
	}
}

func TestTrackCount(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected int
		album    bool
	}{
		{"total tracks", Task{TotalTracks: intPtr(9), SubTasks: make([]SubTask, 3)}, 9, true},
		{"sub tasks", Task{SubTasks: make([]SubTask, 3)}, 3, true},
		{"zero total falls back", Task{TotalTracks: intPtr(0), SubTasks: make([]SubTask, 2)}, 2, true},
		{"single", Task{SubTasks: make([]SubTask, 1)}, 1, false},
		{"nothing", Task{}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.TrackCount(); got != tt.expected {
				t.Errorf("TrackCount() = %d, expected %d", got, tt.expected)
			}
			if got := tt.task.IsAlbum(); got != tt.album {
				t.Errorf("IsAlbum() = %v, expected %v", got, tt.album)
			}
		})
	}
}

func TestProgressInfoLabels(t *testing.T) {
	p := ProgressInfo{Current: 3, Percent: 45}
	if p.Counter() != "3/?" {
		t.Errorf("Expected 3/?, got %s", p.Counter())
	}
	p.Total, p.TotalKnown = 10, true
	if p.Counter() != "3/10" {
		t.Errorf("Expected 3/10, got %s", p.Counter())
	}
	if p.Fraction() != 0.45 {
		t.Errorf("Expected 0.45, got %v", p.Fraction())
	}
}

func TestDownloadRequestOmitsEmpty(t *testing.T) {
	b, err := json.Marshal(DownloadRequest{URL: "u", Codec: "alac"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(b) != `{"url":"u","codec":"alac"}` {
		t.Errorf("Unexpected body %s", b)
	}
}
