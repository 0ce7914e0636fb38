package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DefaultArtworkURL is shown when a task carries no image
const DefaultArtworkURL = "https://music.apple.com/assets/default/album-cover.png"

// DefaultCodec is the codec label shown when a task does not name one
const DefaultCodec = "ALAC"

// TaskID identifies a queue task. The backend sends integers, but string ids are
// accepted too so the client does not depend on the server's numbering.
type TaskID string

// UnmarshalJSON accepts both JSON numbers and strings
func (id *TaskID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("task id: %w", err)
		}
		*id = TaskID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("task id: %w", err)
	}
	*id = TaskID(n.String())
	return nil
}

// MarshalJSON writes numeric ids back as numbers
func (id TaskID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Task is one entry of the backend download queue
type Task struct {
	ID          TaskID     `json:"id"`
	URL         string     `json:"url"`
	Status      TaskStatus `json:"status"`
	Title       string     `json:"title,omitempty"`
	Artist      string     `json:"artist,omitempty"`
	Album       string     `json:"album,omitempty"`
	Image       string     `json:"image,omitempty"`
	Codec       string     `json:"codec,omitempty"`
	Progress    string     `json:"progress,omitempty"` // free-form progress text
	TrackNumber *int       `json:"track_number,omitempty"`
	TotalTracks *int       `json:"total_tracks,omitempty"`
	SubTasks    []SubTask  `json:"sub_tasks,omitempty"` // nil when the backend sent none
}

// SubTask is one track inside a batch task
type SubTask struct {
	Title       string        `json:"title"`
	TrackNumber *int          `json:"track_number,omitempty"`
	Status      SubTaskStatus `json:"status"`
}

// NumberLabel returns the track number or "-" when it is unknown
func (st SubTask) NumberLabel() string {
	if st.TrackNumber == nil {
		return "-"
	}
	return strconv.Itoa(*st.TrackNumber)
}

// DisplayTitle returns album, title, or URL in order of preference
func (t *Task) DisplayTitle() string {
	if t.Album != "" {
		return t.Album
	}
	if t.Title != "" {
		return t.Title
	}
	return t.URL
}

// ArtworkURL returns the task image or the default cover
func (t *Task) ArtworkURL() string {
	if strings.TrimSpace(t.Image) == "" {
		return DefaultArtworkURL
	}
	return t.Image
}

// CodecLabel returns the upper-cased codec or the default one
func (t *Task) CodecLabel() string {
	if t.Codec == "" {
		return DefaultCodec
	}
	return strings.ToUpper(t.Codec)
}

// HasTotalTracks reports whether the backend sent a usable track total
func (t *Task) HasTotalTracks() bool {
	return t.TotalTracks != nil && *t.TotalTracks > 0
}

// TrackCount returns total_tracks, then the number of sub-tasks, then 1
func (t *Task) TrackCount() int {
	if t.HasTotalTracks() {
		return *t.TotalTracks
	}
	if len(t.SubTasks) > 0 {
		return len(t.SubTasks)
	}
	return 1
}

// IsAlbum reports whether a finished task is rendered as an album card
func (t *Task) IsAlbum() bool {
	return len(t.SubTasks) > 1
}

// PendingSubTasks counts the tracks still waiting to be processed
func (t *Task) PendingSubTasks() int {
	count := 0
	for _, st := range t.SubTasks {
		if st.Status == SubTaskPending {
			count++
		}
	}
	return count
}

// ProgressInfo is the structured reading of a task's progress text
type ProgressInfo struct {
	Current    int
	Total      int
	TotalKnown bool // false renders the total as "?"
	Percent    int  // 0 to 100
	Label      string
	Skipping   bool
}

// TotalLabel returns the total track count or "?" when unknown
func (p ProgressInfo) TotalLabel() string {
	if !p.TotalKnown {
		return "?"
	}
	return strconv.Itoa(p.Total)
}

// Counter returns the "current/total" marker shown on active cards
func (p ProgressInfo) Counter() string {
	return fmt.Sprintf("%d/%s", p.Current, p.TotalLabel())
}

// Fraction returns the progress as 0.0 to 1.0 for progress bars
func (p ProgressInfo) Fraction() float64 {
	return float64(p.Percent) / 100
}

// DownloadRequest is the body of an enqueue call
type DownloadRequest struct {
	URL         string `json:"url"`
	Codec       string `json:"codec"`
	Title       string `json:"title,omitempty"`
	Artist      string `json:"artist,omitempty"`
	Album       string `json:"album,omitempty"`
	Image       string `json:"image,omitempty"`
	TrackNumber *int   `json:"track_number,omitempty"`
	TotalTracks *int   `json:"total_tracks,omitempty"`
}
