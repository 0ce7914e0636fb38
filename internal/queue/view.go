package queue

import (
	"log"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/ytget/amdl-client/internal/model"
)

// Texts shown by the queue and history sections
const (
	EmptyActiveText    = "No active downloads"
	EmptyNextUpText    = "Queue is empty"
	EmptyHistoryText   = "No history"
	LoadingTracksText  = "Loading tracks..."
	ViewTracksText     = "VIEW TRACKS"
	HideTracksText     = "HIDE TRACKS"
	PendingBadgeText   = "PENDING"
	CompletedBadgeText = "COMPLETED"
	FailedStatusText   = "Download Failed"
	UnknownErrorText   = "Unknown Error"
	UnknownArtistText  = "Unknown Artist"
	SingleText         = "Single"
	DoneText           = "Done"
	BatchText          = "BATCH"
)

// MaxTitleWidth bounds titles in terminal cells before they are elided
const MaxTitleWidth = 64

// Sections is a snapshot split by status, keeping snapshot order
type Sections struct {
	Active    []model.Task
	NextUp    []model.Task
	Completed []model.Task
	Failed    []model.Task
	Unknown   []model.Task
}

// Partition assigns every task to the section of its status
func Partition(snapshot []model.Task) Sections {
	var s Sections
	for _, t := range snapshot {
		switch t.Status {
		case model.TaskStatusDownloading:
			s.Active = append(s.Active, t)
		case model.TaskStatusPending:
			s.NextUp = append(s.NextUp, t)
		case model.TaskStatusCompleted:
			s.Completed = append(s.Completed, t)
		case model.TaskStatusFailed:
			s.Failed = append(s.Failed, t)
		default:
			s.Unknown = append(s.Unknown, t)
		}
	}
	return s
}

// TrackRow is one sub-task line of a batch card
type TrackRow struct {
	Number string
	Title  string
	Status model.SubTaskStatus
	Badge  string
}

// ActiveCard is the hero card of a task being downloaded
type ActiveCard struct {
	ID         model.TaskID
	Title      string
	Artist     string
	Codec      string
	Artwork    string
	Progress   model.ProgressInfo
	Tracks     []TrackRow
	Expanded   bool
	ToggleText string
}

// NextUpRow is one pending task
type NextUpRow struct {
	ID       model.TaskID
	Position int
	Title    string
	Artist   string
	Badge    string
}

// FailedCard is a task that can be retried
type FailedCard struct {
	ID      model.TaskID
	Title   string
	Status  string
	Reason  string
	Artwork string
	Task    model.Task
}

// CompletedCard is a finished task, either an album with its tracks or a single
type CompletedCard struct {
	ID       model.TaskID
	Title    string
	Artist   string
	Codec    string
	Artwork  string
	Album    bool
	Detail   string // "12 Tracks" or "Single"
	Tracks   []TrackRow
	Expanded bool
}

// View is everything the queue and history tabs render for one snapshot
type View struct {
	Active       []ActiveCard
	NextUp       []NextUpRow
	Failed       []FailedCard
	Completed    []CompletedCard
	PendingCount int
}

// BuildView projects a snapshot into cards. It is a pure function of the
// snapshot and the expand state: building twice gives the same result.
func BuildView(snapshot []model.Task, state *ViewState) View {
	if state == nil {
		state = NewViewState()
	}
	sections := Partition(snapshot)
	for _, t := range sections.Unknown {
		log.Printf("queue: task %s has unknown status %q, not shown", t.ID, t.Status)
	}

	v := View{PendingCount: len(sections.NextUp)}
	for _, t := range sections.Active {
		v.Active = append(v.Active, activeCard(t, state))
	}
	for i, t := range sections.NextUp {
		v.NextUp = append(v.NextUp, nextUpRow(t, i+1))
	}
	for _, t := range sections.Failed {
		v.Failed = append(v.Failed, failedCard(t))
	}
	for _, t := range sections.Completed {
		v.Completed = append(v.Completed, completedCard(t, state))
	}
	return v
}

func activeCard(t model.Task, state *ViewState) (card ActiveCard) {
	card = ActiveCard{
		ID:         t.ID,
		Title:      elide(t.DisplayTitle()),
		Artist:     t.Artist,
		Codec:      t.CodecLabel(),
		Artwork:    t.ArtworkURL(),
		Progress:   model.ProgressInfo{Current: 1, Label: labelInitializing},
		Expanded:   state.ActiveExpanded(t.ID),
		ToggleText: ViewTracksText,
	}
	if card.Expanded {
		card.ToggleText = HideTracksText
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("queue: failed to format progress of task %s: %v", t.ID, r)
			card.Progress = model.ProgressInfo{Current: 1, Label: labelInitializing}
		}
	}()

	card.Progress = parseProgress(t.Progress, t)
	card.Tracks = trackRows(t.SubTasks, false)
	return card
}

func nextUpRow(t model.Task, position int) (row NextUpRow) {
	row = NextUpRow{ID: t.ID, Position: position, Title: t.URL, Badge: PendingBadgeText}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("queue: failed to format pending task %s: %v", t.ID, r)
		}
	}()

	row.Title = elide(firstNonEmpty(t.Title, t.URL))
	row.Artist = firstNonEmpty(t.Artist, UnknownArtistText)
	return row
}

func failedCard(t model.Task) (card FailedCard) {
	card = FailedCard{ID: t.ID, Title: t.URL, Status: FailedStatusText, Reason: UnknownErrorText, Task: t}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("queue: failed to format failed task %s: %v", t.ID, r)
		}
	}()

	card.Title = elide(firstNonEmpty(t.Title, t.URL))
	card.Reason = firstNonEmpty(t.Progress, UnknownErrorText)
	card.Artwork = t.ArtworkURL()
	return card
}

func completedCard(t model.Task, state *ViewState) (card CompletedCard) {
	card = CompletedCard{ID: t.ID, Title: t.URL, Artist: t.Artist}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("queue: failed to format finished task %s: %v", t.ID, r)
			card = CompletedCard{ID: t.ID, Title: firstNonEmpty(t.Title, t.URL), Artist: t.Artist, Detail: SingleText}
		}
	}()

	card.Codec = t.CodecLabel()
	card.Artwork = t.ArtworkURL()
	card.Album = t.IsAlbum()
	if card.Album {
		card.Title = elide(t.DisplayTitle())
		card.Detail = trackCountText(t.TrackCount())
		card.Tracks = trackRows(t.SubTasks, true)
		card.Expanded = state.FinishedExpanded(t.ID)
		return card
	}
	card.Title = elide(firstNonEmpty(t.Title, t.DisplayTitle()))
	card.Detail = SingleText
	return card
}

// Formatters; tests swap them to exercise the fallback cards.
var (
	parseProgress  = ParseProgress
	trackCountText = func(n int) string { return humanize.Comma(int64(n)) + " Tracks" }
)

// trackRows renders sub-tasks; finished lists always read "Done"
func trackRows(subs []model.SubTask, finished bool) []TrackRow {
	if len(subs) == 0 {
		return nil
	}
	rows := make([]TrackRow, 0, len(subs))
	for _, st := range subs {
		row := TrackRow{
			Number: st.NumberLabel(),
			Title:  elide(st.Title),
			Status: st.Status,
			Badge:  st.Status.Badge(),
		}
		if finished {
			row.Badge = DoneText
		}
		rows = append(rows, row)
	}
	return rows
}

func elide(s string) string {
	return runewidth.Truncate(s, MaxTitleWidth, "…")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
