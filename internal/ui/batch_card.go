package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/amdl-client/internal/model"
	"github.com/ytget/amdl-client/internal/queue"
)

// BatchCard renders a task being downloaded: cover, progress and a track list
// that folds in place without rebuilding the card.
type BatchCard struct {
	widget.BaseWidget

	card     queue.ActiveCard
	onToggle func(id model.TaskID) bool

	titleLabel   *widget.Label
	artistLabel  *widget.Label
	codecLabel   *widget.Label
	statusLabel  *widget.Label
	counterLabel *widget.Label
	progressBar  *widget.ProgressBar
	toggleBtn    *widget.Button
	tracks       *fyne.Container
}

// NewBatchCard creates the card. onToggle flips the expand state of the task
// and returns the new state.
func NewBatchCard(card queue.ActiveCard, onToggle func(model.TaskID) bool) *BatchCard {
	bc := &BatchCard{card: card, onToggle: onToggle}
	bc.ExtendBaseWidget(bc)
	bc.createUI()
	return bc
}

func (bc *BatchCard) createUI() {
	c := bc.card

	bc.titleLabel = heading(c.Title)
	bc.titleLabel.Truncation = fyne.TextTruncateEllipsis
	bc.artistLabel = caption(c.Artist)
	bc.codecLabel = badge(c.Codec, fyne.TextStyle{Monospace: true})

	bc.statusLabel = widget.NewLabel(c.Progress.Label)
	bc.counterLabel = widget.NewLabel("Track " + c.Progress.Counter())
	bc.counterLabel.Alignment = fyne.TextAlignTrailing
	bc.counterLabel.TextStyle = fyne.TextStyle{Monospace: true}

	bc.progressBar = widget.NewProgressBar()
	bc.progressBar.SetValue(c.Progress.Fraction())

	bc.tracks = container.NewVBox(trackList(c.Tracks)...)
	bc.toggleBtn = widget.NewButton(c.ToggleText, bc.toggle)
	bc.toggleBtn.Importance = widget.LowImportance
	if !c.Expanded {
		bc.tracks.Hide()
	}
}

// trackList builds one row per track, or the loading line when the backend
// has not listed the tracks yet
func trackList(rows []queue.TrackRow) []fyne.CanvasObject {
	if len(rows) == 0 {
		return []fyne.CanvasObject{placeholder(queue.LoadingTracksText)}
	}
	objs := make([]fyne.CanvasObject, 0, len(rows))
	for _, r := range rows {
		num := widget.NewLabel(r.Number)
		num.TextStyle = fyne.TextStyle{Monospace: true}
		title := widget.NewLabel(r.Title)
		title.Truncation = fyne.TextTruncateEllipsis
		objs = append(objs, container.NewBorder(nil, nil, num, badge(r.Badge, SubTaskStyle(r.Status)), title))
	}
	return objs
}

// toggle shows or hides the track list
func (bc *BatchCard) toggle() {
	expanded := !bc.tracks.Visible()
	if bc.onToggle != nil {
		expanded = bc.onToggle(bc.card.ID)
	}
	if expanded {
		bc.toggleBtn.SetText(queue.HideTracksText)
		bc.tracks.Show()
	} else {
		bc.toggleBtn.SetText(queue.ViewTracksText)
		bc.tracks.Hide()
	}
}

// Expanded reports whether the track list is visible
func (bc *BatchCard) Expanded() bool {
	return bc.tracks.Visible()
}

// CreateRenderer implements fyne.Widget
func (bc *BatchCard) CreateRenderer() fyne.WidgetRenderer {
	info := container.NewVBox(
		container.NewBorder(nil, nil, nil, bc.codecLabel, bc.titleLabel),
		bc.artistLabel,
		container.NewBorder(nil, nil, nil, bc.counterLabel, bc.statusLabel),
		bc.progressBar,
	)
	head := container.NewBorder(nil, nil, newArtwork(bc.card.Artwork, HeroArtworkSize), nil, info)
	body := container.NewVBox(
		head,
		container.NewHBox(layout.NewSpacer(), bc.toggleBtn),
		bc.tracks,
	)
	return widget.NewSimpleRenderer(widget.NewCard("", "", body))
}

// HistoryCard renders a finished task. Album cards can list their tracks.
type HistoryCard struct {
	widget.BaseWidget

	card     queue.CompletedCard
	onToggle func(id model.TaskID) bool

	toggleBtn *widget.Button
	tracks    *fyne.Container
}

// NewHistoryCard creates the card
func NewHistoryCard(card queue.CompletedCard, onToggle func(model.TaskID) bool) *HistoryCard {
	hc := &HistoryCard{card: card, onToggle: onToggle}
	hc.ExtendBaseWidget(hc)
	hc.tracks = container.NewVBox()
	if card.Album {
		hc.tracks.Objects = trackList(card.Tracks)
		text := queue.ViewTracksText
		if card.Expanded {
			text = queue.HideTracksText
		}
		hc.toggleBtn = widget.NewButton(text, hc.toggle)
		hc.toggleBtn.Importance = widget.LowImportance
	}
	if !card.Expanded {
		hc.tracks.Hide()
	}
	return hc
}

func (hc *HistoryCard) toggle() {
	expanded := !hc.tracks.Visible()
	if hc.onToggle != nil {
		expanded = hc.onToggle(hc.card.ID)
	}
	if expanded {
		hc.toggleBtn.SetText(queue.HideTracksText)
		hc.tracks.Show()
	} else {
		hc.toggleBtn.SetText(queue.ViewTracksText)
		hc.tracks.Hide()
	}
}

// CreateRenderer implements fyne.Widget
func (hc *HistoryCard) CreateRenderer() fyne.WidgetRenderer {
	c := hc.card
	title := heading(c.Title)
	title.Truncation = fyne.TextTruncateEllipsis

	meta := c.Detail
	if c.Artist != "" {
		meta = c.Artist + MiddleDotSeparator + c.Detail
	}
	right := container.NewVBox(badge(IconCheck+" "+queue.CompletedBadgeText, fyne.TextStyle{Bold: true}), badge(c.Codec, fyne.TextStyle{Monospace: true}))
	info := container.NewVBox(title, caption(meta))
	if hc.toggleBtn != nil {
		info.Add(container.NewHBox(hc.toggleBtn))
	}
	head := container.NewBorder(nil, nil, newArtwork(c.Artwork, ArtworkSize), right, info)
	return widget.NewSimpleRenderer(container.NewVBox(head, hc.tracks, widget.NewSeparator()))
}
