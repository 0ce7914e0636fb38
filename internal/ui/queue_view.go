package ui

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/amdl-client/internal/config"
	"github.com/ytget/amdl-client/internal/download"
	"github.com/ytget/amdl-client/internal/queue"
)

// ParallelSetter changes how many tasks the backend downloads at once
type ParallelSetter interface {
	SetParallelLimit(ctx context.Context, limit int) error
}

// QueueView shows the task being downloaded and the pending tasks. Both
// sections are rebuilt from scratch on every poll.
type QueueView struct {
	ctx          context.Context
	localization *Localization
	poller       *queue.Poller
	settings     *config.Settings
	backend      ParallelSetter

	activeBox      *fyne.Container
	nextUpBox      *fyne.Container
	pendingBadge   *widget.Label
	parallelSelect *widget.Select
	content        fyne.CanvasObject
}

// NewQueueView creates the queue tab
func NewQueueView(ctx context.Context, localization *Localization, poller *queue.Poller, settings *config.Settings, backend ParallelSetter) *QueueView {
	v := &QueueView{
		ctx:          ctx,
		localization: localization,
		poller:       poller,
		settings:     settings,
		backend:      backend,
	}
	v.createUI()
	return v
}

func (v *QueueView) createUI() {
	v.activeBox = container.NewVBox(placeholder(queue.EmptyActiveText))
	v.nextUpBox = container.NewVBox(placeholder(queue.EmptyNextUpText))
	v.pendingBadge = badge("0", fyne.TextStyle{Bold: true})

	options := make([]string, 0, config.MaxParallel)
	for i := config.MinParallel; i <= config.MaxParallel; i++ {
		options = append(options, strconv.Itoa(i))
	}
	v.parallelSelect = widget.NewSelect(options, nil)
	v.parallelSelect.SetSelected(strconv.Itoa(v.settings.GetMaxParallelDownloads()))
	v.parallelSelect.OnChanged = v.onParallelChanged

	nextUpHeader := container.NewHBox(
		heading(v.localization.GetText(KeyNextUp)),
		v.pendingBadge,
		layout.NewSpacer(),
		widget.NewLabel(v.localization.GetText(KeyParallel)),
		v.parallelSelect,
	)

	v.content = container.NewVScroll(container.NewVBox(
		heading(v.localization.GetText(KeyNowDownloading)),
		v.activeBox,
		widget.NewSeparator(),
		nextUpHeader,
		v.nextUpBox,
	))
}

// Content returns the tab content
func (v *QueueView) Content() fyne.CanvasObject {
	return v.content
}

// Apply renders a queue view. Must run on the UI goroutine.
func (v *QueueView) Apply(view queue.View) {
	v.pendingBadge.SetText(strconv.Itoa(view.PendingCount))

	active := make([]fyne.CanvasObject, 0, len(view.Active))
	for _, card := range view.Active {
		active = append(active, NewBatchCard(card, v.poller.State().ToggleActive))
	}
	if len(active) == 0 {
		active = append(active, placeholder(queue.EmptyActiveText))
	}
	v.activeBox.Objects = active
	v.activeBox.Refresh()

	next := make([]fyne.CanvasObject, 0, len(view.NextUp))
	for _, row := range view.NextUp {
		pos := widget.NewLabel(fmt.Sprintf("%d.", row.Position))
		pos.TextStyle = fyne.TextStyle{Monospace: true}
		title := widget.NewLabel(row.Title)
		title.Truncation = fyne.TextTruncateEllipsis
		info := container.NewVBox(title, caption(row.Artist))
		next = append(next, container.NewBorder(nil, nil, pos, badge(row.Badge, fyne.TextStyle{Italic: true}), info))
	}
	if len(next) == 0 {
		next = append(next, placeholder(queue.EmptyNextUpText))
	}
	v.nextUpBox.Objects = next
	v.nextUpBox.Refresh()
}

func (v *QueueView) onParallelChanged(value string) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return
	}
	n = config.ClampParallel(n)
	v.settings.SetMaxParallelDownloads(n)
	go func() {
		if err := v.backend.SetParallelLimit(v.ctx, n); err != nil {
			log.Printf("Failed to set parallel limit to %d: %v", n, err)
		}
	}()
}

// HistoryView shows failed tasks with a retry action and completed tasks
type HistoryView struct {
	ctx          context.Context
	localization *Localization
	poller       *queue.Poller
	downloader   download.Downloader
	modals       *Modals

	failedBox    *fyne.Container
	completedBox *fyne.Container
	clearBtn     *widget.Button
	content      fyne.CanvasObject
}

// NewHistoryView creates the history tab
func NewHistoryView(ctx context.Context, localization *Localization, poller *queue.Poller, downloader download.Downloader, modals *Modals) *HistoryView {
	v := &HistoryView{
		ctx:          ctx,
		localization: localization,
		poller:       poller,
		downloader:   downloader,
		modals:       modals,
	}
	v.failedBox = container.NewVBox()
	v.completedBox = container.NewVBox(placeholder(queue.EmptyHistoryText))
	v.clearBtn = widget.NewButton(localization.GetText(KeyClearHistory), v.onClear)
	v.clearBtn.Importance = widget.DangerImportance

	v.content = container.NewBorder(
		container.NewHBox(heading(localization.GetText(KeyTabHistory)), layout.NewSpacer(), v.clearBtn),
		nil, nil, nil,
		container.NewVScroll(container.NewVBox(v.failedBox, v.completedBox)),
	)
	return v
}

// Content returns the tab content
func (v *HistoryView) Content() fyne.CanvasObject {
	return v.content
}

// Apply renders the failed and completed sections. Must run on the UI goroutine.
func (v *HistoryView) Apply(view queue.View) {
	failed := make([]fyne.CanvasObject, 0, len(view.Failed)+1)
	if len(view.Failed) > 0 {
		failed = append(failed, heading(v.localization.GetText(KeyFailed)))
	}
	for _, card := range view.Failed {
		failed = append(failed, v.failedRow(card))
	}
	v.failedBox.Objects = failed
	v.failedBox.Refresh()

	completed := make([]fyne.CanvasObject, 0, len(view.Completed)+1)
	if len(view.Completed) > 0 {
		completed = append(completed, heading(v.localization.GetText(KeyCompleted)))
	}
	for _, card := range view.Completed {
		completed = append(completed, NewHistoryCard(card, v.poller.State().ToggleFinished))
	}
	if len(view.Completed) == 0 && len(view.Failed) == 0 {
		completed = append(completed, placeholder(queue.EmptyHistoryText))
	}
	v.completedBox.Objects = completed
	v.completedBox.Refresh()
}

func (v *HistoryView) failedRow(card queue.FailedCard) fyne.CanvasObject {
	title := heading(card.Title)
	title.Truncation = fyne.TextTruncateEllipsis
	status := widget.NewLabel(card.Status)
	status.Importance = widget.DangerImportance
	reason := caption(card.Reason)

	var retryBtn *widget.Button
	retryBtn = widget.NewButton(IconRetry+" "+v.localization.GetText(KeyRetry), func() {
		retryBtn.Disable()
		go v.retry(card, retryBtn)
	})
	info := container.NewVBox(title, status, reason)
	return container.NewBorder(nil, nil, newArtwork(card.Artwork, ArtworkSize), container.NewCenter(retryBtn), info)
}

// retry enqueues the failed task again; the queue refresh follows from the
// downloader's update callback
func (v *HistoryView) retry(card queue.FailedCard, btn *widget.Button) {
	err := v.downloader.Retry(v.ctx, card.Task)
	fyne.Do(func() {
		if err != nil {
			log.Printf("Retry of task %s failed: %v", card.ID, err)
			v.modals.ShowError(err)
			btn.Enable()
			return
		}
		flashButton(btn)
	})
}

func (v *HistoryView) onClear() {
	answer := v.modals.Confirm(v.localization.GetText(KeyClearHistory), v.localization.GetText(KeyClearConfirm))
	go func() {
		if ok := <-answer; !ok {
			return
		}
		v.clearHistory()
	}()
}

// clearHistory calls the backend. On failure the error is shown and the
// current history stays on screen until the next successful poll.
func (v *HistoryView) clearHistory() error {
	err := v.poller.ClearHistory(v.ctx)
	if err != nil {
		fyne.Do(func() { v.modals.ShowError(err) })
	}
	return err
}
