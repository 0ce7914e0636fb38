package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/amdl-client/internal/logs"
)

// LogConsole shows the backend log stream. It follows the tail unless the
// user turned that off.
type LogConsole struct {
	buffer *logs.Buffer
	lines  []string

	list    *widget.List
	follow  *widget.Check
	state   *widget.Label
	content fyne.CanvasObject
}

// Stream states shown above the console
const (
	StreamConnecting = "Connecting..."
	StreamConnected  = "Connected"
	StreamClosed     = "Disconnected"
)

// NewLogConsole creates the console tab and subscribes it to buffer
func NewLogConsole(buffer *logs.Buffer) *LogConsole {
	c := &LogConsole{buffer: buffer}

	c.list = widget.NewList(
		func() int { return len(c.lines) },
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.TextStyle = fyne.TextStyle{Monospace: true}
			l.Truncation = fyne.TextTruncateEllipsis
			return l
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(c.lines) {
				obj.(*widget.Label).SetText(c.lines[id])
			}
		},
	)
	c.follow = widget.NewCheck("Follow", nil)
	c.follow.SetChecked(true)
	c.state = caption(StreamConnecting)

	c.content = container.NewBorder(
		container.NewHBox(c.state, layout.NewSpacer(), c.follow),
		nil, nil, nil,
		c.list,
	)

	buffer.SetChangeCallback(func(lines []string) {
		fyne.Do(func() { c.SetLines(lines) })
	})
	return c
}

// Content returns the tab content
func (c *LogConsole) Content() fyne.CanvasObject {
	return c.content
}

// SetLines replaces the shown lines. Must run on the UI goroutine.
func (c *LogConsole) SetLines(lines []string) {
	c.lines = lines
	c.list.Refresh()
	if c.follow.Checked && len(lines) > 0 {
		c.list.ScrollToBottom()
	}
}

// SetState shows the connection state. Must run on the UI goroutine.
func (c *LogConsole) SetState(text string) {
	c.state.SetText(text)
}

// Len returns the number of shown lines
func (c *LogConsole) Len() int {
	return len(c.lines)
}
