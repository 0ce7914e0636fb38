package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// afterFunc is time.After, replaced in tests to skip waiting
var afterFunc = time.After

// TappableCard is a rounded panel that reacts to a tap or click anywhere on it
type TappableCard struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	OnTapped func()
}

// NewTappableCard wraps content
func NewTappableCard(content fyne.CanvasObject, onTapped func()) *TappableCard {
	c := &TappableCard{content: content, OnTapped: onTapped}
	c.ExtendBaseWidget(c)
	return c
}

// Tapped implements fyne.Tappable
func (c *TappableCard) Tapped(*fyne.PointEvent) {
	if c.OnTapped != nil {
		c.OnTapped()
	}
}

// Cursor shows a pointer on desktop
func (c *TappableCard) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer implements fyne.Widget
func (c *TappableCard) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	bg.CornerRadius = theme.Size(theme.SizeNameInputRadius)
	return widget.NewSimpleRenderer(container.NewStack(bg, container.NewPadded(c.content)))
}

// heading is a bold section title
func heading(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.TextStyle = fyne.TextStyle{Bold: true}
	return l
}

// caption is a small secondary line that truncates instead of wrapping
func caption(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Truncation = fyne.TextTruncateEllipsis
	l.Importance = widget.LowImportance
	return l
}

// badge is a short status marker
func badge(text string, style fyne.TextStyle) *widget.Label {
	l := widget.NewLabel(text)
	l.TextStyle = style
	l.Alignment = fyne.TextAlignTrailing
	return l
}

// placeholder is the centered text of an empty section
func placeholder(text string) fyne.CanvasObject {
	l := widget.NewLabel(text)
	l.Alignment = fyne.TextAlignCenter
	l.Importance = widget.LowImportance
	return l
}
