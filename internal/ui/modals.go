package ui

import (
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Dialog names used with Modals.Open
const (
	ModalConfirm = "confirm"
	ModalMessage = "message"
	ModalArtist  = "artist"
	ModalLogin   = "login"
	ModalScript  = "script"
)

// Modals keeps track of the named dialogs shown over the main window. Opening
// a name that is already open replaces the old dialog.
type Modals struct {
	window fyne.Window

	mu   sync.Mutex
	open map[string]dialog.Dialog
}

// NewModals creates a modal controller for window
func NewModals(window fyne.Window) *Modals {
	return &Modals{
		window: window,
		open:   make(map[string]dialog.Dialog),
	}
}

// Window returns the parent window of the dialogs
func (m *Modals) Window() fyne.Window {
	return m.window
}

// Open shows d under name
func (m *Modals) Open(name string, d dialog.Dialog) {
	m.mu.Lock()
	prev := m.open[name]
	m.open[name] = d
	m.mu.Unlock()

	if prev != nil && prev != d {
		prev.Hide()
	}
	d.SetOnClosed(func() {
		m.mu.Lock()
		if m.open[name] == d {
			delete(m.open, name)
		}
		m.mu.Unlock()
	})
	d.Show()
}

// Close hides the dialog open under name, if any
func (m *Modals) Close(name string) {
	m.mu.Lock()
	d := m.open[name]
	delete(m.open, name)
	m.mu.Unlock()
	if d != nil {
		d.Hide()
	}
}

// IsOpen reports whether a dialog is shown under name
func (m *Modals) IsOpen(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.open[name]
	return ok
}

// Confirm asks a yes/no question. The channel receives exactly one answer;
// dismissing the dialog counts as no.
func (m *Modals) Confirm(title, message string) <-chan bool {
	answer := make(chan bool, 1)
	var once sync.Once
	d := dialog.NewConfirm(title, message, func(ok bool) {
		once.Do(func() {
			answer <- ok
			close(answer)
		})
	}, m.window)
	m.Open(ModalConfirm, d)
	return answer
}

// ShowMessage shows an informational dialog
func (m *Modals) ShowMessage(title, body string) {
	m.Open(ModalMessage, dialog.NewInformation(title, body, m.window))
}

// ShowError shows err in an error dialog
func (m *Modals) ShowError(err error) {
	if err == nil {
		return
	}
	m.Open(ModalMessage, dialog.NewError(err, m.window))
}

// Shake wobbles obj horizontally and puts it back where it was
func Shake(obj fyne.CanvasObject) *fyne.Animation {
	origin := obj.Position()
	anim := fyne.NewAnimation(ShakeDuration, func(f float32) {
		if f >= 1 {
			obj.Move(origin)
			return
		}
		dx := float32(math.Sin(float64(f)*math.Pi*6)) * ShakeDistance * (1 - f)
		obj.Move(fyne.NewPos(origin.X+dx, origin.Y))
	})
	anim.Curve = fyne.AnimationLinear
	anim.Start()
	return anim
}

// flashButton swaps the label of btn for AddedText and restores it later
func flashButton(btn *widget.Button) {
	if btn == nil {
		return
	}
	original := btn.Text
	btn.SetText(AddedText)
	btn.Disable()
	go func() {
		<-afterFunc(FlashDuration)
		fyne.Do(func() {
			btn.SetText(original)
			btn.Enable()
		})
	}()
}
