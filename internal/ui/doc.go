package ui

// Package ui contains the Fyne desktop front-end of the download manager. It
// renders the backend's queue, search results, artist discographies, settings
// and login state, and forwards user actions to the API client. Widgets are
// only touched on the UI goroutine; pollers hand their results over with fyne.Do.
