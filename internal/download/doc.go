package download

// Package download submits download requests to the backend queue. It fills in
// the preferred codec, paces bulk submissions, re-submits failed tasks and tells
// the UI when something was added so the queue can refresh.
