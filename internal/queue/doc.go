package queue

// Package queue turns backend queue snapshots into render-ready sections.
// It parses the free-text progress of active tasks, partitions tasks by status,
// keeps the per-session expand state of cards, and runs the polling loop that
// feeds the queue and history views.
