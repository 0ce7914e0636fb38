package model

// Package model defines the wire and domain structures shared across the client:
// queue tasks and their track sub-tasks, catalog items returned by search and
// artist lookups, login status and download requests. Structures decode directly
// from the backend JSON and carry small display helpers used by the UI.
