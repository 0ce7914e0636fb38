package auth

// Package auth drives the account login flow: it maps the backend login status
// to what the login dialog shows, polls the status until the login succeeds, and
// validates credential and second-factor submissions.
