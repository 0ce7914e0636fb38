package api

// Package api is the HTTP and WebSocket client of the download manager backend.
// Each backend endpoint has one typed method; transport failures, non-2xx
// responses and undecodable bodies are returned as errors for the caller to
// surface. The log stream is a single WebSocket whose text frames are forwarded
// on a channel.
