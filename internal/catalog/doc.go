package catalog

// Package catalog holds the search and artist discography logic behind the
// search tab: deciding between a direct download and a search, grouping results
// into sections, mapping a click to an action, and the multi-select session of
// the artist dialog with its bulk download operations.
