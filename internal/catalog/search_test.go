package catalog

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ytget/amdl-client/internal/model"
)

func intPtr(n int) *int { return &n }

func TestIsDirectLink(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"https://music.apple.com/us/album/discovery/697194953", true},
		{"music.apple.com/us/song/1", true},
		{"daft punk", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsDirectLink(tt.input); got != tt.expected {
			t.Errorf("IsDirectLink(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestSections(t *testing.T) {
	res := model.SearchResults{
		Top:         []model.SearchItem{{Name: "t"}},
		Albums:      []model.SearchItem{{Name: "a"}},
		MusicVideos: []model.SearchItem{{Name: "v"}},
	}

	var titles []string
	for _, s := range Sections(res) {
		titles = append(titles, s.Title)
	}
	if diff := cmp.Diff([]string{"Top Results", "Albums", "Music Videos"}, titles); diff != "" {
		t.Errorf("Section titles mismatch (-want +got):\n%s", diff)
	}
	if !HasResults(res) {
		t.Error("Expected results")
	}
	if HasResults(model.SearchResults{}) {
		t.Error("Empty results should report no results")
	}
}

func TestClickAction(t *testing.T) {
	tests := []struct {
		itemType string
		expected Action
	}{
		{model.ItemArtists, ActionOpenArtist},
		{model.ItemAlbums, ActionEnqueueAlbum},
		{model.ItemSongs, ActionEnqueue},
		{model.ItemPlaylists, ActionEnqueue},
		{model.ItemMusicVideos, ActionEnqueue},
	}

	for _, tt := range tests {
		if got := ClickAction(model.SearchItem{Type: tt.itemType}); got != tt.expected {
			t.Errorf("ClickAction(%s) = %v, expected %v", tt.itemType, got, tt.expected)
		}
	}
}

func TestRequestFor(t *testing.T) {
	album := model.SearchItem{Type: model.ItemAlbums, Name: "Discovery", Artist: "Daft Punk", URL: "u", Image: "i", TrackNumber: intPtr(1), TrackCount: intPtr(14)}
	got := RequestFor(album)
	want := model.DownloadRequest{URL: "u", Title: "Discovery", Artist: "Daft Punk", Image: "i", TrackNumber: intPtr(1), TotalTracks: intPtr(14)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Album request mismatch (-want +got):\n%s", diff)
	}

	song := model.SearchItem{Type: model.ItemSongs, Name: "One More Time", Album: "Discovery", URL: "s", TrackNumber: intPtr(1), TrackCount: intPtr(14)}
	got = RequestFor(song)
	if got.TrackNumber != nil || got.TotalTracks != nil || got.Album != "Discovery" {
		t.Errorf("Song request should carry no track metadata, got %+v", got)
	}
}

func TestReleaseLabels(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	item := model.SearchItem{ReleaseDate: "2021-03-12", TrackCount: intPtr(1200)}

	if ReleaseYear(item) != "2021" {
		t.Errorf("Expected 2021, got %s", ReleaseYear(item))
	}
	if got := ReleaseAge(item, now); got != "3 years ago" {
		t.Errorf("Expected '3 years ago', got %q", got)
	}
	if got := ReleaseAge(model.SearchItem{ReleaseDate: "1999"}, now); got != "1999" {
		t.Errorf("Expected year fallback for partial date, got %q", got)
	}
	if got := ReleaseAge(model.SearchItem{}, now); got != "" {
		t.Errorf("Expected empty age without date, got %q", got)
	}
	if got := TrackCountLabel(item); got != "1,200 Tracks" {
		t.Errorf("Expected '1,200 Tracks', got %q", got)
	}
	if got := TrackCountLabel(model.SearchItem{}); got != "" {
		t.Errorf("Expected no label, got %q", got)
	}
}
