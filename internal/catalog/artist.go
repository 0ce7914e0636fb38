package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/ytget/amdl-client/internal/download"
	"github.com/ytget/amdl-client/internal/model"
)

// SortByReleaseDate orders items newest first by comparing release date strings.
// Items without a date sort last. Equal dates keep their order.
func SortByReleaseDate(items []model.SearchItem) []model.SearchItem {
	sorted := append([]model.SearchItem(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReleaseDate > sorted[j].ReleaseDate
	})
	return sorted
}

// DiscographySections returns the non-empty release groups, each sorted by date
func DiscographySections(d model.Discography) []Section {
	return nonEmpty([]Section{
		{"Albums", SortByReleaseDate(d.Albums)},
		{"EPs", SortByReleaseDate(d.EPs)},
		{"Singles", SortByReleaseDate(d.Singles)},
		{"Compilations", SortByReleaseDate(d.Compilations)},
		{"Music Videos", SortByReleaseDate(d.MusicVideos)},
	})
}

// InferAlbum returns the album name to submit for a discography item: releases
// are their own album, anything else names the album it belongs to.
func InferAlbum(item model.SearchItem) string {
	switch item.Type {
	case model.ItemAlbums, model.ItemEPs, model.ItemSingles:
		return item.Name
	}
	return item.Album
}

// DiscographyRequest builds the enqueue request of a discography item
func DiscographyRequest(item model.SearchItem) model.DownloadRequest {
	return model.DownloadRequest{
		URL:         item.URL,
		Title:       item.Name,
		Artist:      item.Artist,
		Album:       InferAlbum(item),
		Image:       item.Image,
		TrackNumber: item.TrackNumber,
		TotalTracks: item.TrackCount,
	}
}

// Session is the state of one open artist dialog: the resolved discography and
// the items the user selected, in selection order. A new dialog gets a new
// session.
type Session struct {
	Artist model.SearchItem

	mu          sync.Mutex
	discography model.Discography
	selected    []model.SearchItem
	index       map[string]int
	onChange    func(count int)
}

// NewSession starts an empty session for artist
func NewSession(artist model.SearchItem) *Session {
	return &Session{
		Artist: artist,
		index:  make(map[string]int),
	}
}

// SetDiscography stores the resolved releases
func (s *Session) SetDiscography(d model.Discography) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discography = d
}

// Discography returns the resolved releases
func (s *Session) Discography() model.Discography {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discography
}

// SetChangeCallback is called with the selection count after every change
func (s *Session) SetChangeCallback(callback func(count int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = callback
}

// IsSelected reports whether item is part of the selection
func (s *Session) IsSelected(item model.SearchItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.index[item.Key()]
	return ok
}

// Toggle flips the selection of item and returns whether it is now selected
func (s *Session) Toggle(item model.SearchItem) bool {
	s.mu.Lock()
	selected := s.toggleLocked(item)
	count := len(s.selected)
	callback := s.onChange
	s.mu.Unlock()

	if callback != nil {
		callback(count)
	}
	return selected
}

// ToggleSection deselects every item of a fully selected section, otherwise
// selects the missing ones
func (s *Session) ToggleSection(items []model.SearchItem) {
	s.mu.Lock()
	allSelected := true
	for _, item := range items {
		if _, ok := s.index[item.Key()]; !ok {
			allSelected = false
			break
		}
	}
	for _, item := range items {
		_, isSelected := s.index[item.Key()]
		if allSelected == isSelected {
			s.toggleLocked(item)
		}
	}
	count := len(s.selected)
	callback := s.onChange
	s.mu.Unlock()

	if callback != nil {
		callback(count)
	}
}

func (s *Session) toggleLocked(item model.SearchItem) bool {
	key := item.Key()
	if _, ok := s.index[key]; ok {
		kept := s.selected[:0]
		for _, sel := range s.selected {
			if sel.Key() != key {
				kept = append(kept, sel)
			}
		}
		s.selected = kept
		s.reindexLocked()
		return false
	}
	s.index[key] = len(s.selected)
	s.selected = append(s.selected, item)
	return true
}

func (s *Session) reindexLocked() {
	s.index = make(map[string]int, len(s.selected))
	for i, sel := range s.selected {
		s.index[sel.Key()] = i
	}
}

// Count returns the number of selected items
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selected)
}

// Selected returns a copy of the selection in selection order
func (s *Session) Selected() []model.SearchItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.SearchItem(nil), s.selected...)
}

// Clear empties the selection
func (s *Session) Clear() {
	s.mu.Lock()
	s.selected = nil
	s.index = make(map[string]int)
	callback := s.onChange
	s.mu.Unlock()

	if callback != nil {
		callback(0)
	}
}

// DownloadSelected enqueues each selected item once, then clears the selection.
// The selection is cleared even when some submissions fail.
func (s *Session) DownloadSelected(ctx context.Context, d download.Downloader) (int, error) {
	items := s.Selected()
	if len(items) == 0 {
		return 0, nil
	}
	reqs := make([]model.DownloadRequest, 0, len(items))
	for _, item := range items {
		reqs = append(reqs, DiscographyRequest(item))
	}
	added, err := d.AddBatch(ctx, reqs)
	s.Clear()
	return added, err
}

// DownloadAll enqueues every release of the discography
func (s *Session) DownloadAll(ctx context.Context, d download.Downloader) (int, error) {
	disco := s.Discography()
	all := disco.All()
	reqs := make([]model.DownloadRequest, 0, len(all))
	for _, item := range all {
		reqs = append(reqs, model.DownloadRequest{
			URL:         item.URL,
			Title:       item.Name,
			Artist:      item.Artist,
			Album:       item.Album,
			Image:       item.Image,
			TrackNumber: item.TrackNumber,
			TotalTracks: item.TrackCount,
		})
	}
	return d.AddBatch(ctx, reqs)
}
