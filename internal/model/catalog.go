package model

import (
	"encoding/json"
	"sort"
)

// Catalog item types as reported by the backend
const (
	ItemSongs       = "songs"
	ItemAlbums      = "albums"
	ItemArtists     = "artists"
	ItemPlaylists   = "playlists"
	ItemMusicVideos = "music-videos"
	ItemEPs         = "eps"
	ItemSingles     = "singles"
)

// SearchItem is a catalog entry from search results or an artist discography
type SearchItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Artist      string `json:"artist,omitempty"`
	Album       string `json:"album,omitempty"`
	URL         string `json:"url"`
	Image       string `json:"image,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	TrackNumber *int   `json:"trackNumber,omitempty"`
	TrackCount  *int   `json:"trackCount,omitempty"`
	HasLyrics   bool   `json:"hasLyrics,omitempty"`
}

// Key identifies the item inside a selection
func (si SearchItem) Key() string {
	return si.URL
}

// ArtworkURL returns the item image or the default cover
func (si SearchItem) ArtworkURL() string {
	if si.Image == "" {
		return DefaultArtworkURL
	}
	return si.Image
}

// Subtitle returns the artist, or the item type when the artist is unknown
func (si SearchItem) Subtitle() string {
	if si.Artist != "" {
		return si.Artist
	}
	return si.Type
}

// SearchResults groups search hits by category
type SearchResults struct {
	Top         []SearchItem `json:"top"`
	Songs       []SearchItem `json:"songs"`
	Albums      []SearchItem `json:"albums"`
	Artists     []SearchItem `json:"artists"`
	Playlists   []SearchItem `json:"playlists"`
	MusicVideos []SearchItem `json:"music_videos"`
}

// Discography groups an artist's releases by kind
type Discography struct {
	Albums       []SearchItem `json:"albums"`
	EPs          []SearchItem `json:"eps"`
	Singles      []SearchItem `json:"singles"`
	Compilations []SearchItem `json:"compilations"`
	MusicVideos  []SearchItem `json:"music_videos"`
}

// All returns every release in section order
func (d Discography) All() []SearchItem {
	var all []SearchItem
	all = append(all, d.Albums...)
	all = append(all, d.EPs...)
	all = append(all, d.Singles...)
	all = append(all, d.Compilations...)
	all = append(all, d.MusicVideos...)
	return all
}

// Storefront is a catalog region with its supported languages
type Storefront struct {
	ID              string
	Name            string
	DefaultLanguage string
	Languages       []string
}

// storefrontDocument mirrors the storefront list format served by the backend
type storefrontDocument struct {
	Data []struct {
		ID         string `json:"id"`
		Attributes struct {
			Name                  string   `json:"name"`
			SupportedLanguageTags []string `json:"supportedLanguageTags"`
			DefaultLanguageTag    string   `json:"defaultLanguageTag"`
		} `json:"attributes"`
	} `json:"data"`
}

// StorefrontList is the decoded storefront document, sorted by name
type StorefrontList []Storefront

// UnmarshalJSON decodes the catalog document format
func (l *StorefrontList) UnmarshalJSON(data []byte) error {
	var doc storefrontDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	list := make(StorefrontList, 0, len(doc.Data))
	for _, d := range doc.Data {
		list = append(list, Storefront{
			ID:              d.ID,
			Name:            d.Attributes.Name,
			DefaultLanguage: d.Attributes.DefaultLanguageTag,
			Languages:       d.Attributes.SupportedLanguageTags,
		})
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	*l = list
	return nil
}

// Find returns the storefront with the given id
func (l StorefrontList) Find(id string) (Storefront, bool) {
	for _, sf := range l {
		if sf.ID == id {
			return sf, true
		}
	}
	return Storefront{}, false
}
