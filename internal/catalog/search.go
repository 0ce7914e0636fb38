package catalog

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ytget/amdl-client/internal/model"
)

// Texts shown by the search view
const (
	SearchingText          = "Searching..."
	NoResultsText          = "No results found"
	LoadingDiscographyText = "Loading discography..."
	NoArtistContentText    = "No content found for this artist."
	ArtistURLMissingText   = "Artist URL not available."
)

// directLinkHost marks input that is a catalog URL rather than a search term
const directLinkHost = "music.apple.com"

// IsDirectLink reports whether input should be enqueued as-is
func IsDirectLink(input string) bool {
	return strings.Contains(input, directLinkHost)
}

// Section is a titled group of catalog items
type Section struct {
	Title string
	Items []model.SearchItem
}

// Sections returns the non-empty result groups in display order
func Sections(res model.SearchResults) []Section {
	return nonEmpty([]Section{
		{"Top Results", res.Top},
		{"Songs", res.Songs},
		{"Albums", res.Albums},
		{"Artists", res.Artists},
		{"Playlists", res.Playlists},
		{"Music Videos", res.MusicVideos},
	})
}

// HasResults reports whether any group holds an item
func HasResults(res model.SearchResults) bool {
	return len(Sections(res)) > 0
}

func nonEmpty(sections []Section) []Section {
	out := sections[:0]
	for _, s := range sections {
		if len(s.Items) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Action is what a click on a search card does
type Action int

const (
	ActionEnqueue Action = iota
	ActionEnqueueAlbum
	ActionOpenArtist
)

// ClickAction maps an item to the action of its card
func ClickAction(item model.SearchItem) Action {
	switch item.Type {
	case model.ItemArtists:
		return ActionOpenArtist
	case model.ItemAlbums:
		return ActionEnqueueAlbum
	default:
		return ActionEnqueue
	}
}

// RequestFor builds the enqueue request for a search card. Albums carry their
// track metadata; other items only name, artist, album and artwork.
func RequestFor(item model.SearchItem) model.DownloadRequest {
	req := model.DownloadRequest{
		URL:    item.URL,
		Title:  item.Name,
		Artist: item.Artist,
		Album:  item.Album,
		Image:  item.Image,
	}
	if ClickAction(item) == ActionEnqueueAlbum {
		req.TrackNumber = item.TrackNumber
		req.TotalTracks = item.TrackCount
	}
	return req
}

// ReleaseYear returns the year part of a release date, or "" when absent
func ReleaseYear(item model.SearchItem) string {
	if len(item.ReleaseDate) < 4 {
		return ""
	}
	return item.ReleaseDate[:4]
}

// ReleaseAge renders a release date relative to now, e.g. "3 years ago"
func ReleaseAge(item model.SearchItem, now time.Time) string {
	d, err := time.Parse("2006-01-02", item.ReleaseDate)
	if err != nil {
		return ReleaseYear(item)
	}
	return humanize.RelTime(d, now, "ago", "from now")
}

// TrackCountLabel returns "N Tracks" when the item has a track count
func TrackCountLabel(item model.SearchItem) string {
	if item.TrackCount == nil || *item.TrackCount <= 0 {
		return ""
	}
	return humanize.Comma(int64(*item.TrackCount)) + " Tracks"
}
