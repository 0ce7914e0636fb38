package settings

import (
	"sort"

	"github.com/ytget/amdl-client/internal/model"
)

// FieldKind selects the widget used for a field
type FieldKind int

const (
	KindText FieldKind = iota
	KindBoolean
	KindSelect
	KindStorefront
	KindLanguage
)

// Configuration keys with special handling
const (
	KeyMediaUserToken    = "media-user-token"
	KeyAuthorizationTok  = "authorization-token"
	KeyStorefront        = "storefront"
	KeyLanguage          = "language"
	KeyCoverSize         = "cover-size"
	KeyParallelDownloads = "parallel-downloads"
)

// Field is one form entry
type Field struct {
	Key     string
	Label   string
	Kind    FieldKind
	Options []string
	Help    string
}

// Section is a titled group of fields
type Section struct {
	Title  string
	Fields []Field
}

// Section titles
const (
	SectionAuth     = "Authentication & Region"
	SectionDownload = "Download Settings"
	SectionQuality  = "Audio Quality"
	SectionLyrics   = "Lyrics & Metadata"
	SectionNaming   = "Naming Formats"
	SectionAdvanced = "Advanced / Other"
)

func text(key, label string) Field {
	return Field{Key: key, Label: label, Kind: KindText}
}

func boolean(key, label string) Field {
	return Field{Key: key, Label: label, Kind: KindBoolean}
}

func choice(key, label string, options ...string) Field {
	return Field{Key: key, Label: label, Kind: KindSelect, Options: options}
}

func format(key, label, help string) Field {
	return Field{Key: key, Label: label, Kind: KindText, Help: help}
}

// Schema returns the form layout. With a storefront list the region and
// language become pickers, otherwise they are free text.
func Schema(storefronts model.StorefrontList) []Section {
	region := []Field{
		text(KeyStorefront, "Storefront (e.g. us, jp, uk)"),
		text(KeyLanguage, "Language"),
	}
	if len(storefronts) > 0 {
		region = []Field{
			{Key: KeyStorefront, Label: "Storefront (Region)", Kind: KindStorefront},
			{Key: KeyLanguage, Label: "Language", Kind: KindLanguage},
		}
	}

	auth := append([]Field{
		text(KeyMediaUserToken, "Media User Token"),
		text(KeyAuthorizationTok, "Authorization Token"),
	}, region...)

	return []Section{
		{Title: SectionAuth, Fields: auth},
		{Title: SectionDownload, Fields: []Field{
			text("alac-save-folder", "ALAC Save Folder"),
			text("atmos-save-folder", "Atmos Save Folder"),
			text("aac-save-folder", "AAC Save Folder"),
			text("max-memory-limit", "Max Memory Limit (MB)"),
			text("limit-max", "Max Download Limit"),
			text(KeyParallelDownloads, "Parallel Downloads"),
		}},
		{Title: SectionQuality, Fields: []Field{
			choice("preferred-quality", "Preferred Quality", "ALAC", "AAC", "Atmos"),
			choice("alac-max", "ALAC Max Sample Rate", "192000", "96000", "48000", "44100"),
			choice("atmos-max", "Atmos Max", "2768", "2448"),
			choice("aac-type", "AAC Type", "aac-lc", "aac", "aac-binaural", "aac-downmix"),
		}},
		{Title: SectionLyrics, Fields: []Field{
			choice("lrc-type", "Lyrics Type", "lyrics", "syllable-lyrics"),
			choice("lrc-format", "Lyrics Format", "lrc", "ttml"),
			boolean("embed-lrc", "Embed Lyrics"),
			boolean("save-lrc-file", "Save Lyrics File"),
			boolean("embed-cover", "Embed Cover"),
			choice("cover-format", "Cover Format", "jpg", "png", "original"),
			text(KeyCoverSize, "Cover Size"),
		}},
		{Title: SectionNaming, Fields: []Field{
			format("album-folder-format", "Album Folder Format",
				"{AlbumId} {AlbumName} {ArtistName} {ReleaseDate} {ReleaseYear} {UPC} {Copyright} {Quality} {Codec} {Tag} {RecordLabel}\n"+
					"Example: {ReleaseYear} - {ArtistName} - {AlbumName}({AlbumId})({UPC})({Copyright}){Codec}"),
			format("playlist-folder-format", "Playlist Folder Format",
				"{PlaylistId} {PlaylistName} {ArtistName} {Quality} {Codec} {Tag}"),
			format("song-file-format", "Song File Format",
				"{SongId} {SongNumer} {SongName} {DiscNumber} {TrackNumber} {Quality} {Codec} {Tag}\n"+
					"Example: Disk {DiscNumber} - Track {TrackNumber} {SongName} [{Quality}]{{Tag}}"),
			format("artist-folder-format", "Artist Folder Format",
				"{ArtistId} {ArtistName}/{UrlArtistName}\nIf set \"\", will not make artist folder"),
		}},
		{Title: SectionAdvanced, Fields: []Field{
			text("decrypt-m3u8-port", "Decrypt Port"),
			text("get-m3u8-port", "Get M3U8 Port"),
			text("get-m3u8-mode", "Get M3U8 Mode"),
			text("ffmpeg-path", "FFmpeg Path"),
		}},
	}
}

// WithUnknown appends every key of values that the layout does not name to the
// advanced section, sorted by key, so no backend setting is hidden. Booleans
// get a true/false picker, everything else a text field.
func WithUnknown(sections []Section, values map[string]any) []Section {
	known := make(map[string]bool)
	for _, f := range Fields(sections) {
		known[f.Key] = true
	}
	var extra []string
	for k := range values {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	if len(extra) == 0 {
		return sections
	}
	sort.Strings(extra)

	out := append([]Section(nil), sections...)
	idx := -1
	for i, s := range out {
		if s.Title == SectionAdvanced {
			idx = i
		}
	}
	if idx < 0 {
		out = append(out, Section{Title: SectionAdvanced})
		idx = len(out) - 1
	}
	fields := append([]Field(nil), out[idx].Fields...)
	for _, k := range extra {
		if _, ok := values[k].(bool); ok {
			fields = append(fields, boolean(k, k))
		} else {
			fields = append(fields, text(k, k))
		}
	}
	out[idx].Fields = fields
	return out
}
