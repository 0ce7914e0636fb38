package config

import (
	"strings"

	"fyne.io/fyne/v2"
	"github.com/ytget/amdl-client/internal/platform"
)

// Codec presets offered for new downloads
type Codec string

const (
	CodecALAC  Codec = "alac"
	CodecAAC   Codec = "aac"
	CodecAtmos Codec = "atmos"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL   = "server_url"
	KeyCodec       = "default_codec"
	KeyMaxParallel = "max_parallel_downloads"
	KeyLanguage    = "app_language"
	KeyExportDir   = "export_directory"
	KeyShowTips    = "show_tips"
)

// Default values
const (
	DefaultServerURL   = "http://localhost:8000"
	DefaultCodec       = CodecALAC
	DefaultMaxParallel = 2
	DefaultLanguage    = "system"
	DefaultShowTips    = true

	MinParallel = 1
	MaxParallel = 10
)

// Settings manages client configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the backend base URL
func (s *Settings) GetServerURL() string {
	u := s.app.Preferences().String(KeyServerURL)
	if u == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return u
}

// SetServerURL sets the backend base URL, trailing slashes are dropped
func (s *Settings) SetServerURL(u string) {
	u = strings.TrimRight(strings.TrimSpace(u), "/")
	if u == "" {
		u = DefaultServerURL
	}
	s.app.Preferences().SetString(KeyServerURL, u)
}

// GetCodec returns the codec used for new downloads
func (s *Settings) GetCodec() Codec {
	c := Codec(s.app.Preferences().String(KeyCodec))
	if !c.valid() {
		s.SetCodec(DefaultCodec)
		return DefaultCodec
	}
	return c
}

// SetCodec sets the codec for new downloads. Unknown values fall back to the default.
func (s *Settings) SetCodec(c Codec) {
	if !c.valid() {
		c = DefaultCodec
	}
	s.app.Preferences().SetString(KeyCodec, string(c))
}

func (c Codec) valid() bool {
	for _, o := range CodecOptions() {
		if c == o {
			return true
		}
	}
	return false
}

// CodecOptions returns available codec options
func CodecOptions() []Codec {
	return []Codec{CodecALAC, CodecAAC, CodecAtmos}
}

// GetMaxParallelDownloads returns the last parallel limit chosen by the user
func (s *Settings) GetMaxParallelDownloads() int {
	value := s.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallelDownloads(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallelDownloads sets the parallel limit, clamped to 1..10
func (s *Settings) SetMaxParallelDownloads(count int) {
	s.app.Preferences().SetInt(KeyMaxParallel, ClampParallel(count))
}

// ClampParallel bounds n to the range the backend accepts
func ClampParallel(n int) int {
	if n < MinParallel {
		return MinParallel
	}
	if n > MaxParallel {
		return MaxParallel
	}
	return n
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetExportDirectory returns where helper files (token script) are saved
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetShowTips reports whether the status bar rotates usage tips
func (s *Settings) GetShowTips() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowTips, DefaultShowTips)
}

// SetShowTips toggles the tip rotation
func (s *Settings) SetShowTips(show bool) {
	s.app.Preferences().SetBool(KeyShowTips, show)
}
