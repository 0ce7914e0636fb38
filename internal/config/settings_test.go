package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestServerURL(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetServerURL(); got != DefaultServerURL {
		t.Errorf("Expected default server %s, got %s", DefaultServerURL, got)
	}

	settings.SetServerURL(" https://music.example.org:8443/ ")
	if got := settings.GetServerURL(); got != "https://music.example.org:8443" {
		t.Errorf("Expected trimmed URL, got %s", got)
	}

	settings.SetServerURL("")
	if got := settings.GetServerURL(); got != DefaultServerURL {
		t.Errorf("Empty URL should reset to default, got %s", got)
	}
}

func TestCodec(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetCodec(); got != DefaultCodec {
		t.Errorf("Expected default codec %s, got %s", DefaultCodec, got)
	}

	settings.SetCodec(CodecAtmos)
	if got := settings.GetCodec(); got != CodecAtmos {
		t.Errorf("Expected atmos, got %s", got)
	}

	settings.SetCodec("flac")
	if got := settings.GetCodec(); got != DefaultCodec {
		t.Errorf("Unknown codec should fall back to default, got %s", got)
	}

	if len(CodecOptions()) != 3 {
		t.Errorf("Expected 3 codec options, got %d", len(CodecOptions()))
	}
}

func TestMaxParallelDownloads(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetMaxParallelDownloads(); got != DefaultMaxParallel {
		t.Errorf("Expected default max parallel %d, got %d", DefaultMaxParallel, got)
	}

	settings.SetMaxParallelDownloads(5)
	if got := settings.GetMaxParallelDownloads(); got != 5 {
		t.Errorf("Expected max parallel 5, got %d", got)
	}

	settings.SetMaxParallelDownloads(0) // Should be clamped to 1
	if settings.GetMaxParallelDownloads() != 1 {
		t.Error("Max parallel should be clamped to minimum 1")
	}

	settings.SetMaxParallelDownloads(15) // Should be clamped to 10
	if settings.GetMaxParallelDownloads() != 10 {
		t.Error("Max parallel should be clamped to maximum 10")
	}
}

func TestLanguage(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, got)
	}

	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language ru, got %s", got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	settings := NewSettings(test.NewApp())
	options := settings.GetLanguageOptions()

	for _, key := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[key]; !ok {
			t.Errorf("Expected language option %s to exist", key)
		}
	}
}

func TestExportDirectory(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if dir := settings.GetExportDirectory(); dir == "" {
		t.Error("Export directory should not be empty")
	}

	settings.SetExportDirectory("/custom/exports")
	if got := settings.GetExportDirectory(); got != "/custom/exports" {
		t.Errorf("Expected /custom/exports, got %s", got)
	}
}

func TestShowTips(t *testing.T) {
	settings := NewSettings(test.NewApp())

	if !settings.GetShowTips() {
		t.Error("Tips should be shown by default")
	}
	settings.SetShowTips(false)
	if settings.GetShowTips() {
		t.Error("Tips should be disabled")
	}
}
