package model

import (
	"encoding/json"
	"testing"
)

func TestStorefrontListUnmarshal(t *testing.T) {
	raw := `{"data":[
		{"id":"us","attributes":{"name":"United States","supportedLanguageTags":["en-US","es-MX"],"defaultLanguageTag":"en-US"}},
		{"id":"de","attributes":{"name":"Germany","supportedLanguageTags":["de-DE","en-GB"],"defaultLanguageTag":"de-DE"}}
	]}`

	var list StorefrontList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 storefronts, got %d", len(list))
	}
	if list[0].ID != "de" {
		t.Errorf("Expected list sorted by name, first is %s", list[0].ID)
	}
	sf, ok := list.Find("us")
	if !ok {
		t.Fatal("Expected to find storefront us")
	}
	if sf.DefaultLanguage != "en-US" || len(sf.Languages) != 2 {
		t.Errorf("Unexpected storefront %+v", sf)
	}
	if _, ok := list.Find("jp"); ok {
		t.Error("Did not expect to find storefront jp")
	}
}

func TestDiscographyAll(t *testing.T) {
	d := Discography{
		Albums:      []SearchItem{{URL: "a"}},
		EPs:         []SearchItem{{URL: "e"}},
		Singles:     []SearchItem{{URL: "s"}},
		MusicVideos: []SearchItem{{URL: "v"}},
	}
	all := d.All()
	if len(all) != 4 {
		t.Fatalf("Expected 4 items, got %d", len(all))
	}
	if all[0].URL != "a" || all[3].URL != "v" {
		t.Errorf("Unexpected order %v", all)
	}
}

func TestSearchItemFallbacks(t *testing.T) {
	item := SearchItem{Type: ItemArtists}
	if item.Subtitle() != ItemArtists {
		t.Errorf("Expected type as subtitle, got %s", item.Subtitle())
	}
	if item.ArtworkURL() != DefaultArtworkURL {
		t.Errorf("Expected default artwork, got %s", item.ArtworkURL())
	}
}
