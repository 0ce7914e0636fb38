package ui

import (
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "amdl-client.png"
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// artworkCache keeps downloaded covers so the 2s queue rebuild does not refetch them
var artworkCache sync.Map // url -> fyne.Resource

// remoteArtwork is switched off in tests to keep them offline
var remoteArtwork = true

// newArtwork returns a square image showing the cover at u. The placeholder
// is shown until the cover has been fetched.
func newArtwork(u string, size float32) *canvas.Image {
	img := canvas.NewImageFromResource(theme.MediaMusicIcon())
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(size, size))

	if u == "" || !remoteArtwork {
		return img
	}
	if res, ok := artworkCache.Load(u); ok {
		img.Resource = res.(fyne.Resource)
		return img
	}

	go func() {
		res, err := fetchArtwork(u)
		if err != nil {
			log.Printf("Artwork %s not loaded: %v", u, err)
			return
		}
		artworkCache.Store(u, res)
		fyne.Do(func() {
			img.Resource = res
			img.Refresh()
		})
	}()
	return img
}

func fetchArtwork(u string) (fyne.Resource, error) {
	return fyne.LoadResourceFromURLString(u)
}
