package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/amdl-client/internal/catalog"
	"github.com/ytget/amdl-client/internal/download"
	"github.com/ytget/amdl-client/internal/model"
)

// Catalog is the part of the API used for browsing
type Catalog interface {
	Search(ctx context.Context, query string) (model.SearchResults, error)
	ResolveArtist(ctx context.Context, artistURL string) (model.Discography, error)
}

// Result card sizing
const (
	ResultCardWidth  float32 = 180
	ResultCardHeight float32 = 150
)

// SearchView is the search tab: one input that either queues a catalog link
// or searches, and the grouped results.
type SearchView struct {
	ctx          context.Context
	localization *Localization
	catalog      Catalog
	downloader   download.Downloader
	modals       *Modals
	now          func() time.Time

	// OpenArtist is called when an artist card is clicked
	OpenArtist func(item model.SearchItem)

	entry     *widget.Entry
	searchBtn *widget.Button
	status    *widget.Label
	results   *fyne.Container
	content   fyne.CanvasObject
}

// NewSearchView creates the search tab
func NewSearchView(ctx context.Context, localization *Localization, cat Catalog, downloader download.Downloader, modals *Modals) *SearchView {
	v := &SearchView{
		ctx:          ctx,
		localization: localization,
		catalog:      cat,
		downloader:   downloader,
		modals:       modals,
		now:          time.Now,
	}
	v.createUI()
	return v
}

func (v *SearchView) createUI() {
	v.entry = widget.NewEntry()
	v.entry.SetPlaceHolder(v.localization.GetText(KeySearchHint))
	v.entry.OnSubmitted = func(string) { v.submit() }

	v.searchBtn = widget.NewButton(IconSearch+" "+v.localization.GetText(KeySearch), v.submit)
	v.searchBtn.Importance = widget.HighImportance

	v.status = widget.NewLabel("")
	v.status.Hide()
	v.results = container.NewVBox()

	top := container.NewVBox(
		container.NewBorder(nil, nil, nil, v.searchBtn, v.entry),
		v.status,
	)
	v.content = container.NewBorder(top, nil, nil, nil, container.NewVScroll(v.results))
}

// Content returns the tab content
func (v *SearchView) Content() fyne.CanvasObject {
	return v.content
}

// submit queues a direct link or starts a search. Empty input does nothing.
func (v *SearchView) submit() {
	input := strings.TrimSpace(v.entry.Text)
	if input == "" {
		return
	}

	if catalog.IsDirectLink(input) {
		log.Printf("Queueing direct link: %s", input)
		req := model.DownloadRequest{URL: input}
		go v.enqueue(req, v.searchBtn, func() { v.entry.SetText("") })
		return
	}

	v.setStatus(catalog.SearchingText)
	v.results.Objects = nil
	v.results.Refresh()
	go v.search(input)
}

func (v *SearchView) search(query string) {
	res, err := v.catalog.Search(v.ctx, query)
	fyne.Do(func() {
		if err != nil {
			log.Printf("Search for %q failed: %v", query, err)
			v.setStatus(fmt.Sprintf("%s: %v", v.localization.GetText(KeyError), err))
			return
		}
		v.render(res)
	})
}

// render replaces the results with res. Must run on the UI goroutine.
func (v *SearchView) render(res model.SearchResults) {
	if !catalog.HasResults(res) {
		v.setStatus(catalog.NoResultsText)
		v.results.Objects = nil
		v.results.Refresh()
		return
	}
	v.setStatus("")

	var objs []fyne.CanvasObject
	for _, section := range catalog.Sections(res) {
		cards := make([]fyne.CanvasObject, 0, len(section.Items))
		for _, item := range section.Items {
			cards = append(cards, v.resultCard(item))
		}
		objs = append(objs,
			heading(section.Title),
			container.NewGridWrap(fyne.NewSize(ResultCardWidth, ResultCardHeight), cards...),
		)
	}
	v.results.Objects = objs
	v.results.Refresh()
}

func (v *SearchView) resultCard(item model.SearchItem) fyne.CanvasObject {
	name := widget.NewLabel(item.Name)
	name.TextStyle = fyne.TextStyle{Bold: true}
	name.Truncation = fyne.TextTruncateEllipsis

	lines := []fyne.CanvasObject{newArtwork(item.ArtworkURL(), CardArtworkSize), name, caption(item.Subtitle())}
	if detail := v.detail(item); detail != "" {
		lines = append(lines, caption(detail))
	}
	return NewTappableCard(container.NewVBox(lines...), func() { v.activate(item) })
}

// detail is the release age and track count of albums, empty for other types
func (v *SearchView) detail(item model.SearchItem) string {
	var parts []string
	if age := catalog.ReleaseAge(item, v.now()); age != "" {
		parts = append(parts, age)
	}
	if tracks := catalog.TrackCountLabel(item); tracks != "" {
		parts = append(parts, tracks)
	}
	return strings.Join(parts, MiddleDotSeparator)
}

// activate runs the click action of a result card
func (v *SearchView) activate(item model.SearchItem) {
	switch catalog.ClickAction(item) {
	case catalog.ActionOpenArtist:
		if v.OpenArtist != nil {
			v.OpenArtist(item)
		}
	default:
		go v.enqueue(catalog.RequestFor(item), v.searchBtn, nil)
	}
}

// enqueue submits req and flashes btn on success. onSuccess runs on the UI goroutine.
func (v *SearchView) enqueue(req model.DownloadRequest, btn *widget.Button, onSuccess func()) {
	err := v.downloader.Add(v.ctx, req)
	fyne.Do(func() {
		if err != nil {
			v.modals.ShowError(err)
			return
		}
		flashButton(btn)
		if onSuccess != nil {
			onSuccess()
		}
	})
}

func (v *SearchView) setStatus(text string) {
	v.status.SetText(text)
	if text == "" {
		v.status.Hide()
	} else {
		v.status.Show()
	}
}
