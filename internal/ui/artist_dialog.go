package ui

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/amdl-client/internal/catalog"
	"github.com/ytget/amdl-client/internal/download"
	"github.com/ytget/amdl-client/internal/model"
)

// ArtistDialog lists an artist's discography with per-item and per-section
// selection and a bar for downloading the selection.
type ArtistDialog struct {
	ctx          context.Context
	localization *Localization
	catalog      Catalog
	downloader   download.Downloader
	modals       *Modals

	session *catalog.Session
	checks  map[string][]*widget.Check

	status      *widget.Label
	body        *fyne.Container
	selBar      *fyne.Container
	selLabel    *widget.Label
	selBtn      *widget.Button
	downloadAll *widget.Button
	dlg         dialog.Dialog
}

// NewArtistDialog prepares the dialog of artist with a fresh selection
func NewArtistDialog(ctx context.Context, localization *Localization, cat Catalog, downloader download.Downloader, modals *Modals, artist model.SearchItem) *ArtistDialog {
	d := &ArtistDialog{
		ctx:          ctx,
		localization: localization,
		catalog:      cat,
		downloader:   downloader,
		modals:       modals,
		session:      catalog.NewSession(artist),
		checks:       make(map[string][]*widget.Check),
	}
	d.createUI()
	return d
}

func (d *ArtistDialog) createUI() {
	d.status = widget.NewLabel(catalog.LoadingDiscographyText)
	d.body = container.NewVBox()

	d.selLabel = widget.NewLabel("")
	d.selBtn = widget.NewButton(d.localization.GetText(KeyDownloadSel), d.onDownloadSelected)
	d.selBtn.Importance = widget.HighImportance
	d.selBar = container.NewHBox(layout.NewSpacer(), d.selLabel, d.selBtn)
	d.selBar.Hide()

	d.downloadAll = widget.NewButton(d.localization.GetText(KeyDownloadAll), d.onDownloadAll)
	d.downloadAll.Disable()

	d.session.SetChangeCallback(func(count int) {
		fyne.Do(func() { d.updateSelection(count) })
	})

	header := container.NewBorder(nil, nil,
		newArtwork(d.session.Artist.ArtworkURL(), ArtworkSize),
		d.downloadAll,
		container.NewVBox(heading(d.session.Artist.Name), d.status),
	)
	content := container.NewBorder(header, d.selBar, nil, nil, container.NewVScroll(d.body))

	d.dlg = dialog.NewCustom(d.session.Artist.Name, d.localization.GetText(KeyCancel), content, d.modals.Window())
	d.dlg.Resize(fyne.NewSize(ArtistDialogWidth, ArtistDialogHeight))
}

// Show opens the dialog and resolves the discography in the background
func (d *ArtistDialog) Show() {
	d.modals.Open(ModalArtist, d.dlg)
	if d.session.Artist.URL == "" {
		d.status.SetText(catalog.ArtistURLMissingText)
		return
	}
	go d.load()
}

func (d *ArtistDialog) load() {
	disco, err := d.catalog.ResolveArtist(d.ctx, d.session.Artist.URL)
	fyne.Do(func() {
		if err != nil {
			log.Printf("Artist %s: %v", d.session.Artist.URL, err)
			d.status.SetText(err.Error())
			return
		}
		d.render(disco)
	})
}

// render lists the discography. Must run on the UI goroutine.
func (d *ArtistDialog) render(disco model.Discography) {
	d.session.SetDiscography(disco)
	d.checks = make(map[string][]*widget.Check)
	sections := catalog.DiscographySections(disco)
	if len(sections) == 0 {
		d.status.SetText(catalog.NoArtistContentText)
		return
	}
	d.status.SetText("")
	d.downloadAll.Enable()

	var objs []fyne.CanvasObject
	for _, section := range sections {
		items := section.Items
		selectAll := widget.NewButton(d.localization.GetText(KeySelectAll), func() {
			d.session.ToggleSection(items)
			d.syncChecks()
		})
		selectAll.Importance = widget.LowImportance
		objs = append(objs, container.NewHBox(heading(section.Title), layout.NewSpacer(), selectAll))
		for _, item := range items {
			objs = append(objs, d.itemRow(item))
		}
	}
	d.body.Objects = objs
	d.body.Refresh()
}

func (d *ArtistDialog) itemRow(item model.SearchItem) fyne.CanvasObject {
	check := widget.NewCheck("", func(on bool) {
		if on != d.session.IsSelected(item) {
			d.session.Toggle(item)
		}
		// a release listed in several sections has one box per listing
		for _, other := range d.checks[item.Key()] {
			other.SetChecked(on)
		}
	})
	d.checks[item.Key()] = append(d.checks[item.Key()], check)

	name := widget.NewLabel(item.Name)
	name.Truncation = fyne.TextTruncateEllipsis
	meta := catalog.ReleaseYear(item)
	if tracks := catalog.TrackCountLabel(item); tracks != "" {
		meta += MiddleDotSeparator + tracks
	}
	return container.NewBorder(nil, nil, check, caption(meta), name)
}

// syncChecks makes every checkbox mirror the selection
func (d *ArtistDialog) syncChecks() {
	for _, item := range d.session.Discography().All() {
		for _, check := range d.checks[item.Key()] {
			check.SetChecked(d.session.IsSelected(item))
		}
	}
}

func (d *ArtistDialog) updateSelection(count int) {
	if count == 0 {
		d.selBar.Hide()
		return
	}
	d.selLabel.SetText(fmt.Sprintf(SelectedFormat, count))
	d.selBar.Show()
}

func (d *ArtistDialog) onDownloadSelected() {
	d.selBtn.Disable()
	go func() {
		n, err := d.session.DownloadSelected(d.ctx, d.downloader)
		fyne.Do(func() {
			d.selBtn.Enable()
			d.syncChecks()
			d.reportQueued(n, err)
		})
	}()
}

func (d *ArtistDialog) onDownloadAll() {
	question := fmt.Sprintf(d.localization.GetText(KeyDownloadAllAsk), d.session.Artist.Name)
	answer := d.modals.Confirm(d.localization.GetText(KeyDownloadAll), question)
	go func() {
		if ok := <-answer; !ok {
			return
		}
		n, err := d.session.DownloadAll(d.ctx, d.downloader)
		fyne.Do(func() { d.reportQueued(n, err) })
	}()
}

func (d *ArtistDialog) reportQueued(n int, err error) {
	if err != nil {
		d.modals.ShowError(err)
		return
	}
	if n > 0 {
		d.modals.ShowMessage(d.localization.GetText(KeyQueued), fmt.Sprintf(d.localization.GetText(KeyQueuedBody), n))
	}
}
