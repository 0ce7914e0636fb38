package ui

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/amdl-client/internal/auth"
	"github.com/ytget/amdl-client/internal/config"
	"github.com/ytget/amdl-client/internal/download"
	"github.com/ytget/amdl-client/internal/logs"
	"github.com/ytget/amdl-client/internal/model"
	"github.com/ytget/amdl-client/internal/queue"
)

// Backend is the API surface used by the views
type Backend interface {
	Catalog
	SettingsBackend
	ParallelSetter
	StreamLogs(ctx context.Context) (<-chan string, error)
}

// Services are the long-lived collaborators of the main window
type Services struct {
	Backend    Backend
	Downloader download.Downloader
	Queue      *queue.Poller
	Auth       *auth.Poller
	Logs       *logs.Buffer
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	svc          Services
	settings     *config.Settings
	localization *Localization
	modals       *Modals

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	tabs        *container.AppTabs
	searchTab   *container.TabItem
	queueTab    *container.TabItem
	historyTab  *container.TabItem
	settingsTab *container.TabItem
	consoleTab  *container.TabItem

	searchView   *SearchView
	queueView    *QueueView
	historyView  *HistoryView
	settingsForm *SettingsForm
	loginDialog  *LoginDialog
	console      *LogConsole

	statusDot   *canvas.Circle
	statusLabel *widget.Label
	tipLabel    *widget.Label
	tipIndex    int
	pending     int
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, svc Services) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:       window,
		app:          app,
		svc:          svc,
		settings:     settings,
		localization: localization,
		modals:       NewModals(window),
		ctx:          ctx,
		cancel:       cancel,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.searchView = NewSearchView(ui.ctx, ui.localization, ui.svc.Backend, ui.svc.Downloader, ui.modals)
	ui.searchView.OpenArtist = ui.openArtist
	ui.queueView = NewQueueView(ui.ctx, ui.localization, ui.svc.Queue, ui.settings, ui.svc.Backend)
	ui.historyView = NewHistoryView(ui.ctx, ui.localization, ui.svc.Queue, ui.svc.Downloader, ui.modals)
	ui.settingsForm = NewSettingsForm(ui.ctx, ui.localization, ui.svc.Backend, ui.settings, ui.modals)
	ui.settingsForm.OnCodecChanged = ui.svc.Downloader.SetCodec
	ui.loginDialog = NewLoginDialog(ui.ctx, ui.localization, ui.svc.Auth, ui.modals)
	ui.console = NewLogConsole(ui.svc.Logs)

	ui.searchTab = container.NewTabItem(ui.localization.GetText(KeyTabSearch), ui.searchView.Content())
	ui.queueTab = container.NewTabItem(ui.localization.GetText(KeyTabQueue), ui.queueView.Content())
	ui.historyTab = container.NewTabItem(ui.localization.GetText(KeyTabHistory), ui.historyView.Content())
	ui.settingsTab = container.NewTabItem(ui.localization.GetText(KeyTabSettings), ui.settingsForm.Content())
	ui.consoleTab = container.NewTabItem(ui.localization.GetText(KeyTabConsole), ui.console.Content())
	ui.tabs = container.NewAppTabs(ui.searchTab, ui.queueTab, ui.historyTab, ui.settingsTab, ui.consoleTab)
	ui.tabs.OnSelected = ui.onTabSelected

	ui.statusDot = canvas.NewCircle(IndicatorColor(auth.IndicatorNone))
	ui.statusLabel = widget.NewLabel("")
	ui.tipLabel = caption("")
	dot := container.NewGridWrap(fyne.NewSize(StatusDotSize, StatusDotSize), ui.statusDot)
	loginBtn := widget.NewButton(ui.localization.GetText(KeyLogin), ui.loginDialog.Show)
	loginBtn.Importance = widget.LowImportance

	statusBar := container.NewBorder(nil, nil,
		container.NewHBox(container.NewCenter(dot), ui.statusLabel, loginBtn),
		nil,
		container.NewHBox(layout.NewSpacer(), ui.tipLabel),
	)

	ui.window.SetContent(container.NewBorder(nil, statusBar, nil, nil, ui.tabs))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReloadQueue), func() {
		if ui.svc.Queue != nil {
			ui.svc.Queue.Refresh()
		}
	})

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), reloadItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates the window and tab titles with the current language.
// Texts inside the views follow on the next restart.
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchTab.Text = ui.localization.GetText(KeyTabSearch)
	ui.historyTab.Text = ui.localization.GetText(KeyTabHistory)
	ui.settingsTab.Text = ui.localization.GetText(KeyTabSettings)
	ui.consoleTab.Text = ui.localization.GetText(KeyTabConsole)
	ui.setPendingCount(ui.pending)
	ui.tabs.Refresh()
}

// Start launches the pollers, the tip rotation and the log stream. They all
// stop when the window closes.
func (ui *RootUI) Start() {
	ui.svc.Downloader.SetCodec(string(ui.settings.GetCodec()))
	ui.svc.Downloader.SetUpdateCallback(func(req model.DownloadRequest) {
		ui.svc.Queue.Refresh()
	})
	ui.svc.Queue.SetUpdateCallback(func(view queue.View) {
		fyne.Do(func() { ui.applyQueue(view) })
	})
	ui.svc.Auth.SetUpdateCallback(func(status model.LoginStatus, vs auth.ViewState) {
		fyne.Do(func() { ui.applyLogin(status, vs) })
	})
	ui.window.SetOnClosed(ui.Stop)

	ui.goLoop(func() { ui.svc.Queue.Run(ui.ctx) })
	ui.svc.Auth.Start(ui.ctx)
	ui.goLoop(ui.rotateTips)
	ui.goLoop(ui.streamLogs)
}

// Stop cancels every background loop and waits for them
func (ui *RootUI) Stop() {
	ui.cancel()
	ui.svc.Auth.Stop()
	ui.wg.Wait()
}

func (ui *RootUI) goLoop(fn func()) {
	ui.wg.Add(1)
	go func() {
		defer ui.wg.Done()
		fn()
	}()
}

// applyQueue renders a polled queue view. Must run on the UI goroutine.
func (ui *RootUI) applyQueue(view queue.View) {
	ui.queueView.Apply(view)
	ui.historyView.Apply(view)
	ui.setPendingCount(view.PendingCount)
}

func (ui *RootUI) setPendingCount(n int) {
	ui.pending = n
	title := ui.localization.GetText(KeyTabQueue)
	if n > 0 {
		title = fmt.Sprintf("%s (%d)", title, n)
	}
	if ui.queueTab.Text != title {
		ui.queueTab.Text = title
		ui.tabs.Refresh()
	}
}

// applyLogin updates the status bar and the login dialog. Must run on the UI goroutine.
func (ui *RootUI) applyLogin(status model.LoginStatus, vs auth.ViewState) {
	ui.statusDot.FillColor = IndicatorColor(vs.Indicator)
	ui.statusDot.Refresh()
	ui.statusLabel.SetText(vs.StatusText)
	ui.loginDialog.Apply(status, vs)
}

func (ui *RootUI) onTabSelected(tab *container.TabItem) {
	switch tab {
	case ui.settingsTab:
		ui.settingsForm.Load()
	case ui.historyTab:
		ui.svc.Queue.Refresh()
	}
}

func (ui *RootUI) openArtist(item model.SearchItem) {
	NewArtistDialog(ui.ctx, ui.localization, ui.svc.Backend, ui.svc.Downloader, ui.modals, item).Show()
}

// rotateTips cycles the status bar tips until the window closes
func (ui *RootUI) rotateTips() {
	ticker := time.NewTicker(TipInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ui.ctx.Done():
			return
		case <-ticker.C:
			ui.nextTip()
		}
	}
}

func (ui *RootUI) nextTip() {
	text := ""
	if ui.settings.GetShowTips() && len(Tips) > 0 {
		text = Tips[ui.tipIndex%len(Tips)]
		ui.tipIndex++
	}
	fyne.Do(func() { ui.tipLabel.SetText(text) })
}

// streamLogs feeds the console for the lifetime of the window. A dropped
// connection is reported and not retried.
func (ui *RootUI) streamLogs() {
	ch, err := ui.svc.Backend.StreamLogs(ui.ctx)
	if err != nil {
		log.Printf("Log stream unavailable: %v", err)
		fyne.Do(func() { ui.console.SetState(StreamClosed + ": " + err.Error()) })
		return
	}
	fyne.Do(func() { ui.console.SetState(StreamConnected) })
	ui.svc.Logs.Consume(ui.ctx, ch)
	if ui.ctx.Err() == nil {
		fyne.Do(func() { ui.console.SetState(StreamClosed) })
	}
}
