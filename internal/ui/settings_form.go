package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/amdl-client/internal/config"
	"github.com/ytget/amdl-client/internal/model"
	"github.com/ytget/amdl-client/internal/platform"
	"github.com/ytget/amdl-client/internal/settings"
)

// SettingsBackend reads and writes the backend configuration
type SettingsBackend interface {
	Settings(ctx context.Context) (map[string]any, error)
	SaveSettings(ctx context.Context, update map[string]any) error
	Storefronts(ctx context.Context) (model.StorefrontList, error)
}

// TokenScriptFile is the name used when the helper script is saved to disk
const TokenScriptFile = "amdl-get-tokens.js"

// revealFile opens the file manager at a saved file
var revealFile = platform.OpenFileInManager

// SettingsForm is the settings tab. The backend part is built from the
// configuration map on every load; the client part edits local preferences.
type SettingsForm struct {
	ctx          context.Context
	localization *Localization
	backend      SettingsBackend
	prefs        *config.Settings
	modals       *Modals

	// OnCodecChanged is called after the default codec preference changed
	OnCodecChanged func(codec string)

	status  *widget.Label
	form    *fyne.Container
	saveBtn *widget.Button
	content fyne.CanvasObject

	fields  []settings.Field
	getters map[string]func() string

	serverEntry    *widget.Entry
	codecSelect    *widget.Select
	languageSelect *widget.Select
	tipsCheck      *widget.Check
}

// NewSettingsForm creates the settings tab
func NewSettingsForm(ctx context.Context, localization *Localization, backend SettingsBackend, prefs *config.Settings, modals *Modals) *SettingsForm {
	f := &SettingsForm{
		ctx:          ctx,
		localization: localization,
		backend:      backend,
		prefs:        prefs,
		modals:       modals,
		getters:      make(map[string]func() string),
	}
	f.createUI()
	return f
}

func (f *SettingsForm) createUI() {
	f.status = widget.NewLabel("")
	f.form = container.NewVBox()
	f.saveBtn = widget.NewButton(f.localization.GetText(KeySave), f.save)
	f.saveBtn.Importance = widget.HighImportance
	f.saveBtn.Disable()

	tokenHelp := widget.NewCard(settings.TokenHelpTitle, settings.TokenHelpBody,
		container.NewHBox(widget.NewButton(IconCopy+" "+f.localization.GetText(KeyCopyScript), f.copyScript)))

	f.content = container.NewBorder(
		f.status,
		container.NewHBox(f.saveBtn),
		nil, nil,
		container.NewVScroll(container.NewVBox(f.clientCard(), tokenHelp, f.form)),
	)
}

// clientCard edits the local preferences
func (f *SettingsForm) clientCard() fyne.CanvasObject {
	f.serverEntry = widget.NewEntry()
	f.serverEntry.SetText(f.prefs.GetServerURL())

	codecs := make([]string, 0, len(config.CodecOptions()))
	for _, c := range config.CodecOptions() {
		codecs = append(codecs, string(c))
	}
	f.codecSelect = widget.NewSelect(codecs, nil)
	f.codecSelect.SetSelected(string(f.prefs.GetCodec()))

	languages := f.prefs.GetLanguageOptions()
	codes := []string{"system", "en", "ru", "pt"}
	labels := make([]string, 0, len(codes))
	for _, code := range codes {
		labels = append(labels, languages[code])
	}
	f.languageSelect = widget.NewSelect(labels, nil)
	f.languageSelect.SetSelected(languages[f.prefs.GetLanguage()])

	f.tipsCheck = widget.NewCheck(f.localization.GetText(KeyShowTips), nil)
	f.tipsCheck.SetChecked(f.prefs.GetShowTips())

	form := widget.NewForm(
		widget.NewFormItem(f.localization.GetText(KeyServerURL), f.serverEntry),
		widget.NewFormItem(f.localization.GetText(KeyDefaultCodec), f.codecSelect),
		widget.NewFormItem(f.localization.GetText(KeyLanguage), f.languageSelect),
		widget.NewFormItem("", f.tipsCheck),
	)
	return widget.NewCard(f.localization.GetText(KeyClientSettings), "", form)
}

// Content returns the tab content
func (f *SettingsForm) Content() fyne.CanvasObject {
	return f.content
}

// Load fetches the configuration and storefront list and rebuilds the form
func (f *SettingsForm) Load() {
	f.status.SetText("Loading...")
	go func() {
		values, err := f.backend.Settings(f.ctx)
		if err != nil {
			log.Printf("Failed to load settings: %v", err)
			fyne.Do(func() { f.status.SetText(settings.LoadFailedPrefix + err.Error()) })
			return
		}
		storefronts, err := f.backend.Storefronts(f.ctx)
		if err != nil {
			// Without the list region and language stay free text
			log.Printf("Storefront list unavailable: %v", err)
			storefronts = nil
		}
		fyne.Do(func() { f.build(values, storefronts) })
	}()
}

// build renders the backend form. Must run on the UI goroutine.
func (f *SettingsForm) build(values map[string]any, storefronts model.StorefrontList) {
	sections := settings.WithUnknown(settings.Schema(storefronts), values)
	f.fields = settings.Fields(sections)
	f.getters = make(map[string]func() string, len(f.fields))

	var languageSelect *widget.Select
	storefrontOpts := settings.StorefrontOptions(storefronts)
	currentStorefront := settings.FormatValue(values[settings.KeyStorefront])

	cards := make([]fyne.CanvasObject, 0, len(sections))
	for _, section := range sections {
		form := widget.NewForm()
		for _, field := range section.Fields {
			current := settings.FormatValue(values[field.Key])
			var obj fyne.CanvasObject

			switch field.Kind {
			case settings.KindBoolean:
				sel := widget.NewSelect([]string{"true", "false"}, nil)
				sel.SetSelected(current)
				f.getters[field.Key] = func() string { return sel.Selected }
				obj = sel
			case settings.KindSelect:
				sel := widget.NewSelect(withCurrent(field.Options, current), nil)
				sel.SetSelected(current)
				f.getters[field.Key] = func() string { return sel.Selected }
				obj = sel
			case settings.KindStorefront:
				labels := make([]string, 0, len(storefrontOpts))
				for _, o := range storefrontOpts {
					labels = append(labels, o.Label)
				}
				sel := widget.NewSelect(labels, nil)
				sel.SetSelected(settings.LabelFor(storefrontOpts, current))
				f.getters[field.Key] = func() string {
					if v := settings.ValueFor(storefrontOpts, sel.Selected); v != "" {
						return v
					}
					return current
				}
				sel.OnChanged = func(label string) {
					if languageSelect == nil {
						return
					}
					opts, selected := settings.LanguageOptions(storefronts, settings.ValueFor(storefrontOpts, label), languageSelect.Selected)
					languageSelect.SetOptions(opts)
					languageSelect.SetSelected(selected)
				}
				obj = sel
			case settings.KindLanguage:
				opts, selected := settings.LanguageOptions(storefronts, currentStorefront, current)
				sel := widget.NewSelect(opts, nil)
				sel.SetSelected(selected)
				languageSelect = sel
				f.getters[field.Key] = func() string { return sel.Selected }
				obj = sel
			default:
				entry := widget.NewEntry()
				if strings.Contains(field.Help, "\n") || len(current) > 80 {
					entry.MultiLine = true
					entry.Wrapping = fyne.TextWrapBreak
				}
				entry.SetText(current)
				f.getters[field.Key] = func() string { return entry.Text }
				obj = entry
			}

			item := widget.NewFormItem(field.Label, obj)
			item.HintText = field.Help
			form.AppendItem(item)
		}
		cards = append(cards, widget.NewCard(section.Title, "", form))
	}

	f.form.Objects = cards
	f.form.Refresh()
	f.status.SetText("")
	f.saveBtn.Enable()
}

// withCurrent keeps a value the backend sent even when the schema does not list it
func withCurrent(options []string, current string) []string {
	if current == "" {
		return options
	}
	for _, o := range options {
		if o == current {
			return options
		}
	}
	return append(append([]string(nil), options...), current)
}

// Values returns the raw text of every backend field
func (f *SettingsForm) Values() map[string]string {
	raw := make(map[string]string, len(f.getters))
	for key, get := range f.getters {
		raw[key] = get()
	}
	return raw
}

func (f *SettingsForm) save() {
	restart := f.saveClient()
	if len(f.fields) == 0 {
		return
	}
	update := settings.Serialize(f.fields, f.Values())
	f.saveBtn.Disable()
	go func() {
		err := f.backend.SaveSettings(f.ctx, update)
		fyne.Do(func() {
			f.saveBtn.Enable()
			if err != nil {
				log.Printf("Failed to save settings: %v", err)
				f.modals.ShowMessage(settings.ErrorTitle, settings.SaveFailedBody)
				return
			}
			body := settings.SavedBody
			if restart {
				body += "\n" + f.localization.GetText(KeyRestartRequired)
			}
			f.modals.ShowMessage(settings.SavedTitle, body)
		})
	}()
}

// saveClient stores the local preferences and reports whether the server changed
func (f *SettingsForm) saveClient() bool {
	before := f.prefs.GetServerURL()
	f.prefs.SetServerURL(f.serverEntry.Text)
	if f.codecSelect.Selected != "" {
		f.prefs.SetCodec(config.Codec(f.codecSelect.Selected))
		if f.OnCodecChanged != nil {
			f.OnCodecChanged(string(f.prefs.GetCodec()))
		}
	}
	for code, label := range f.prefs.GetLanguageOptions() {
		if label == f.languageSelect.Selected {
			f.prefs.SetLanguage(code)
		}
	}
	f.prefs.SetShowTips(f.tipsCheck.Checked)
	return f.prefs.GetServerURL() != before
}

// copyScript puts the token helper on the clipboard, or opens the manual
// copy dialog when no clipboard is available
func (f *SettingsForm) copyScript() {
	clip := fyne.CurrentApp().Clipboard()
	if clip == nil {
		f.showScript()
		return
	}
	clip.SetContent(settings.TokenScript)
	f.modals.ShowMessage(settings.ScriptCopied, settings.ScriptSteps)
}

// showScript shows the script selected in a read-only box with a save option
func (f *SettingsForm) showScript() {
	box := widget.NewMultiLineEntry()
	box.SetText(settings.TokenScript)
	box.Wrapping = fyne.TextWrapBreak
	box.TypedShortcut(&fyne.ShortcutSelectAll{})

	saveBtn := widget.NewButton(f.localization.GetText(KeySaveScript), func() {
		if _, err := f.saveScript(); err != nil {
			log.Printf("Saving token script failed: %v", err)
			f.modals.ShowMessage(settings.ErrorTitle, settings.ScriptCopyFailed)
		}
	})
	content := container.NewBorder(widget.NewLabel(settings.ScriptSteps), saveBtn, nil, nil, box)
	d := dialog.NewCustom(settings.TokenHelpTitle, f.localization.GetText(KeyCancel), content, f.modals.Window())
	d.Resize(fyne.NewSize(ScriptDialogWidth, ScriptDialogHeight))
	f.modals.Open(ModalScript, d)
}

// saveScript writes the script to the export directory and reveals it
func (f *SettingsForm) saveScript() (string, error) {
	dir := f.prefs.GetExportDirectory()
	if dir == "" {
		return "", errors.New("no export directory")
	}
	path, err := platform.SaveTextFile(dir, TokenScriptFile, settings.TokenScript)
	if err != nil {
		return "", err
	}
	log.Printf("Token script saved to %s", path)
	if err := revealFile(path); err != nil {
		log.Printf("Could not reveal %s: %v", path, err)
	}
	return path, nil
}
