package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/amdl-client/internal/auth"
	"github.com/ytget/amdl-client/internal/model"
)

// LoginDialog shows the credential form or the 2FA form depending on the
// backend's login status.
type LoginDialog struct {
	ctx          context.Context
	localization *Localization
	poller       *auth.Poller
	modals       *Modals

	userEntry *widget.Entry
	passEntry *widget.Entry
	codeEntry *widget.Entry
	loginBtn  *widget.Button
	verifyBtn *widget.Button
	loginForm *fyne.Container
	tfaForm   *fyne.Container
	content   *fyne.Container
	dlg       dialog.Dialog

	form      auth.Form
	dismissed model.LoginStatus // status the user closed the dialog on
	last      model.LoginStatus
}

// NewLoginDialog creates the dialog; it is shown by Apply
func NewLoginDialog(ctx context.Context, localization *Localization, poller *auth.Poller, modals *Modals) *LoginDialog {
	d := &LoginDialog{
		ctx:          ctx,
		localization: localization,
		poller:       poller,
		modals:       modals,
		form:         auth.FormLogin,
	}
	d.createUI()
	return d
}

func (d *LoginDialog) createUI() {
	d.userEntry = widget.NewEntry()
	d.userEntry.SetPlaceHolder(d.localization.GetText(KeyUsername))
	d.passEntry = widget.NewPasswordEntry()
	d.passEntry.SetPlaceHolder(d.localization.GetText(KeyPassword))
	d.passEntry.OnSubmitted = func(string) { d.submitLogin() }
	d.loginBtn = widget.NewButton(d.localization.GetText(KeyLogin), d.submitLogin)
	d.loginBtn.Importance = widget.HighImportance
	d.loginForm = container.NewVBox(d.userEntry, d.passEntry, d.loginBtn)

	d.codeEntry = widget.NewEntry()
	d.codeEntry.SetPlaceHolder("000000")
	d.codeEntry.OnSubmitted = func(string) { d.submit2FA() }
	d.verifyBtn = widget.NewButton(d.localization.GetText(KeyVerify), d.submit2FA)
	d.verifyBtn.Importance = widget.HighImportance
	d.tfaForm = container.NewVBox(widget.NewLabel(d.localization.GetText(KeyTwoFactorHint)), d.codeEntry, d.verifyBtn)
	d.tfaForm.Hide()

	d.content = container.NewVBox(d.loginForm, d.tfaForm)
}

// Form returns the visible form
func (d *LoginDialog) Form() auth.Form {
	return d.form
}

// Apply updates the dialog for a polled status. Must run on the UI goroutine.
func (d *LoginDialog) Apply(status model.LoginStatus, vs auth.ViewState) {
	changed := status != d.last
	d.last = status

	switch vs.Form {
	case auth.FormLogin:
		d.showForm(auth.FormLogin)
	case auth.FormTwoFactor:
		d.showForm(auth.FormTwoFactor)
	}

	if vs.CloseDialog {
		d.modals.Close(ModalLogin)
	}
	if vs.OpenDialog && !d.modals.IsOpen(ModalLogin) && (changed || d.dismissed != status) {
		d.open()
	}
	if vs.Shake && changed {
		Shake(d.content)
	}
}

func (d *LoginDialog) showForm(form auth.Form) {
	d.form = form
	if form == auth.FormTwoFactor {
		d.loginForm.Hide()
		d.tfaForm.Show()
		return
	}
	d.tfaForm.Hide()
	d.loginForm.Show()
}

func (d *LoginDialog) open() {
	d.dismissed = ""
	d.dlg = dialog.NewCustom(d.localization.GetText(KeyLogin), d.localization.GetText(KeyCancel), d.content, d.modals.Window())
	d.dlg.Resize(fyne.NewSize(LoginDialogWidth, d.content.MinSize().Height))
	d.modals.Open(ModalLogin, d.dlg)
	d.dlg.SetOnClosed(func() {
		if d.last != model.LoginSuccess {
			d.dismissed = d.last
		}
	})
}

func (d *LoginDialog) submitLogin() {
	user, pass := d.userEntry.Text, d.passEntry.Text
	d.loginBtn.Disable()
	go func() {
		err := d.poller.Login(d.ctx, user, pass)
		fyne.Do(func() {
			d.loginBtn.Enable()
			if err != nil {
				Shake(d.content)
				return
			}
			d.passEntry.SetText("")
		})
	}()
}

func (d *LoginDialog) submit2FA() {
	code := d.codeEntry.Text
	d.verifyBtn.Disable()
	go func() {
		err := d.poller.Submit2FA(d.ctx, code)
		fyne.Do(func() {
			d.verifyBtn.Enable()
			if err != nil {
				Shake(d.content)
				return
			}
			d.codeEntry.SetText("")
		})
	}()
}

// Show opens the dialog on the current form
func (d *LoginDialog) Show() {
	if !d.modals.IsOpen(ModalLogin) {
		d.open()
	}
}
