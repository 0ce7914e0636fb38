package ui

import (
	"context"
	"testing"
	"time"

	"github.com/ytget/amdl-client/internal/auth"
	"github.com/ytget/amdl-client/internal/model"
)

func newLoginDialog(t *testing.T) (*testEnv, *auth.Poller, *LoginDialog) {
	t.Helper()
	env := newTestEnv(t)
	poller := auth.NewPoller(env.client, time.Hour)
	t.Cleanup(poller.Stop)
	return env, poller, NewLoginDialog(context.Background(), env.loc, poller, env.modals)
}

func apply(d *LoginDialog, status model.LoginStatus) {
	d.Apply(status, auth.Resolve(status))
}

func TestLoginDialogForms(t *testing.T) {
	env, _, d := newLoginDialog(t)

	apply(d, model.LoginIdle)
	if d.Form() != auth.FormLogin || !env.modals.IsOpen(ModalLogin) {
		t.Fatalf("Idle should open the login form, got form %v open=%v", d.Form(), env.modals.IsOpen(ModalLogin))
	}

	apply(d, model.LoginAuthenticating)
	if d.Form() != auth.FormLogin {
		t.Error("Authenticating should keep the current form")
	}

	apply(d, model.LoginWaiting2FA)
	if d.Form() != auth.FormTwoFactor {
		t.Error("Expected the 2FA form")
	}
	if !d.tfaForm.Visible() || d.loginForm.Visible() {
		t.Error("Only the 2FA form should be visible")
	}

	apply(d, model.LoginSuccess)
	if env.modals.IsOpen(ModalLogin) {
		t.Error("Success should close the dialog")
	}
}

func TestLoginDialogDismissed(t *testing.T) {
	env, _, d := newLoginDialog(t)

	apply(d, model.LoginFailed)
	if !env.modals.IsOpen(ModalLogin) {
		t.Fatal("Failure should open the dialog")
	}

	env.modals.Close(ModalLogin)
	apply(d, model.LoginFailed)
	if env.modals.IsOpen(ModalLogin) {
		t.Error("A dismissed dialog should stay closed for the same status")
	}

	apply(d, model.LoginIdle)
	if !env.modals.IsOpen(ModalLogin) {
		t.Error("A new status should open the dialog again")
	}
}

func TestLoginDialogShow(t *testing.T) {
	env, _, d := newLoginDialog(t)

	d.Show()
	if !env.modals.IsOpen(ModalLogin) {
		t.Error("Show should open the dialog")
	}
	d.Show()
	if !env.modals.IsOpen(ModalLogin) {
		t.Error("Showing twice should keep one dialog open")
	}
}

func TestLoginSubmit(t *testing.T) {
	env, _, d := newLoginDialog(t)
	apply(d, model.LoginIdle)

	d.userEntry.SetText("user@example.com")
	d.passEntry.SetText("secret")
	d.submitLogin()

	waitFor(t, "login request", func() bool { return len(env.backend.Requests("/api/login")) == 1 })
	waitFor(t, "status poll after login", func() bool { return len(env.backend.Requests("/api/login/status")) > 0 })
}

func TestLoginSubmitEmpty(t *testing.T) {
	env, _, d := newLoginDialog(t)

	d.submitLogin()

	waitFor(t, "login button enabled", func() bool { return !d.loginBtn.Disabled() })
	if len(env.backend.Requests("/api/login")) != 0 {
		t.Error("Blank credentials should not be sent")
	}
}

func TestSubmit2FA(t *testing.T) {
	env, _, d := newLoginDialog(t)
	env.backend.SetLoginStatus(model.LoginWaiting2FA)
	apply(d, model.LoginWaiting2FA)

	d.codeEntry.SetText("123456")
	d.submit2FA()

	waitFor(t, "2FA request", func() bool { return len(env.backend.Requests("/api/2fa")) == 1 })
	waitFor(t, "code cleared", func() bool { return d.codeEntry.Text == "" })
}
