package auth

import (
	"strings"

	"github.com/ytget/amdl-client/internal/model"
)

// Form is the form visible in the login dialog
type Form int

const (
	FormKeep Form = iota // leave whatever is shown
	FormLogin
	FormTwoFactor
)

// Indicator is the colour class of the status dot
type Indicator string

const (
	IndicatorIdle    Indicator = "idle"
	IndicatorWaiting Indicator = "waiting"
	IndicatorSuccess Indicator = "success"
	IndicatorFailed  Indicator = "failed"
	IndicatorNone    Indicator = ""
)

// LoggedInText replaces the status text after a successful login
const LoggedInText = "LOGGED IN"

// ViewState is what the UI applies for one login status
type ViewState struct {
	Indicator   Indicator
	StatusText  string
	Form        Form
	OpenDialog  bool
	CloseDialog bool
	Shake       bool
	StopPolling bool
}

// Resolve maps a login status to its view state
func Resolve(status model.LoginStatus) ViewState {
	vs := ViewState{StatusText: strings.ToUpper(string(status))}
	switch status {
	case model.LoginIdle:
		vs.Indicator = IndicatorIdle
		vs.Form = FormLogin
		vs.OpenDialog = true
	case model.LoginAuthenticating:
		vs.Indicator = IndicatorWaiting
	case model.LoginWaiting2FA:
		vs.Indicator = IndicatorWaiting
		vs.Form = FormTwoFactor
		vs.OpenDialog = true
	case model.LoginSuccess:
		vs.Indicator = IndicatorSuccess
		vs.StatusText = LoggedInText
		vs.CloseDialog = true
		vs.StopPolling = true
	case model.LoginFailed:
		vs.Indicator = IndicatorFailed
		vs.Form = FormLogin
		vs.OpenDialog = true
		vs.Shake = true
	default:
		vs.Indicator = IndicatorNone
	}
	return vs
}
