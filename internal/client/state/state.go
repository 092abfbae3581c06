// Package state holds the client view-state and its transitions.
//
// Every user intent and every remote outcome is an Event; Reduce folds an
// event into a State and returns the next State. Reduce performs no I/O, so
// front ends stay free to run remote calls however they like and feed the
// results back in.
package state

import (
	"strings"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

// View is the screen currently shown. At most one form is visible.
type View int

const (
	ViewLogin View = iota
	ViewSignup
	ViewDashboard
)

func (v View) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewSignup:
		return "signup"
	case ViewDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// Status messages shown to the user.
const (
	MsgPasswordMismatch = "Passwords do not match."
	MsgSignupSucceeded  = "Signup successful! Please log in."
	MsgUploading        = "Uploading and processing..."
	MsgUploadSucceeded  = "Upload and processing complete!"
	MsgUploadFailed     = "Error uploading or processing file."
	MsgAIFailed         = "Error contacting AI."
)

// State is the complete client view-state.
type State struct {
	View    View
	Session models.Session

	// LoginUsername pre-fills the login form.
	LoginUsername string
	LoginError    string
	LoginNotice   string
	LoggingIn     bool

	Signup      models.SignupDraft
	SignupError string
	SigningUp   bool

	Upload  models.UploadJob
	Dataset *models.CleanedDataset

	// UploadSeq is the last job number handed out. It survives logout.
	UploadSeq int

	Transcript models.Transcript
	AIPending  bool
}

// New returns the initial state: logged out, on the login view, with a
// transcript that retains at most historyLimit turns.
func New(historyLimit int) State {
	return State{
		View:       ViewLogin,
		Transcript: models.NewTranscript(historyLimit),
	}
}

// UploadEnabled reports whether the upload trigger should be active.
func (s State) UploadEnabled() bool {
	return s.Session.LoggedIn && s.Upload.HasFile() && !s.Upload.Uploading
}

// CanUpload reports whether an UploadSubmitted event would start an upload.
func (s State) CanUpload() bool {
	return s.View == ViewDashboard && s.UploadEnabled()
}

// CanAsk reports whether question would be sent to the assistant.
func (s State) CanAsk(question string) bool {
	return s.View == ViewDashboard && !s.AIPending && strings.TrimSpace(question) != ""
}
