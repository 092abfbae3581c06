package state

import (
	"strings"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

// Reduce returns the state that follows s after ev. Unknown events and
// events that make no sense in the current state leave s unchanged.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case LoginSubmitted:
		if s.View != ViewLogin || s.LoggingIn {
			return s
		}
		s.LoginUsername = e.Username
		s.LoginError = ""
		s.LoginNotice = ""
		s.LoggingIn = true

	case LoginSucceeded:
		s.LoggingIn = false
		s.LoginError = ""
		s.LoginNotice = ""
		s.Session = models.Session{LoggedIn: true, Username: e.Username}
		s.View = ViewDashboard

	case LoginFailed:
		s.LoggingIn = false
		s.LoginError = e.Message

	case SignupOpened:
		if s.Session.LoggedIn {
			return s
		}
		s.View = ViewSignup
		s.SignupError = ""

	case LoginOpened:
		if s.Session.LoggedIn {
			return s
		}
		s.View = ViewLogin
		s.LoginError = ""

	case SignupSubmitted:
		if s.View != ViewSignup || s.SigningUp {
			return s
		}
		s.Signup = e.Draft
		if !e.Draft.Matches() {
			s.SignupError = MsgPasswordMismatch
			return s
		}
		s.SignupError = ""
		s.SigningUp = true

	case SignupSucceeded:
		s.SigningUp = false
		s.SignupError = ""
		s.Signup = models.SignupDraft{}
		s.View = ViewLogin
		s.LoginUsername = e.Email
		s.LoginError = ""
		s.LoginNotice = MsgSignupSucceeded

	case SignupFailed:
		s.SigningUp = false
		s.SignupError = e.Message

	case FileSelected:
		if s.Upload.Uploading {
			return s
		}
		s.Upload = models.UploadJob{
			Path:    e.Path,
			Name:    e.Name,
			Message: "Selected file: " + e.Name,
		}

	case FileRejected:
		if s.Upload.Uploading {
			return s
		}
		// a selected file survives a bad drop
		s.Upload.Message = e.Message

	case UploadSubmitted:
		if !s.CanUpload() {
			return s
		}
		s.UploadSeq++
		s.Upload.Job = s.UploadSeq
		s.Upload.Uploading = true
		s.Upload.Message = MsgUploading
		s.Dataset = nil

	case UploadSucceeded:
		if !s.Upload.Uploading || e.Job != s.Upload.Job {
			return s
		}
		s.Upload.Uploading = false
		s.Upload.Message = MsgUploadSucceeded
		s.Dataset = e.Dataset

	case UploadFailed:
		if !s.Upload.Uploading || e.Job != s.Upload.Job {
			return s
		}
		s.Upload.Uploading = false
		s.Upload.Message = orDefault(e.Message, MsgUploadFailed)

	case ChatSubmitted:
		if !s.CanAsk(e.Question) {
			return s
		}
		s.Transcript = s.Transcript.Append(models.ChatTurn{Role: models.RoleUser, Content: e.Question})
		s.AIPending = true

	case ChatAnswered:
		if !s.AIPending {
			return s
		}
		s.Transcript = s.Transcript.Append(models.ChatTurn{Role: models.RoleAssistant, Content: e.Content})
		s.AIPending = false

	case ChatFailed:
		if !s.AIPending {
			return s
		}
		s.Transcript = s.Transcript.Append(models.ChatTurn{Role: models.RoleAssistant, Content: orDefault(e.Message, MsgAIFailed)})
		s.AIPending = false

	case LoggedOut:
		next := New(s.Transcript.Limit())
		next.UploadSeq = s.UploadSeq
		return next
	}

	return s
}

func orDefault(msg, def string) string {
	if strings.TrimSpace(msg) == "" {
		return def
	}
	return msg
}
