package state

import "github.com/dmitrijs2005/salesdesk/internal/client/models"

// Event is anything that can change the State.
type Event interface {
	isEvent()
}

type (
	LoginSubmitted struct{ Username string }
	LoginSucceeded struct{ Username string }
	LoginFailed    struct{ Message string }

	SignupOpened    struct{}
	LoginOpened     struct{}
	SignupSubmitted struct{ Draft models.SignupDraft }
	SignupSucceeded struct{ Email string }
	SignupFailed    struct{ Message string }

	FileSelected    struct{ Path, Name string }
	FileRejected    struct{ Message string }
	UploadSubmitted struct{}

	UploadSucceeded struct {
		Job     int
		Dataset *models.CleanedDataset
	}

	UploadFailed struct {
		Job     int
		Message string
	}

	ChatSubmitted struct{ Question string }
	ChatAnswered  struct{ Content string }
	ChatFailed    struct{ Message string }

	LoggedOut struct{}
)

func (LoginSubmitted) isEvent()  {}
func (LoginSucceeded) isEvent()  {}
func (LoginFailed) isEvent()     {}
func (SignupOpened) isEvent()    {}
func (LoginOpened) isEvent()     {}
func (SignupSubmitted) isEvent() {}
func (SignupSucceeded) isEvent() {}
func (SignupFailed) isEvent()    {}
func (FileSelected) isEvent()    {}
func (FileRejected) isEvent()    {}
func (UploadSubmitted) isEvent() {}
func (UploadSucceeded) isEvent() {}
func (UploadFailed) isEvent()    {}
func (ChatSubmitted) isEvent()   {}
func (ChatAnswered) isEvent()    {}
func (ChatFailed) isEvent()      {}
func (LoggedOut) isEvent()       {}
