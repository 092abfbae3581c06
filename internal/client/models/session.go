// Package models holds the client-side view of the sales data service:
// session, forms, upload job, cleaned dataset and chat transcript.
package models

// Session is the logged-in identity. No password is kept here:
// credentials live inside the API client and are wiped on logout.
type Session struct {
	LoggedIn bool
	Username string
}

// SignupDraft is the signup form as typed by the user.
type SignupDraft struct {
	Email           string
	Password        string
	ConfirmPassword string
	FullName        string
}

// Matches reports whether the password was confirmed correctly.
func (d SignupDraft) Matches() bool {
	return d.Password == d.ConfirmPassword
}

// UploadJob is the single upload the dashboard tracks.
type UploadJob struct {
	Path      string
	Name      string
	// Job numbers the upload in flight; replies for another number are stale.
	Job       int
	Uploading bool
	Message   string
}

// HasFile reports whether a file has been selected.
func (j UploadJob) HasFile() bool {
	return j.Path != ""
}
