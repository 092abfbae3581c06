package state

import (
	"testing"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(s State, evs ...Event) State {
	for _, ev := range evs {
		s = Reduce(s, ev)
	}
	return s
}

func loggedIn(t *testing.T) State {
	t.Helper()
	s := apply(New(0), LoginSubmitted{Username: "alice"}, LoginSucceeded{Username: "alice"})
	require.Equal(t, ViewDashboard, s.View)
	return s
}

func TestNew(t *testing.T) {
	s := New(5)
	assert.Equal(t, ViewLogin, s.View)
	assert.False(t, s.Session.LoggedIn)
	assert.Equal(t, 5, s.Transcript.Limit())
	assert.Equal(t, "login", s.View.String())
}

func TestLogin_Success(t *testing.T) {
	s := Reduce(New(0), LoginSubmitted{Username: "alice"})
	assert.True(t, s.LoggingIn)
	assert.Equal(t, ViewLogin, s.View)

	s = Reduce(s, LoginSucceeded{Username: "alice"})
	assert.Equal(t, ViewDashboard, s.View)
	assert.Equal(t, models.Session{LoggedIn: true, Username: "alice"}, s.Session)
	assert.False(t, s.LoggingIn)
}

func TestLogin_Failure_StaysOnLogin(t *testing.T) {
	s := apply(New(0), LoginSubmitted{Username: "alice"}, LoginFailed{Message: "Invalid credentials."})

	assert.Equal(t, ViewLogin, s.View)
	assert.Equal(t, "Invalid credentials.", s.LoginError)
	assert.False(t, s.LoggingIn)
	assert.False(t, s.Session.LoggedIn)

	// a new attempt clears the previous error
	s = Reduce(s, LoginSubmitted{Username: "alice"})
	assert.Empty(t, s.LoginError)
}

func TestLoginSubmitted_IgnoredWhileInFlight(t *testing.T) {
	s := Reduce(New(0), LoginSubmitted{Username: "alice"})
	next := Reduce(s, LoginSubmitted{Username: "bob"})
	assert.Equal(t, "alice", next.LoginUsername)
}

func TestForms_OnlyOneVisible(t *testing.T) {
	s := Reduce(New(0), SignupOpened{})
	assert.Equal(t, ViewSignup, s.View)

	s = Reduce(s, LoginOpened{})
	assert.Equal(t, ViewLogin, s.View)

	s = apply(loggedIn(t), SignupOpened{})
	assert.Equal(t, ViewDashboard, s.View)
}

func TestSignup_Mismatch(t *testing.T) {
	draft := models.SignupDraft{Email: "a@b.c", Password: "one", ConfirmPassword: "two"}
	s := apply(New(0), SignupOpened{}, SignupSubmitted{Draft: draft})

	assert.Equal(t, MsgPasswordMismatch, s.SignupError)
	assert.False(t, s.SigningUp)
	assert.Equal(t, ViewSignup, s.View)
	assert.Equal(t, draft, s.Signup)
}

func TestSignup_Success_PrefillsLogin(t *testing.T) {
	draft := models.SignupDraft{Email: "a@b.c", Password: "pw", ConfirmPassword: "pw", FullName: "Alice"}
	s := apply(New(0), SignupOpened{}, SignupSubmitted{Draft: draft})
	require.True(t, s.SigningUp)

	s = Reduce(s, SignupSucceeded{Email: "a@b.c"})
	assert.Equal(t, ViewLogin, s.View)
	assert.Equal(t, "a@b.c", s.LoginUsername)
	assert.Equal(t, MsgSignupSucceeded, s.LoginNotice)
	assert.Equal(t, models.SignupDraft{}, s.Signup)
	assert.False(t, s.SigningUp)
}

func TestSignup_Failure(t *testing.T) {
	draft := models.SignupDraft{Email: "a@b.c", Password: "pw", ConfirmPassword: "pw"}
	s := apply(New(0), SignupOpened{}, SignupSubmitted{Draft: draft}, SignupFailed{Message: "Email already registered"})

	assert.Equal(t, ViewSignup, s.View)
	assert.Equal(t, "Email already registered", s.SignupError)
	assert.Equal(t, draft, s.Signup)
	assert.False(t, s.SigningUp)
}

func TestFileSelected_EnablesUpload(t *testing.T) {
	s := loggedIn(t)
	assert.False(t, s.UploadEnabled())

	s = Reduce(s, FileSelected{Path: "/tmp/q1.csv", Name: "q1.csv"})
	assert.Equal(t, "Selected file: q1.csv", s.Upload.Message)
	assert.True(t, s.UploadEnabled())
	assert.True(t, s.CanUpload())
}

func TestUploadSubmitted_NoFileIsNoop(t *testing.T) {
	s := loggedIn(t)
	next := Reduce(s, UploadSubmitted{})

	if diff := cmp.Diff(s, next, cmp.AllowUnexported(models.Transcript{})); diff != "" {
		t.Fatalf("state changed (-want +got):\n%s", diff)
	}
}

func TestUpload_Lifecycle(t *testing.T) {
	ds := &models.CleanedDataset{Records: []models.Record{models.NewRecord("a", 1)}}
	prev := &models.CleanedDataset{}

	s := loggedIn(t)
	s.Dataset = prev
	s = apply(s, FileSelected{Path: "/tmp/q1.csv", Name: "q1.csv"}, UploadSubmitted{})

	assert.True(t, s.Upload.Uploading)
	assert.Equal(t, MsgUploading, s.Upload.Message)
	assert.Nil(t, s.Dataset)
	assert.False(t, s.UploadEnabled())

	// second trigger while in flight is ignored
	assert.Equal(t, s, Reduce(s, UploadSubmitted{}))
	// selecting another file during flight is ignored
	assert.Equal(t, "/tmp/q1.csv", Reduce(s, FileSelected{Path: "/x", Name: "x"}).Upload.Path)

	assert.Equal(t, 1, s.Upload.Job)
	s = Reduce(s, UploadSucceeded{Job: 1, Dataset: ds})
	assert.False(t, s.Upload.Uploading)
	assert.Equal(t, MsgUploadSucceeded, s.Upload.Message)
	assert.Same(t, ds, s.Dataset)
	assert.True(t, s.UploadEnabled())
}

func TestUpload_Failure(t *testing.T) {
	s := apply(loggedIn(t), FileSelected{Path: "/tmp/a.csv", Name: "a.csv"}, UploadSubmitted{}, UploadFailed{Job: 1})

	assert.False(t, s.Upload.Uploading)
	assert.Equal(t, MsgUploadFailed, s.Upload.Message)
	assert.Nil(t, s.Dataset)
}

func TestUpload_StaleReplyIgnored(t *testing.T) {
	stale := &models.CleanedDataset{Errors: []string{"old"}}

	s := apply(loggedIn(t), FileSelected{Path: "/tmp/a.csv", Name: "a.csv"}, UploadSubmitted{})
	require.Equal(t, 1, s.Upload.Job)

	// log out while the first upload is in flight, then start another one
	s = apply(s,
		LoggedOut{},
		LoginSubmitted{Username: "bob"},
		LoginSucceeded{Username: "bob"},
		FileSelected{Path: "/tmp/b.csv", Name: "b.csv"},
		UploadSubmitted{},
	)
	require.Equal(t, 2, s.Upload.Job)

	s = apply(s, UploadSucceeded{Job: 1, Dataset: stale}, UploadFailed{Job: 1})
	assert.True(t, s.Upload.Uploading)
	assert.Equal(t, MsgUploading, s.Upload.Message)
	assert.Nil(t, s.Dataset)

	fresh := &models.CleanedDataset{}
	s = Reduce(s, UploadSucceeded{Job: 2, Dataset: fresh})
	assert.False(t, s.Upload.Uploading)
	assert.Same(t, fresh, s.Dataset)
}

func TestFileRejected(t *testing.T) {
	t.Run("nothing selected", func(t *testing.T) {
		s := Reduce(loggedIn(t), FileRejected{Message: "Cannot read file."})

		assert.Equal(t, "Cannot read file.", s.Upload.Message)
		assert.False(t, s.UploadEnabled())
	})

	t.Run("keeps selected file", func(t *testing.T) {
		s := apply(loggedIn(t), FileSelected{Path: "/tmp/a.csv", Name: "a.csv"}, FileRejected{Message: "Cannot read file."})

		assert.Equal(t, "Cannot read file.", s.Upload.Message)
		assert.Equal(t, "/tmp/a.csv", s.Upload.Path)
		assert.Equal(t, "a.csv", s.Upload.Name)
		assert.True(t, s.UploadEnabled())
	})
}

func TestChat_RoundTrip(t *testing.T) {
	s := Reduce(loggedIn(t), ChatSubmitted{Question: "total?"})

	require.Equal(t, 1, s.Transcript.Len())
	last, _ := s.Transcript.Last()
	assert.Equal(t, models.ChatTurn{Role: models.RoleUser, Content: "total?"}, last)
	assert.True(t, s.AIPending)
	assert.False(t, s.CanAsk("another"))

	// input disabled for the whole round trip
	assert.Equal(t, 1, Reduce(s, ChatSubmitted{Question: "another"}).Transcript.Len())

	s = Reduce(s, ChatAnswered{Content: "SELECT 1"})
	require.Equal(t, 2, s.Transcript.Len())
	last, _ = s.Transcript.Last()
	assert.Equal(t, models.ChatTurn{Role: models.RoleAssistant, Content: "SELECT 1"}, last)
	assert.False(t, s.AIPending)
	assert.True(t, s.CanAsk("another"))

	// late duplicate answers add nothing
	assert.Equal(t, 2, Reduce(s, ChatAnswered{Content: "dup"}).Transcript.Len())
}

func TestChat_Failure(t *testing.T) {
	s := apply(loggedIn(t), ChatSubmitted{Question: "q"}, ChatFailed{})

	require.Equal(t, 2, s.Transcript.Len())
	last, _ := s.Transcript.Last()
	assert.Equal(t, models.ChatTurn{Role: models.RoleAssistant, Content: MsgAIFailed}, last)
	assert.False(t, s.AIPending)
}

func TestChat_BlankIgnored(t *testing.T) {
	s := Reduce(loggedIn(t), ChatSubmitted{Question: "   "})
	assert.Equal(t, 0, s.Transcript.Len())
	assert.False(t, s.AIPending)
}

func TestChat_RetentionLimit(t *testing.T) {
	s := apply(New(3), LoginSucceeded{Username: "a"})
	for _, q := range []string{"q1", "q2"} {
		s = apply(s, ChatSubmitted{Question: q}, ChatAnswered{Content: "a-" + q})
	}

	turns := s.Transcript.Turns()
	require.Len(t, turns, 3)
	assert.Equal(t, "a-q1", turns[0].Content)
	assert.Equal(t, "a-q2", turns[2].Content)
}

func TestLoggedOut_ResetsEverything(t *testing.T) {
	s := apply(New(7),
		LoginSubmitted{Username: "alice"},
		LoginSucceeded{Username: "alice"},
		FileSelected{Path: "/tmp/a.csv", Name: "a.csv"},
		UploadSubmitted{},
		UploadSucceeded{Job: 1, Dataset: &models.CleanedDataset{}},
		ChatSubmitted{Question: "q"},
	)

	s = Reduce(s, LoggedOut{})
	want := New(7)
	want.UploadSeq = 1
	if diff := cmp.Diff(want, s, cmp.AllowUnexported(models.Transcript{})); diff != "" {
		t.Fatalf("state after logout (-want +got):\n%s", diff)
	}
}
