// Package controller maps user intents to remote calls and turns their
// outcomes into state events. It never touches the State itself; front ends
// feed the returned events to state.Reduce.
package controller

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/salesdesk/internal/client/client"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/services"
	"github.com/dmitrijs2005/salesdesk/internal/client/state"
	"github.com/dmitrijs2005/salesdesk/internal/common"
	"github.com/dmitrijs2005/salesdesk/internal/filex"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

// User-facing failure messages.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgLoginFailed        = "Login failed."
	MsgSignupFailed       = "Signup failed"
	MsgNoFile             = "No file selected."
	MsgUnreadableFile     = "Cannot read file."
)

type Controller struct {
	auth      services.AuthService
	sales     services.SalesService
	assistant services.AssistantService
	log       logging.Logger
}

func New(auth services.AuthService, sales services.SalesService, assistant services.AssistantService, log logging.Logger) *Controller {
	if log == nil {
		log = logging.Nop()
	}
	return &Controller{auth: auth, sales: sales, assistant: assistant, log: log}
}

// NewFromClient wires the default services around c.
func NewFromClient(c client.Client, log logging.Logger) *Controller {
	return New(
		services.NewAuthService(c),
		services.NewSalesService(c),
		services.NewAssistantService(c),
		log,
	)
}

// Authenticate logs in. A rejection by the server and a failure to reach it
// produce different messages; the password buffer is wiped.
func (c *Controller) Authenticate(ctx context.Context, username string, password []byte) state.Event {
	err := c.auth.Login(ctx, username, password)
	if err == nil {
		c.log.Info(ctx, "logged in", "username", username)
		return state.LoginSucceeded{Username: username}
	}

	c.log.Warn(ctx, "login failed", "username", username, "error", err)

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return state.LoginFailed{Message: MsgInvalidCredentials}
	}
	return state.LoginFailed{Message: MsgLoginFailed}
}

// Register submits the signup draft. Mismatched passwords fail before any
// request is made.
func (c *Controller) Register(ctx context.Context, draft models.SignupDraft) state.Event {
	err := c.auth.Register(ctx, draft)
	switch {
	case err == nil:
		c.log.Info(ctx, "signed up", "email", draft.Email)
		return state.SignupSucceeded{Email: draft.Email}
	case errors.Is(err, common.ErrPasswordMismatch):
		return state.SignupFailed{Message: state.MsgPasswordMismatch}
	}

	c.log.Warn(ctx, "signup failed", "email", draft.Email, "error", err)

	if detail := client.Detail(err); detail != "" {
		return state.SignupFailed{Message: detail}
	}
	return state.SignupFailed{Message: MsgSignupFailed}
}

// SelectFile accepts a typed or dropped path and checks that it names a
// readable regular file.
func (c *Controller) SelectFile(raw string) state.Event {
	path := filex.DroppedPath(raw)
	if path == "" {
		return state.FileRejected{Message: MsgNoFile}
	}

	info, err := filex.Inspect(path)
	if err != nil {
		c.log.Warn(context.Background(), "file rejected", "path", path, "error", err)
		return state.FileRejected{Message: MsgUnreadableFile}
	}
	return state.FileSelected{Path: info.Path, Name: info.Name}
}

// UploadAndClean uploads the file of job and returns the cleaned dataset.
// The resulting event carries the job number.
func (c *Controller) UploadAndClean(ctx context.Context, job models.UploadJob) state.Event {
	ds, err := c.sales.Upload(ctx, job.Path)
	if err != nil {
		c.log.Error(ctx, "upload failed", "path", job.Path, "job", job.Job, "error", err)
		return state.UploadFailed{Job: job.Job, Message: state.MsgUploadFailed}
	}

	c.log.Info(ctx, "upload processed", "path", job.Path, "job", job.Job, "rows", ds.Len(), "errors", len(ds.Errors))
	return state.UploadSucceeded{Job: job.Job, Dataset: ds}
}

// AskAI sends question to the assistant.
func (c *Controller) AskAI(ctx context.Context, question string) state.Event {
	content, err := c.assistant.Ask(ctx, question)
	if err != nil {
		c.log.Error(ctx, "ai query failed", "error", err)
		return state.ChatFailed{Message: state.MsgAIFailed}
	}
	return state.ChatAnswered{Content: content}
}

// Logout forgets the stored credential. Nothing is sent to the server.
func (c *Controller) Logout(ctx context.Context) state.Event {
	if err := c.auth.Logout(ctx); err != nil {
		c.log.Warn(ctx, "logout", "error", err)
	}
	return state.LoggedOut{}
}

// Close releases the underlying client.
func (c *Controller) Close(ctx context.Context) error {
	return c.auth.Close(ctx)
}
