package cli

import (
	"context"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/client/state"
	"github.com/dmitrijs2005/salesdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. After a signup the
// username prompt defaults to the registered email.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		a.printf("Already logged in as %s\n", a.state.Session.Username)
		return nil
	}
	a.apply(state.LoginOpened{})

	prompt := "Enter username"
	if a.state.LoginUsername != "" {
		prompt += " [" + a.state.LoginUsername + "]"
	}
	username, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if username == "" {
		username = a.state.LoginUsername
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.apply(state.LoginSubmitted{Username: username})
	a.apply(a.ctrl.Authenticate(ctx, username, password))

	if a.state.LoginError != "" {
		a.println(a.state.LoginError)
		return nil
	}
	a.printf("Logged in as %s\n", a.state.Session.Username)
	return nil
}

// Signup prompts for the signup form and registers the account. On success
// the user is sent back to login with the email pre-filled.
func (a *App) Signup(ctx context.Context) error {
	if a.isLoggedIn() {
		a.println("Log out before creating another account.")
		return nil
	}
	a.apply(state.SignupOpened{})
	defer a.apply(state.LoginOpened{})

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	draft := models.SignupDraft{
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
		FullName:        fullName,
	}

	a.apply(state.SignupSubmitted{Draft: draft})
	if a.state.SigningUp {
		a.apply(a.ctrl.Register(ctx, draft))
	}

	if a.state.SignupError != "" {
		a.println(a.state.SignupError)
		return nil
	}
	a.println(a.state.LoginNotice)
	return nil
}

// Logout forgets the session and every piece of per-session state.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Not logged in.")
		return nil
	}
	a.apply(a.ctrl.Logout(ctx))
	a.println("Logged out.")
	return nil
}
