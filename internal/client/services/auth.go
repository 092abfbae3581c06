// Package services contains application services for the salesdesk client.
// This file defines the authentication service: login, signup and logout.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/salesdesk/internal/client/client"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/common"
)

// AuthService defines authentication operations for the front ends.
//
// Contract:
//   - Login: authenticate against the server; the client keeps the credential.
//   - Register: create a new account; never logs in.
//   - Logout: forget the stored credential without contacting the server.
//   - Close: release underlying client resources.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, draft models.SignupDraft) error
	Logout(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(c client.Client) AuthService {
	return &authService{client: c}
}

// Login authenticates username. The password buffer is wiped before returning.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	defer common.WipeByteArray(password)

	if err := a.client.Login(ctx, username, password); err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	return nil
}

// Register checks the password confirmation locally and submits the draft.
func (a *authService) Register(ctx context.Context, draft models.SignupDraft) error {
	if !draft.Matches() {
		return common.ErrPasswordMismatch
	}

	req := client.SignupRequest{
		Email:    draft.Email,
		Password: draft.Password,
		FullName: draft.FullName,
	}
	if err := a.client.Signup(ctx, req); err != nil {
		return fmt.Errorf("signup error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.ClearCredentials()
	return nil
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
