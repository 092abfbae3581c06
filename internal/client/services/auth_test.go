package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/salesdesk/internal/client/client"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login_Success_WipesPassword(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc)

	pw := []byte("s3cret")
	require.NoError(t, svc.Login(context.Background(), "alice", pw))

	assert.Equal(t, "alice", fc.LastLoginUser)
	assert.Equal(t, []byte("s3cret"), fc.LastLoginPassword)
	assert.Equal(t, make([]byte, len(pw)), pw)
	assert.True(t, fc.Authenticated())
}

func TestAuthService_Login_Error(t *testing.T) {
	fc := &fakeClient{LoginErr: client.ErrUnauthorized}
	svc := NewAuthService(fc)

	pw := []byte("bad")
	err := svc.Login(context.Background(), "alice", pw)
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Contains(t, err.Error(), "login error")
	assert.Equal(t, []byte{0, 0, 0}, pw)
}

func TestAuthService_Register(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc)

	draft := models.SignupDraft{Email: "a@b.c", Password: "pw", ConfirmPassword: "pw", FullName: "Alice"}
	require.NoError(t, svc.Register(context.Background(), draft))

	assert.Equal(t, client.SignupRequest{Email: "a@b.c", Password: "pw", FullName: "Alice"}, fc.LastSignup)
	assert.False(t, fc.Authenticated())
}

func TestAuthService_Register_Mismatch_NoRequest(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc)

	draft := models.SignupDraft{Email: "a@b.c", Password: "pw", ConfirmPassword: "other"}
	err := svc.Register(context.Background(), draft)
	require.ErrorIs(t, err, common.ErrPasswordMismatch)
	assert.Equal(t, client.SignupRequest{}, fc.LastSignup)
}

func TestAuthService_Register_ServerError(t *testing.T) {
	fc := &fakeClient{SignupErr: &client.APIError{StatusCode: 400, Detail: "Email already registered"}}
	svc := NewAuthService(fc)

	err := svc.Register(context.Background(), models.SignupDraft{Email: "a@b.c", Password: "x", ConfirmPassword: "x"})
	require.Error(t, err)
	assert.Equal(t, "Email already registered", client.Detail(err))
}

func TestAuthService_Logout_ClearsCredentials(t *testing.T) {
	fc := &fakeClient{authenticated: true}
	svc := NewAuthService(fc)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Equal(t, 1, fc.clearCalls)
	assert.False(t, fc.Authenticated())
}

func TestAuthService_Close(t *testing.T) {
	wantErr := errors.New("close failed")
	svc := NewAuthService(&fakeClient{CloseErr: wantErr})

	require.ErrorIs(t, svc.Close(context.Background()), wantErr)
}
