package services

import (
	"context"
	"io"

	"github.com/dmitrijs2005/salesdesk/internal/client/client"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	LoginErr  error
	SignupErr error
	CloseErr  error

	UploadRet *models.CleanedDataset
	UploadErr error

	AskRet models.Answer
	AskErr error

	authenticated bool
	clearCalls    int

	LastLoginUser     string
	LastLoginPassword []byte
	LastSignup        client.SignupRequest
	LastUploadName    string
	LastUploadBody    []byte
	LastQuestion      string
}

func (f *fakeClient) Login(ctx context.Context, username string, password []byte) error {
	f.LastLoginUser = username
	f.LastLoginPassword = append([]byte(nil), password...)
	if f.LoginErr != nil {
		return f.LoginErr
	}
	f.authenticated = true
	return nil
}

func (f *fakeClient) Signup(ctx context.Context, req client.SignupRequest) error {
	f.LastSignup = req
	return f.SignupErr
}

func (f *fakeClient) UploadSalesData(ctx context.Context, filename string, r io.Reader) (*models.CleanedDataset, error) {
	f.LastUploadName = filename
	f.LastUploadBody, _ = io.ReadAll(r)
	return f.UploadRet, f.UploadErr
}

func (f *fakeClient) AskAI(ctx context.Context, question string) (models.Answer, error) {
	f.LastQuestion = question
	return f.AskRet, f.AskErr
}

func (f *fakeClient) Authenticated() bool { return f.authenticated }

func (f *fakeClient) ClearCredentials() {
	f.clearCalls++
	f.authenticated = false
}

func (f *fakeClient) Close() error { return f.CloseErr }
