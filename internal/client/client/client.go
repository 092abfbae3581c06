package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

// Client is the contract of the remote sales data API.
type Client interface {
	Login(ctx context.Context, username string, password []byte) error
	Signup(ctx context.Context, req SignupRequest) error
	UploadSalesData(ctx context.Context, filename string, r io.Reader) (*models.CleanedDataset, error)
	AskAI(ctx context.Context, question string) (models.Answer, error)
	Authenticated() bool
	ClearCredentials()
	Close() error
}

// SignupRequest is the JSON body of POST /signup/.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}
