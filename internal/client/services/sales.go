package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/salesdesk/internal/client/client"
	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/common"
)

// SalesService uploads sales files for server-side cleaning.
type SalesService interface {
	Upload(ctx context.Context, path string) (*models.CleanedDataset, error)
}

type salesService struct {
	client client.Client
}

func NewSalesService(c client.Client) SalesService {
	return &salesService{client: c}
}

// Upload streams the file at path to the server and returns the cleaned
// dataset. Size and type are left for the server to judge.
func (s *salesService) Upload(ctx context.Context, path string) (*models.CleanedDataset, error) {
	if path == "" {
		return nil, common.ErrNoFileSelected
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := s.client.UploadSalesData(ctx, filepath.Base(path), f)
	if err != nil {
		return nil, fmt.Errorf("upload error: %w", err)
	}
	return ds, nil
}
