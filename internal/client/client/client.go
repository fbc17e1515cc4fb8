package client

import (
	"context"

	"github.com/dmitrijs2005/gophaccounts/internal/models"
)

type Client interface {
	Authenticate(ctx context.Context, accessToken string) (*models.Account, error)
	GetAll(ctx context.Context) ([]models.Account, error)
	GetByID(ctx context.Context, id int) (*models.Account, error)
	Update(ctx context.Context, id int, params models.AccountParams) (*models.Account, error)
	Delete(ctx context.Context, id int) error

	// SetToken replaces the session token sent with every request. An empty
	// token sends no Authorization header.
	SetToken(token string)
}
