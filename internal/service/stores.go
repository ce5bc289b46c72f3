package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dseu-petition/petition-api/internal/models"
)

// The services talk to storage through these interfaces so the workflows
// can be exercised against in-memory fakes. The GORM repositories in
// internal/repository and the disk store in internal/storage are the
// production implementations.

type PetitionStore interface {
	Create(ctx context.Context, p *models.Petition) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Petition, error)
	LatestByUser(ctx context.Context, userID uuid.UUID) (*models.Petition, error)
	List(ctx context.Context, status, search string) ([]models.Petition, error)
	All(ctx context.Context) ([]models.Petition, error)
	Count(ctx context.Context, status string) (int64, error)
}

type ProfileStore interface {
	Create(ctx context.Context, p *models.Profile) error
	FindByEmail(ctx context.Context, email string) (*models.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	Count(ctx context.Context) (int64, error)
}

type BlobStore interface {
	Put(category, fileName, contentType string, data []byte) (string, error)
	Delete(key string) error
	PublicURL(key string) string
}
