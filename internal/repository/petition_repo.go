package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dseu-petition/petition-api/internal/models"
)

type PetitionRepo struct {
	db *gorm.DB
}

func NewPetitionRepo(db *gorm.DB) *PetitionRepo {
	return &PetitionRepo{db: db}
}

func (r *PetitionRepo) Create(ctx context.Context, p *models.Petition) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("insert petition: %w", err)
	}
	return nil
}

func (r *PetitionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	res := r.db.WithContext(ctx).Model(&models.Petition{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update petition status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PetitionRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Petition, error) {
	var p models.Petition
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PetitionRepo) LatestByUser(ctx context.Context, userID uuid.UUID) (*models.Petition, error) {
	var p models.Petition
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns petitions newest first, optionally narrowed by status and a
// case-insensitive search over name, college and email.
func (r *PetitionRepo) List(ctx context.Context, status, search string) ([]models.Petition, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("full_name ILIKE ? OR college_name ILIKE ? OR email ILIKE ?", like, like, like)
	}
	var ps []models.Petition
	if err := q.Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *PetitionRepo) All(ctx context.Context) ([]models.Petition, error) {
	var ps []models.Petition
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

// Count counts petitions, filtered by status when status is non-empty.
func (r *PetitionRepo) Count(ctx context.Context, status string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Petition{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
