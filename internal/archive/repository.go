package archive

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("roadmap not found")

type Repository interface {
	Create(ctx context.Context, r *Roadmap) error
	GetByID(ctx context.Context, id uuid.UUID) (*Roadmap, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*Roadmap, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Roadmap{})
}

func (r *gormRepository) Create(ctx context.Context, rm *Roadmap) error {
	return r.db.WithContext(ctx).Create(rm).Error
}

func (r *gormRepository) GetByID(ctx context.Context, id uuid.UUID) (*Roadmap, error) {
	var rm Roadmap
	if err := r.db.WithContext(ctx).First(&rm, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rm, nil
}

func (r *gormRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*Roadmap, error) {
	var roadmaps []*Roadmap
	q := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&roadmaps).Error; err != nil {
		return nil, err
	}
	return roadmaps, nil
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Roadmap{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
