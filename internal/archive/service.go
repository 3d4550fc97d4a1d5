package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/saulo-duarte/roadmap-lambda/internal/config"
)

const listLimit = 50

// Sealer encrypts archived content at rest. *config.Cipher satisfies it.
type Sealer interface {
	Encrypt(text string) (string, error)
	Decrypt(encoded string) (string, error)
}

type Service interface {
	Save(ctx context.Context, rm *Roadmap) error
	Get(ctx context.Context, id, ownerID uuid.UUID) (*Roadmap, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*Roadmap, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

type service struct {
	repo   Repository
	sealer Sealer
	now    func() time.Time
}

// NewService builds the archive service. A nil sealer stores content as-is.
func NewService(repo Repository, sealer Sealer) Service {
	return &service{repo: repo, sealer: sealer, now: time.Now}
}

func (s *service) Save(ctx context.Context, rm *Roadmap) error {
	log := config.WithContext(ctx)

	if rm.ID == uuid.Nil {
		rm.ID = uuid.New()
	}
	if rm.CreatedAt.IsZero() {
		rm.CreatedAt = s.now().UTC()
	}

	stored := *rm
	if s.sealer != nil {
		sealed, err := s.sealer.Encrypt(rm.Content)
		if err != nil {
			log.WithError(err).Error("Failed to seal roadmap content")
			return fmt.Errorf("sealing roadmap: %w", err)
		}
		stored.Content = sealed
	}

	if err := s.repo.Create(ctx, &stored); err != nil {
		log.WithError(err).Error("Failed to archive roadmap")
		return err
	}

	log.WithField("roadmap_id", rm.ID.String()).Info("Roadmap archived")
	return nil
}

func (s *service) Get(ctx context.Context, id, ownerID uuid.UUID) (*Roadmap, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// someone else's roadmap is reported as missing
	if !rm.ownedBy(ownerID) {
		return nil, ErrNotFound
	}
	if err := s.open(rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID) ([]*Roadmap, error) {
	log := config.WithContext(ctx)

	roadmaps, err := s.repo.ListByOwner(ctx, ownerID, listLimit)
	if err != nil {
		log.WithError(err).Error("Failed to list archived roadmaps")
		return nil, err
	}
	for _, rm := range roadmaps {
		if err := s.open(rm); err != nil {
			log.WithError(err).WithField("roadmap_id", rm.ID.String()).Error("Failed to open archived roadmap")
			return nil, err
		}
	}
	return roadmaps, nil
}

func (s *service) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !rm.ownedBy(ownerID) {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) open(rm *Roadmap) error {
	if s.sealer == nil {
		return nil
	}
	plain, err := s.sealer.Decrypt(rm.Content)
	if err != nil {
		return fmt.Errorf("opening roadmap %s: %w", rm.ID, err)
	}
	rm.Content = plain
	return nil
}
