package archive_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/roadmap-lambda/internal/archive"
	"github.com/saulo-duarte/roadmap-lambda/internal/config"
)

// peekRepository exposes what actually reached storage.
type peekRepository struct {
	archive.Repository
	last *archive.Roadmap
}

func (p *peekRepository) Create(ctx context.Context, rm *archive.Roadmap) error {
	cp := *rm
	p.last = &cp
	return p.Repository.Create(ctx, rm)
}

func newRoadmap(owner *uuid.UUID, content string) *archive.Roadmap {
	return &archive.Roadmap{
		OwnerID:      owner,
		Grade:        "5",
		Subject:      "Math",
		DailyMinutes: 30,
		Format:       "text",
		Content:      content,
	}
}

func TestServiceSealsContent(t *testing.T) {
	cipher, err := config.NewCipher("01234567890123456789012345678901")
	require.NoError(t, err)

	repo := &peekRepository{Repository: archive.NewMemoryRepository()}
	svc := archive.NewService(repo, cipher)
	ctx := context.Background()
	owner := uuid.New()

	rm := newRoadmap(&owner, "Chapter 1: fractions")
	require.NoError(t, svc.Save(ctx, rm))

	assert.NotEqual(t, uuid.Nil, rm.ID)
	assert.False(t, rm.CreatedAt.IsZero())
	assert.Equal(t, "Chapter 1: fractions", rm.Content, "caller copy must stay readable")
	require.NotNil(t, repo.last)
	assert.NotEqual(t, "Chapter 1: fractions", repo.last.Content, "stored copy must be sealed")

	got, err := svc.Get(ctx, rm.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "Chapter 1: fractions", got.Content)

	list, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Chapter 1: fractions", list[0].Content)
}

func TestServiceOwnerIsolation(t *testing.T) {
	svc := archive.NewService(archive.NewMemoryRepository(), nil)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	mine := newRoadmap(&alice, "alice plan")
	anonymous := newRoadmap(nil, "anonymous plan")
	require.NoError(t, svc.Save(ctx, mine))
	require.NoError(t, svc.Save(ctx, anonymous))

	t.Run("OtherOwnerCannotRead", func(t *testing.T) {
		_, err := svc.Get(ctx, mine.ID, bob)
		assert.True(t, errors.Is(err, archive.ErrNotFound))
	})

	t.Run("AnonymousEntriesAreNotListed", func(t *testing.T) {
		list, err := svc.List(ctx, alice)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, mine.ID, list[0].ID)

		list, err = svc.List(ctx, bob)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("OtherOwnerCannotDelete", func(t *testing.T) {
		err := svc.Delete(ctx, mine.ID, bob)
		assert.True(t, errors.Is(err, archive.ErrNotFound))
	})

	t.Run("OwnerDeletes", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, mine.ID, alice))
		_, err := svc.Get(ctx, mine.ID, alice)
		assert.True(t, errors.Is(err, archive.ErrNotFound))
	})
}

func TestMemoryRepositoryListOrder(t *testing.T) {
	repo := archive.NewMemoryRepository()
	ctx := context.Background()
	owner := uuid.New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		rm := newRoadmap(&owner, "plan")
		rm.ID = uuid.New()
		rm.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(ctx, rm))
	}

	list, err := repo.ListByOwner(ctx, owner, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].CreatedAt.After(list[1].CreatedAt))
	assert.Equal(t, base.Add(2*time.Hour), list[0].CreatedAt)
}
