package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"collab-backend/internal/database/models"
	apperrors "collab-backend/internal/errors"
	"collab-backend/internal/metrics"
	"collab-backend/internal/repository"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const ownerKey = "owner"

// OwnerDirectory caches the owner company. The first lookup loads it and
// concurrent first lookups share one query. Invalidate drops the cached copy
// and bumps the generation, so a load that started earlier is not cached.
type OwnerDirectory struct {
	repo  repository.CompanyRepositoryInterface
	group singleflight.Group

	mu         sync.RWMutex
	owner      *models.Company
	generation uint64
}

// NewOwnerDirectory creates an empty OwnerDirectory
func NewOwnerDirectory(repo repository.CompanyRepositoryInterface) *OwnerDirectory {
	return &OwnerDirectory{repo: repo}
}

// Owner returns a copy of the owner company
func (d *OwnerDirectory) Owner(ctx context.Context) (*models.Company, error) {
	d.mu.RLock()
	cached := d.owner
	d.mu.RUnlock()
	if cached != nil {
		metrics.OwnerLookupsTotal.WithLabelValues(metrics.ResultHit).Inc()
		owner := *cached
		return &owner, nil
	}

	metrics.OwnerLookupsTotal.WithLabelValues(metrics.ResultMiss).Inc()
	v, err, _ := d.group.Do(ownerKey, func() (interface{}, error) {
		return d.load()
	})
	if err != nil {
		return nil, err
	}
	owner := *v.(*models.Company)
	return &owner, nil
}

// Invalidate drops the cached owner; the next lookup reloads it
func (d *OwnerDirectory) Invalidate() {
	d.group.Forget(ownerKey)
	d.mu.Lock()
	d.owner = nil
	d.generation++
	d.mu.Unlock()
}

// Refresh reloads the owner company
func (d *OwnerDirectory) Refresh(ctx context.Context) (*models.Company, error) {
	d.Invalidate()
	return d.Owner(ctx)
}

func (d *OwnerDirectory) load() (*models.Company, error) {
	d.mu.RLock()
	generation := d.generation
	d.mu.RUnlock()

	owner, err := d.repo.GetOwner()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOwnerCompanyNotFound
		}
		return nil, fmt.Errorf("failed to load owner company: %w", err)
	}

	d.mu.Lock()
	if d.generation == generation {
		d.owner = owner
	}
	d.mu.Unlock()
	return owner, nil
}
