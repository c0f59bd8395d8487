// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/verdelease/leasing-api/models"
	"github.com/verdelease/leasing-api/utils"
)

// MemoryLeadRepository is an in-memory LeadRepository. It serializes identifier
// assignment under a mutex, so concurrent submissions never collide on IDs.
// Used in tests and as a stand-in store when no database is configured.
type MemoryLeadRepository struct {
	mu     sync.RWMutex
	leads  []*models.Lead
	nextID uint
}

// NewMemoryLeadRepository creates an empty in-memory lead store.
func NewMemoryLeadRepository() *MemoryLeadRepository {
	return &MemoryLeadRepository{nextID: 1}
}

func (r *MemoryLeadRepository) Save(_ context.Context, lead *models.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *lead
	stored.ID = r.nextID
	r.nextID++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = utils.UTCNow()
	}
	r.leads = append(r.leads, &stored)

	// Reflect assigned fields back to the caller, mirroring gorm's Create.
	lead.ID = stored.ID
	lead.CreatedAt = stored.CreatedAt
	return nil
}

func (r *MemoryLeadRepository) ByID(_ context.Context, id uint) (*models.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.leads {
		if l.ID == id {
			copied := *l
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MemoryLeadRepository) ByUUID(_ context.Context, id string) (*models.Lead, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.leads {
		if l.UUID == parsed {
			copied := *l
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MemoryLeadRepository) ByFilter(_ context.Context, filter models.LeadFilter, orderBy string, limit, offset int) ([]*models.Lead, error) {
	r.mu.RLock()
	matched := r.match(filter)
	r.mu.RUnlock()

	switch orderBy {
	case "created_at DESC, id DESC":
		sort.Slice(matched, func(i, j int) bool {
			if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
				return matched[i].CreatedAt.After(matched[j].CreatedAt)
			}
			return matched[i].ID > matched[j].ID
		})
	default:
		sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	}

	return paginate(matched, limit, offset), nil
}

func (r *MemoryLeadRepository) ListNewestFirst(ctx context.Context, limit, offset int) ([]*models.Lead, error) {
	return r.ByFilter(ctx, models.LeadFilter{}, "created_at DESC, id DESC", limit, offset)
}

func (r *MemoryLeadRepository) Count(_ context.Context, filter models.LeadFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.match(filter))), nil
}

func (r *MemoryLeadRepository) Exists(ctx context.Context, filter models.LeadFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// match returns copies of all leads satisfying the filter. Caller holds the lock.
func (r *MemoryLeadRepository) match(filter models.LeadFilter) []*models.Lead {
	var matched []*models.Lead
	for _, l := range r.leads {
		if filter.ID != nil && l.ID != *filter.ID {
			continue
		}
		if filter.UUID != nil && l.UUID != *filter.UUID {
			continue
		}
		if filter.VehicleID != nil && l.VehicleID != *filter.VehicleID {
			continue
		}
		if filter.Email != nil && l.Email != *filter.Email {
			continue
		}
		if filter.Employment != nil && l.Employment != *filter.Employment {
			continue
		}
		if filter.CreatedAfter != nil && !l.CreatedAt.After(*filter.CreatedAfter) {
			continue
		}
		if filter.CreatedBefore != nil && !l.CreatedAt.Before(*filter.CreatedBefore) {
			continue
		}
		copied := *l
		matched = append(matched, &copied)
	}
	return matched
}

// MemoryAdminRepository is an in-memory AdminRepository for tests.
type MemoryAdminRepository struct {
	mu     sync.RWMutex
	admins []*models.Admin
	nextID uint
}

// NewMemoryAdminRepository creates an empty in-memory admin store.
func NewMemoryAdminRepository() *MemoryAdminRepository {
	return &MemoryAdminRepository{nextID: 1}
}

func (r *MemoryAdminRepository) Save(_ context.Context, admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Update in place when the admin already has an identifier
	if admin.ID != 0 {
		for i, a := range r.admins {
			if a.ID == admin.ID {
				copied := *admin
				copied.UpdatedAt = utils.UTCNow()
				r.admins[i] = &copied
				return nil
			}
		}
	}

	stored := *admin
	stored.ID = r.nextID
	r.nextID++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = utils.UTCNow()
		stored.UpdatedAt = stored.CreatedAt
	}
	r.admins = append(r.admins, &stored)

	admin.ID = stored.ID
	admin.CreatedAt = stored.CreatedAt
	return nil
}

func (r *MemoryAdminRepository) ByID(_ context.Context, id uint) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.admins {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MemoryAdminRepository) ByUsername(_ context.Context, username string) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.admins {
		if a.Username == username {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MemoryAdminRepository) UpdateLastLogin(_ context.Context, adminID uint, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.admins {
		if a.ID == adminID {
			t := at
			a.LastLoginAt = &t
			a.UpdatedAt = at
			return nil
		}
	}
	return nil
}

func (r *MemoryAdminRepository) ByFilter(_ context.Context, filter models.AdminFilter, _ string, limit, offset int) ([]*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*models.Admin
	for _, a := range r.admins {
		if filter.ID != nil && a.ID != *filter.ID {
			continue
		}
		if filter.UUID != nil && a.UUID != *filter.UUID {
			continue
		}
		if filter.Username != nil && a.Username != *filter.Username {
			continue
		}
		if filter.IsActive != nil && utils.IsTrue(a.IsActive) != *filter.IsActive {
			continue
		}
		copied := *a
		matched = append(matched, &copied)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	return paginate(matched, limit, offset), nil
}

func (r *MemoryAdminRepository) Count(ctx context.Context, filter models.AdminFilter) (int64, error) {
	admins, err := r.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return 0, err
	}
	return int64(len(admins)), nil
}

func (r *MemoryAdminRepository) Exists(ctx context.Context, filter models.AdminFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func paginate[T any](items []*T, limit, offset int) []*T {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
