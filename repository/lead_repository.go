// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/verdelease/leasing-api/models"
	"gorm.io/gorm"
)

// LeadRepositoryImpl implements LeadRepository interface
type LeadRepositoryImpl struct {
	*BaseRepository[models.Lead, models.LeadFilter]
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &LeadRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Lead, models.LeadFilter](db),
	}
}

// ByID retrieves a lead by its ID
func (r *LeadRepositoryImpl) ByID(ctx context.Context, id uint) (*models.Lead, error) {
	db := r.getDB(ctx)

	var lead models.Lead
	err := db.Last(&lead, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &lead, nil
}

// ByUUID retrieves a lead by UUID
func (r *LeadRepositoryImpl) ByUUID(ctx context.Context, id string) (*models.Lead, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	filter := models.LeadFilter{UUID: &parsed}
	leads, err := r.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, err
	}

	if len(leads) == 0 {
		return nil, nil
	}

	return leads[0], nil
}

// ListNewestFirst retrieves leads ordered by created_at descending with id as
// tiebreaker, since created_at may collide at second granularity.
func (r *LeadRepositoryImpl) ListNewestFirst(ctx context.Context, limit, offset int) ([]*models.Lead, error) {
	return r.ByFilter(ctx, models.LeadFilter{}, "created_at DESC, id DESC", limit, offset)
}

// applyFilter applies filter criteria to a GORM query
func (r *LeadRepositoryImpl) applyFilter(query *gorm.DB, filter models.LeadFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		query = query.Where("uuid = ?", *filter.UUID)
	}
	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.Email != nil {
		query = query.Where("email = ?", *filter.Email)
	}
	if filter.Employment != nil {
		query = query.Where("employment = ?", *filter.Employment)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	return query
}

// ByFilter retrieves leads based on filter criteria
func (r *LeadRepositoryImpl) ByFilter(ctx context.Context, filter models.LeadFilter, orderBy string, limit, offset int) ([]*models.Lead, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Lead{})

	query = r.applyFilter(query, filter)

	if orderBy == "" {
		orderBy = "id DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var leads []*models.Lead
	err := query.Find(&leads).Error
	if err != nil {
		return nil, err
	}

	return leads, nil
}

// Count returns the number of leads matching the filter
func (r *LeadRepositoryImpl) Count(ctx context.Context, filter models.LeadFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Lead{})

	query = r.applyFilter(query, filter)

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Exists checks if any lead matching the filter exists
func (r *LeadRepositoryImpl) Exists(ctx context.Context, filter models.LeadFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
