package repository

import (
	"fmt"

	"distrohub/db"
	"distrohub/model"

	"gorm.io/gorm"
)

// ContentRepository defines read access to the business content tables
// rendered on the public pages. Every list is ordered by sort_order; writes
// stay with the admin dashboard, which owns these tables.
type ContentRepository interface {
	GetPricingCategories() ([]model.PricingCategory, error)
	GetServices() ([]model.Service, error)
	GetAdditionalServices() ([]model.AdditionalService, error)
	GetStorePartners() ([]model.StorePartner, error)
	GetDistributionSteps() ([]model.DistributionStep, error)
}

type gormContentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a ContentRepository backed by the shared
// GORM handle.
func NewContentRepository() ContentRepository {
	return &gormContentRepository{db: db.GormDB}
}

func (r *gormContentRepository) GetPricingCategories() ([]model.PricingCategory, error) {
	var categories []model.PricingCategory
	err := r.db.
		Preload("Plans", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sort_order ASC")
		}).
		Order("sort_order ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing categories: %w", err)
	}
	return categories, nil
}

func (r *gormContentRepository) GetServices() ([]model.Service, error) {
	var services []model.Service
	if err := r.db.Order("sort_order ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (r *gormContentRepository) GetAdditionalServices() ([]model.AdditionalService, error) {
	var services []model.AdditionalService
	if err := r.db.Order("sort_order ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to list additional services: %w", err)
	}
	return services, nil
}

func (r *gormContentRepository) GetStorePartners() ([]model.StorePartner, error) {
	var partners []model.StorePartner
	if err := r.db.Order("sort_order ASC").Find(&partners).Error; err != nil {
		return nil, fmt.Errorf("failed to list store partners: %w", err)
	}
	return partners, nil
}

func (r *gormContentRepository) GetDistributionSteps() ([]model.DistributionStep, error) {
	var steps []model.DistributionStep
	if err := r.db.Order("sort_order ASC").Find(&steps).Error; err != nil {
		return nil, fmt.Errorf("failed to list distribution steps: %w", err)
	}
	return steps, nil
}
