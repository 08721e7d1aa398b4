package model

import "time"

// Business content rows rendered on the public marketing pages. The admin
// dashboard (an external collaborator) owns the write side; this service
// only reads them, ordered by sort_order.

// PricingCategory groups pricing plans (e.g. distribution, promotion).
type PricingCategory struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:64"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sortOrder" gorm:"column:sort_order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Plans []PricingPlan `json:"plans" gorm:"foreignKey:CategoryID"`
}

func (PricingCategory) TableName() string { return "pricing_categories" }

// PricingPlan is one purchasable plan inside a category.
type PricingPlan struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	CategoryID  string    `json:"categoryId" gorm:"column:category_id;size:36;index"`
	Name        string    `json:"name"`
	Price       string    `json:"price"` // display string, currency formatting is upstream
	Period      string    `json:"period"`
	Description string    `json:"description"`
	Features    string    `json:"features" gorm:"type:json"` // JSON array of feature lines
	IsPopular   bool      `json:"isPopular" gorm:"column:is_popular"`
	SortOrder   int       `json:"sortOrder" gorm:"column:sort_order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (PricingPlan) TableName() string { return "pricing_plans" }

// Service is a core service shown on the services page.
type Service struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	SortOrder   int       `json:"sortOrder" gorm:"column:sort_order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Service) TableName() string { return "services" }

// AdditionalService is a priced add-on offering.
type AdditionalService struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	CoverURL    string    `json:"coverUrl" gorm:"column:cover_url"`
	SortOrder   int       `json:"sortOrder" gorm:"column:sort_order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (AdditionalService) TableName() string { return "additional_services" }

// StorePartner is a store the business distributes to.
type StorePartner struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IconType    string    `json:"iconType" gorm:"column:icon_type"`
	Color       string    `json:"color"`
	Category    string    `json:"category"`
	SortOrder   int       `json:"sortOrder" gorm:"column:sort_order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (StorePartner) TableName() string { return "store_partners" }

// DistributionStep is one step of the "how it works" flow.
type DistributionStep struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	StepNumber  string    `json:"stepNumber" gorm:"column:step_number"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sortOrder" gorm:"column:sort_order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (DistributionStep) TableName() string { return "distribution_steps" }
