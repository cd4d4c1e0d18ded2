package dto

import "github.com/shopspring/decimal"

// CreateProjectRequest creates a project, which holds the extra budget
// allocation its items adjust.
type CreateProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateProjectItemRequest creates a project line item. The requirement
// name is the item's key within the project.
type CreateProjectItemRequest struct {
	RequirementName string           `json:"requirementName" binding:"required"`
	ServiceCategory string           `json:"serviceCategory"`
	UnitCost        *decimal.Decimal `json:"unitCost" binding:"required"`
	RequirementType string           `json:"requirementType" binding:"required"`
}

// UpdateProjectItemRequest overwrites a project item's mutable fields.
type UpdateProjectItemRequest struct {
	ServiceCategory string           `json:"serviceCategory"`
	UnitCost        *decimal.Decimal `json:"unitCost" binding:"required"`
	RequirementType string           `json:"requirementType" binding:"required"`
}

// CreateAssetRequest creates a fixed asset. PurchaseDate is YYYY-MM-DD.
type CreateAssetRequest struct {
	Name         string           `json:"name" binding:"required"`
	Value        *decimal.Decimal `json:"value" binding:"required"`
	PurchaseDate string           `json:"purchaseDate" binding:"required"`
}
