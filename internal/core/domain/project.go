package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequirementTypeAdditional marks a project item that contributes to the
// project's extra budget allocation. Any other requirement type contributes
// nothing.
const RequirementTypeAdditional = "Additional Requirement"

// Project groups payables, receivables and line items. Invariant: the
// extra budget allocation equals the sum of unit costs of the project's
// items whose requirement type is Additional Requirement.
type Project struct {
	ProjectID             string          `json:"projectID"` // Primary Key (UUID)
	Name                  string          `json:"name"`
	ExtraBudgetAllocation decimal.Decimal `json:"extraBudgetAllocation"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// ProjectItem is a project line item, keyed by (project, requirement name).
type ProjectItem struct {
	ProjectID       string          `json:"projectID"` // FK -> projects.project_id
	RequirementName string          `json:"requirementName"`
	ServiceCategory string          `json:"serviceCategory"`
	UnitCost        decimal.Decimal `json:"unitCost"`
	RequirementType string          `json:"requirementType"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Contribution is the amount this item adds to its project's extra budget
// allocation.
func (i ProjectItem) Contribution() decimal.Decimal {
	if i.RequirementType == RequirementTypeAdditional {
		return i.UnitCost
	}
	return decimal.Zero
}

// AllocationDelta computes the adjustment to apply to a project's extra
// budget allocation when an item transitions from old to new. A nil old
// models a create, a nil new models a delete.
func AllocationDelta(old, new *ProjectItem) decimal.Decimal {
	oldContribution := decimal.Zero
	if old != nil {
		oldContribution = old.Contribution()
	}
	newContribution := decimal.Zero
	if new != nil {
		newContribution = new.Contribution()
	}
	return newContribution.Sub(oldContribution)
}
