package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opslane/erp_backend/internal/apperrors"
	"github.com/opslane/erp_backend/internal/core/domain"
	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/dto"
	"github.com/opslane/erp_backend/internal/utils"
)

type assetService struct {
	assetRepo portsrepo.AssetRepository
}

// NewAssetService creates a new asset service.
func NewAssetService(assetRepo portsrepo.AssetRepository) portssvc.AssetSvcFacade {
	return &assetService{assetRepo: assetRepo}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	return s.assetRepo.ListAssets(ctx)
}

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error) {
	purchaseDate, err := utils.ParseDate(req.PurchaseDate)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrValidation, "invalid_purchase_date", "purchaseDate must be YYYY-MM-DD", err)
	}

	asset := domain.Asset{
		AssetID:      uuid.NewString(),
		Name:         req.Name,
		Value:        *req.Value,
		PurchaseDate: purchaseDate,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		return nil, err
	}
	return &asset, nil
}
