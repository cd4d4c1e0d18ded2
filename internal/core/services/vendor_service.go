package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opslane/erp_backend/internal/core/domain"
	portsrepo "github.com/opslane/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/opslane/erp_backend/internal/core/ports/services"
	"github.com/opslane/erp_backend/internal/dto"
)

type vendorService struct {
	vendorRepo portsrepo.VendorRepository
}

// NewVendorService creates a new vendor service.
func NewVendorService(vendorRepo portsrepo.VendorRepository) portssvc.VendorSvcFacade {
	return &vendorService{vendorRepo: vendorRepo}
}

var _ portssvc.VendorSvcFacade = (*vendorService)(nil)

func (s *vendorService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	return s.vendorRepo.ListVendors(ctx)
}

func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	vendor := domain.Vendor{
		VendorID:  uuid.NewString(),
		Name:      req.Name,
		Contact:   req.Contact,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}
