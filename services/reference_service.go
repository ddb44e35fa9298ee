package services

import (
	"github.com/pkg/errors"
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/models"
	"github.com/vulndesk-api/repositories"
	"gorm.io/gorm"
)

// ReferenceService handles the asset type and scanner catalogs
type ReferenceService struct {
	referenceRepo *repositories.ReferenceRepository
}

// NewReferenceService creates a new reference service instance
func NewReferenceService() *ReferenceService {
	return &ReferenceService{
		referenceRepo: repositories.NewReferenceRepository(),
	}
}

func (s *ReferenceService) ListAssetTypes() ([]models.AssetType, error) {
	return s.referenceRepo.FindAssetTypes()
}

func (s *ReferenceService) CreateAssetType(req dto.CreateReferenceItemRequest) (models.AssetType, error) {
	assetType, err := s.referenceRepo.CreateAssetType(models.AssetType{
		Name:        req.Name,
		Description: req.Description,
	})
	if repositories.IsUniqueViolation(err, "name") {
		return models.AssetType{}, validationErrorf("asset type %q already exists", req.Name)
	}
	return assetType, err
}

func (s *ReferenceService) UpdateAssetType(id string, req dto.UpdateReferenceItemRequest) (models.AssetType, error) {
	assetType, err := s.referenceRepo.FindAssetTypeByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AssetType{}, errors.Wrap(ErrNotFound, "asset type")
	}
	if err != nil {
		return models.AssetType{}, err
	}

	if req.Name != nil {
		assetType.Name = *req.Name
	}
	if req.Description != nil {
		assetType.Description = *req.Description
	}

	if err := s.referenceRepo.UpdateAssetType(assetType); err != nil {
		if repositories.IsUniqueViolation(err, "name") {
			return models.AssetType{}, validationErrorf("asset type %q already exists", assetType.Name)
		}
		return models.AssetType{}, err
	}
	return assetType, nil
}

// DeleteAssetType removes a catalog entry; entries still referenced by
// assets are kept
func (s *ReferenceService) DeleteAssetType(id string) error {
	if _, err := s.referenceRepo.FindAssetTypeByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(ErrNotFound, "asset type")
		}
		return err
	}

	inUse, err := s.referenceRepo.CountAssetsOfType(id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return validationErrorf("asset type is used by %d assets", inUse)
	}

	return s.referenceRepo.DeleteAssetType(id)
}

func (s *ReferenceService) ListScanners() ([]models.Scanner, error) {
	return s.referenceRepo.FindScanners()
}

func (s *ReferenceService) CreateScanner(req dto.CreateReferenceItemRequest) (models.Scanner, error) {
	scanner, err := s.referenceRepo.CreateScanner(models.Scanner{
		Name:        req.Name,
		Description: req.Description,
	})
	if repositories.IsUniqueViolation(err, "name") {
		return models.Scanner{}, validationErrorf("scanner %q already exists", req.Name)
	}
	return scanner, err
}

func (s *ReferenceService) UpdateScanner(id string, req dto.UpdateReferenceItemRequest) (models.Scanner, error) {
	scanner, err := s.referenceRepo.FindScannerByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Scanner{}, errors.Wrap(ErrNotFound, "scanner")
	}
	if err != nil {
		return models.Scanner{}, err
	}

	if req.Name != nil {
		scanner.Name = *req.Name
	}
	if req.Description != nil {
		scanner.Description = *req.Description
	}

	if err := s.referenceRepo.UpdateScanner(scanner); err != nil {
		if repositories.IsUniqueViolation(err, "name") {
			return models.Scanner{}, validationErrorf("scanner %q already exists", scanner.Name)
		}
		return models.Scanner{}, err
	}
	return scanner, nil
}

func (s *ReferenceService) DeleteScanner(id string) error {
	if _, err := s.referenceRepo.FindScannerByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(ErrNotFound, "scanner")
		}
		return err
	}
	return s.referenceRepo.DeleteScanner(id)
}
