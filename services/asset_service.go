package services

import (
	"github.com/pkg/errors"
	"github.com/vulndesk-api/database"
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/models"
	"github.com/vulndesk-api/repositories"
	"github.com/vulndesk-api/utils"
	"gorm.io/gorm"
)

// AssetService handles business logic for client assets
type AssetService struct {
	assetRepo     *repositories.AssetRepository
	clientRepo    *repositories.ClientRepository
	vulnRepo      *repositories.VulnerabilityRepository
	ticketRepo    *repositories.TicketRepository
	referenceRepo *repositories.ReferenceRepository
}

// NewAssetService creates a new asset service instance
func NewAssetService() *AssetService {
	return &AssetService{
		assetRepo:     repositories.NewAssetRepository(),
		clientRepo:    repositories.NewClientRepository(),
		vulnRepo:      repositories.NewVulnerabilityRepository(),
		ticketRepo:    repositories.NewTicketRepository(),
		referenceRepo: repositories.NewReferenceRepository(),
	}
}

// ListAssets retrieves assets with pagination and filtering
func (s *AssetService) ListAssets(filter dto.AssetFilter) (dto.AssetListResponse, error) {
	filter.Normalize()

	assets, totalCount, err := s.assetRepo.FindWithPagination(
		filter.Page, filter.PageSize, filter.ClientID, filter.TypeID, filter.Search,
	)
	if err != nil {
		return dto.AssetListResponse{}, err
	}

	return dto.AssetListResponse{
		Assets:   assets,
		ListMeta: dto.NewListMeta(totalCount, filter.Page, filter.PageSize),
	}, nil
}

// GetAsset retrieves a single asset with its active vulnerabilities
func (s *AssetService) GetAsset(id string) (models.Asset, error) {
	asset, err := s.assetRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Asset{}, errors.Wrap(ErrNotFound, "asset")
	}
	return asset, err
}

// CreateAsset validates the client and type references and inserts the asset
func (s *AssetService) CreateAsset(req dto.CreateAssetRequest) (models.Asset, error) {
	if _, err := s.clientRepo.FindByID(req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Asset{}, errors.Wrap(ErrNotFound, "client")
		}
		return models.Asset{}, err
	}
	if _, err := s.referenceRepo.FindAssetTypeByID(req.TypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Asset{}, errors.Wrap(ErrNotFound, "asset type")
		}
		return models.Asset{}, err
	}

	lastScan, err := utils.ParseDatePtr(req.LastScan)
	if err != nil {
		return models.Asset{}, err
	}

	asset := models.Asset{
		ClientID:        req.ClientID,
		Name:            req.Name,
		TypeID:          req.TypeID,
		IPAddress:       req.IPAddress,
		OperatingSystem: req.OperatingSystem,
		Status:          models.AssetStatus(req.Status),
		Criticality:     models.PriorityType(req.Criticality),
		LastScan:        lastScan,
	}

	created, err := s.assetRepo.Create(asset)
	if err != nil {
		return models.Asset{}, err
	}
	return s.assetRepo.FindByID(created.ID)
}

// UpdateAsset applies a partial update to an asset
func (s *AssetService) UpdateAsset(id string, req dto.UpdateAssetRequest) (models.Asset, error) {
	asset, err := s.assetRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Asset{}, errors.Wrap(ErrNotFound, "asset")
	}
	if err != nil {
		return models.Asset{}, err
	}

	if req.TypeID != nil {
		if _, err := s.referenceRepo.FindAssetTypeByID(*req.TypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Asset{}, errors.Wrap(ErrNotFound, "asset type")
			}
			return models.Asset{}, err
		}
		asset.TypeID = *req.TypeID
	}
	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.IPAddress != nil {
		asset.IPAddress = *req.IPAddress
	}
	if req.OperatingSystem != nil {
		asset.OperatingSystem = *req.OperatingSystem
	}
	if req.Status != nil {
		asset.Status = models.AssetStatus(*req.Status)
	}
	if req.Criticality != nil {
		asset.Criticality = models.PriorityType(*req.Criticality)
	}
	if req.LastScan != nil {
		lastScan, err := utils.ParseDatePtr(req.LastScan)
		if err != nil {
			return models.Asset{}, err
		}
		asset.LastScan = lastScan
	}

	// Preloaded associations must not be saved back
	asset.Client = models.Client{}
	asset.Type = models.AssetType{}
	asset.Vulnerabilities = nil

	if err := s.assetRepo.Update(asset); err != nil {
		return models.Asset{}, err
	}
	return s.assetRepo.FindByID(id)
}

// DeleteAsset soft-deletes an asset together with all of its active
// vulnerabilities in one transaction. If any of those vulnerabilities
// is linked to an active ticket the whole delete is rejected and the
// blocking ticket display IDs are returned in a ConflictError; no
// partial cascade is ever left behind.
func (s *AssetService) DeleteAsset(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		asset, err := s.assetRepo.FindForUpdate(tx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(ErrNotFound, "asset")
		}
		if err != nil {
			return err
		}

		vulnerabilities, err := s.vulnRepo.FindActiveByAssetForUpdate(tx, asset.ID)
		if err != nil {
			return err
		}

		if len(vulnerabilities) > 0 {
			ids := make([]string, len(vulnerabilities))
			for i, v := range vulnerabilities {
				ids[i] = v.ID
			}

			blockedBy, err := s.ticketRepo.FindBlockingDisplayIDs(tx, ids)
			if err != nil {
				return err
			}
			if len(blockedBy) > 0 {
				return &ConflictError{Resource: "asset", BlockedBy: blockedBy}
			}

			if err := s.vulnRepo.SoftDeleteByIDs(tx, ids); err != nil {
				return err
			}
		}

		return s.assetRepo.SoftDelete(tx, asset.ID)
	})
}
