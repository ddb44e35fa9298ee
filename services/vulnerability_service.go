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

// VulnerabilityService handles business logic for vulnerabilities,
// including display-ID assignment on create and the dependency guard on
// delete.
type VulnerabilityService struct {
	vulnRepo      *repositories.VulnerabilityRepository
	ticketRepo    *repositories.TicketRepository
	clientRepo    *repositories.ClientRepository
	assetRepo     *repositories.AssetRepository
	referenceRepo *repositories.ReferenceRepository
	displayIDs    *DisplayIDService
}

// NewVulnerabilityService creates a new vulnerability service instance
func NewVulnerabilityService() *VulnerabilityService {
	return &VulnerabilityService{
		vulnRepo:      repositories.NewVulnerabilityRepository(),
		ticketRepo:    repositories.NewTicketRepository(),
		clientRepo:    repositories.NewClientRepository(),
		assetRepo:     repositories.NewAssetRepository(),
		referenceRepo: repositories.NewReferenceRepository(),
		displayIDs:    NewDisplayIDService(),
	}
}

// ListVulnerabilities retrieves vulnerabilities with pagination and filtering
func (s *VulnerabilityService) ListVulnerabilities(filter dto.VulnerabilityFilter) (dto.VulnerabilityListResponse, error) {
	filter.Normalize()

	vulnerabilities, totalCount, err := s.vulnRepo.FindWithPagination(
		filter.Page, filter.PageSize,
		filter.ClientID, filter.AssetID, filter.Status, filter.Criticality, filter.Search,
	)
	if err != nil {
		return dto.VulnerabilityListResponse{}, err
	}

	return dto.VulnerabilityListResponse{
		Vulnerabilities: vulnerabilities,
		ListMeta:        dto.NewListMeta(totalCount, filter.Page, filter.PageSize),
	}, nil
}

// GetVulnerability retrieves a vulnerability by ID
func (s *VulnerabilityService) GetVulnerability(id string) (models.Vulnerability, error) {
	vulnerability, err := s.vulnRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Vulnerability{}, errors.Wrap(ErrNotFound, "vulnerability")
	}
	return vulnerability, err
}

// CreateVulnerability validates references, assigns the next display ID
// for the client and inserts the row. If the insert collides on the
// display_id unique constraint the whole transaction is retried exactly
// once after rescanning the highest assigned number; a second collision
// surfaces ErrDuplicateIdentifier.
func (s *VulnerabilityService) CreateVulnerability(req dto.CreateVulnerabilityRequest) (models.Vulnerability, error) {
	client, err := s.clientRepo.FindByID(req.ClientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Vulnerability{}, errors.Wrap(ErrNotFound, "client")
	}
	if err != nil {
		return models.Vulnerability{}, err
	}

	if err := s.validateReferences(req.AssetID, req.AssetTypeID, req.ScannerID, req.ClientID); err != nil {
		return models.Vulnerability{}, err
	}

	discovered, err := utils.ParseDatePtr(req.Discovered)
	if err != nil {
		return models.Vulnerability{}, err
	}

	vulnerability := models.Vulnerability{
		ClientID:    req.ClientID,
		AssetID:     req.AssetID,
		Title:       req.Title,
		Description: req.Description,
		AssetTypeID: req.AssetTypeID,
		ScannerID:   req.ScannerID,
		Status:      models.VulnStatus(req.Status),
		Criticality: models.PriorityType(req.Criticality),
		CVSS:        req.CVSS,
		CVE:         req.CVE,
		Discovered:  discovered,
	}

	err = s.insertWithDisplayID(&vulnerability, client, false)
	if repositories.IsUniqueViolation(err, "display_id") {
		err = s.insertWithDisplayID(&vulnerability, client, true)
		if repositories.IsUniqueViolation(err, "display_id") {
			return models.Vulnerability{}, errors.Wrapf(ErrDuplicateIdentifier, "vulnerability %q", vulnerability.DisplayID)
		}
	}
	if err != nil {
		return models.Vulnerability{}, err
	}

	return s.vulnRepo.FindByID(vulnerability.ID)
}

// insertWithDisplayID runs one transactional create attempt. With
// rescan set, the display sequence is first pushed past the highest
// suffix already present in the table.
func (s *VulnerabilityService) insertWithDisplayID(vulnerability *models.Vulnerability, client models.Client, rescan bool) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var displayID string
		var err error
		if rescan {
			var highest int64
			highest, err = s.vulnRepo.MaxDisplayNumber(tx, client.ShortName)
			if err != nil {
				return err
			}
			displayID, err = s.displayIDs.NextAfter(tx, utils.VulnerabilityIDLetter, client, highest)
		} else {
			displayID, err = s.displayIDs.Next(tx, utils.VulnerabilityIDLetter, client)
		}
		if err != nil {
			return err
		}

		vulnerability.ID = ""
		vulnerability.DisplayID = displayID
		return s.vulnRepo.Create(tx, vulnerability)
	})
}

// UpdateVulnerability applies a partial update. The display ID and the
// owning client are immutable.
func (s *VulnerabilityService) UpdateVulnerability(id string, req dto.UpdateVulnerabilityRequest) (models.Vulnerability, error) {
	vulnerability, err := s.vulnRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Vulnerability{}, errors.Wrap(ErrNotFound, "vulnerability")
	}
	if err != nil {
		return models.Vulnerability{}, err
	}

	if err := s.validateReferences(req.AssetID, req.AssetTypeID, req.ScannerID, vulnerability.ClientID); err != nil {
		return models.Vulnerability{}, err
	}

	if req.AssetID != nil {
		vulnerability.AssetID = req.AssetID
	}
	if req.Title != nil {
		vulnerability.Title = *req.Title
	}
	if req.Description != nil {
		vulnerability.Description = *req.Description
	}
	if req.AssetTypeID != nil {
		vulnerability.AssetTypeID = req.AssetTypeID
	}
	if req.ScannerID != nil {
		vulnerability.ScannerID = req.ScannerID
	}
	if req.Status != nil {
		vulnerability.Status = models.VulnStatus(*req.Status)
	}
	if req.Criticality != nil {
		vulnerability.Criticality = models.PriorityType(*req.Criticality)
	}
	if req.CVSS != nil {
		vulnerability.CVSS = req.CVSS
	}
	if req.CVE != nil {
		vulnerability.CVE = *req.CVE
	}
	if req.Discovered != nil {
		discovered, err := utils.ParseDatePtr(req.Discovered)
		if err != nil {
			return models.Vulnerability{}, err
		}
		vulnerability.Discovered = discovered
	}

	// Preloaded associations must not be saved back
	vulnerability.Asset = nil
	vulnerability.AssetType = nil
	vulnerability.Scanner = nil

	if err := s.vulnRepo.Update(vulnerability); err != nil {
		return models.Vulnerability{}, err
	}
	return s.vulnRepo.FindByID(id)
}

// DeleteVulnerability soft-deletes a vulnerability unless a non-deleted
// ticket still links it. The check and the delete run in one
// transaction with the vulnerability row locked, so a ticket linking it
// concurrently either sees the lock or commits first and blocks the
// delete. Junction rows are left in place for history.
func (s *VulnerabilityService) DeleteVulnerability(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		vulnerability, err := s.vulnRepo.FindForUpdate(tx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(ErrNotFound, "vulnerability")
		}
		if err != nil {
			return err
		}

		blocking, err := s.ticketRepo.FindBlockingDisplayIDs(tx, []string{vulnerability.ID})
		if err != nil {
			return err
		}
		if len(blocking) > 0 {
			return &ConflictError{Resource: vulnerability.DisplayID, BlockedBy: blocking}
		}

		return s.vulnRepo.SoftDelete(tx, vulnerability.ID)
	})
}

// validateReferences checks the optional asset / asset type / scanner
// references of a create or update payload. The asset must belong to
// the same client as the vulnerability.
func (s *VulnerabilityService) validateReferences(assetID, assetTypeID, scannerID *string, clientID string) error {
	if assetID != nil {
		asset, err := s.assetRepo.FindByID(*assetID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(ErrNotFound, "asset")
		}
		if err != nil {
			return err
		}
		if asset.ClientID != clientID {
			return validationErrorf("asset must belong to the same client as the vulnerability")
		}
	}
	if assetTypeID != nil {
		if _, err := s.referenceRepo.FindAssetTypeByID(*assetTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrap(ErrNotFound, "asset type")
			}
			return err
		}
	}
	if scannerID != nil {
		if _, err := s.referenceRepo.FindScannerByID(*scannerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrap(ErrNotFound, "scanner")
			}
			return err
		}
	}
	return nil
}
