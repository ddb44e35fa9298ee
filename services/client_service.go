package services

import (
	"github.com/pkg/errors"
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/models"
	"github.com/vulndesk-api/repositories"
	"github.com/vulndesk-api/utils"
	"gorm.io/gorm"
)

// ClientService handles business logic for clients and their contacts
type ClientService struct {
	clientRepo *repositories.ClientRepository
}

// NewClientService creates a new client service instance
func NewClientService() *ClientService {
	return &ClientService{
		clientRepo: repositories.NewClientRepository(),
	}
}

// ListClients retrieves clients with pagination and search
func (s *ClientService) ListClients(filter dto.ClientFilter) (dto.ClientListResponse, error) {
	filter.Normalize()

	clients, totalCount, err := s.clientRepo.FindWithPagination(filter.Page, filter.PageSize, filter.Search)
	if err != nil {
		return dto.ClientListResponse{}, err
	}

	return dto.ClientListResponse{
		Clients:  clients,
		ListMeta: dto.NewListMeta(totalCount, filter.Page, filter.PageSize),
	}, nil
}

// GetClient retrieves a single client with its contacts
func (s *ClientService) GetClient(id string) (models.Client, error) {
	client, err := s.clientRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Client{}, errors.Wrap(ErrNotFound, "client")
	}
	return client, err
}

// CreateClient validates the short name and inserts the client with its contacts
func (s *ClientService) CreateClient(req dto.CreateClientRequest) (models.Client, error) {
	if !utils.IsValidClientCode(req.ShortName) {
		return models.Client{}, errors.Wrapf(ErrInvalidClientCode, "%q", req.ShortName)
	}

	contractDate, err := utils.ParseDatePtr(optional(req.ContractDate))
	if err != nil {
		return models.Client{}, err
	}
	contractExpiry, err := utils.ParseDatePtr(optional(req.ContractExpiry))
	if err != nil {
		return models.Client{}, err
	}

	client := models.Client{
		Name:           req.Name,
		ShortName:      req.ShortName,
		Industry:       req.Industry,
		ContactPerson:  req.ContactPerson,
		Position:       req.Position,
		Phone:          req.Phone,
		Email:          req.Email,
		ContractNumber: req.ContractNumber,
		ContractDate:   contractDate,
		ContractExpiry: contractExpiry,
		Notes:          req.Notes,
		InfraCloud:     true,
		InfraOnPrem:    true,
	}
	if req.SLA != "" {
		client.SLA = models.SLAType(req.SLA)
	} else {
		client.SLA = models.SLAStandard
	}
	if req.SecurityLevel != "" {
		client.SecurityLevel = models.SecurityLevelType(req.SecurityLevel)
	} else {
		client.SecurityLevel = models.SecurityLevelHigh
	}
	if req.BillingCycle != "" {
		client.BillingCycle = models.BillingCycleType(req.BillingCycle)
	} else {
		client.BillingCycle = models.BillingMonthly
	}
	if req.InfraCloud != nil {
		client.InfraCloud = *req.InfraCloud
	}
	if req.InfraOnPrem != nil {
		client.InfraOnPrem = *req.InfraOnPrem
	}
	for _, c := range req.Contacts {
		client.Contacts = append(client.Contacts, models.ClientContact{
			Name:  c.Name,
			Role:  c.Role,
			Phone: c.Phone,
			Email: c.Email,
		})
	}

	created, err := s.clientRepo.Create(client)
	if repositories.IsUniqueViolation(err, "short_name") {
		return models.Client{}, validationErrorf("client with short name %q already exists", req.ShortName)
	}
	if repositories.IsCheckViolation(err) {
		return models.Client{}, errors.Wrapf(ErrInvalidClientCode, "%q", req.ShortName)
	}
	if err != nil {
		return models.Client{}, err
	}

	return s.clientRepo.FindByID(created.ID)
}

// UpdateClient applies a partial update to a client. The short name can
// only change while no display IDs have been generated under it; after
// that it is the namespace of existing IDs and is locked.
func (s *ClientService) UpdateClient(id string, req dto.UpdateClientRequest) (models.Client, error) {
	client, err := s.clientRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Client{}, errors.Wrap(ErrNotFound, "client")
	}
	if err != nil {
		return models.Client{}, err
	}

	if req.ShortName != nil && *req.ShortName != client.ShortName {
		if !utils.IsValidClientCode(*req.ShortName) {
			return models.Client{}, errors.Wrapf(ErrInvalidClientCode, "%q", *req.ShortName)
		}
		locked, err := s.clientRepo.HasGeneratedIDs(id)
		if err != nil {
			return models.Client{}, err
		}
		if locked {
			return models.Client{}, errors.Wrapf(ErrShortNameLocked, "client %q", client.ShortName)
		}
		client.ShortName = *req.ShortName
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Industry != nil {
		client.Industry = *req.Industry
	}
	if req.ContactPerson != nil {
		client.ContactPerson = *req.ContactPerson
	}
	if req.Position != nil {
		client.Position = *req.Position
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.SLA != nil {
		client.SLA = models.SLAType(*req.SLA)
	}
	if req.SecurityLevel != nil {
		client.SecurityLevel = models.SecurityLevelType(*req.SecurityLevel)
	}
	if req.ContractNumber != nil {
		client.ContractNumber = *req.ContractNumber
	}
	if req.ContractDate != nil {
		contractDate, err := utils.ParseDatePtr(req.ContractDate)
		if err != nil {
			return models.Client{}, err
		}
		client.ContractDate = contractDate
	}
	if req.ContractExpiry != nil {
		contractExpiry, err := utils.ParseDatePtr(req.ContractExpiry)
		if err != nil {
			return models.Client{}, err
		}
		client.ContractExpiry = contractExpiry
	}
	if req.BillingCycle != nil {
		client.BillingCycle = models.BillingCycleType(*req.BillingCycle)
	}
	if req.InfraCloud != nil {
		client.InfraCloud = *req.InfraCloud
	}
	if req.InfraOnPrem != nil {
		client.InfraOnPrem = *req.InfraOnPrem
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	// Preloaded associations must not be saved back
	client.Contacts = nil
	client.Projects = nil
	client.Assets = nil
	client.Vulnerabilities = nil
	client.Tickets = nil

	if err := s.clientRepo.Update(client); err != nil {
		if repositories.IsUniqueViolation(err, "short_name") {
			return models.Client{}, validationErrorf("client with short name %q already exists", client.ShortName)
		}
		return models.Client{}, err
	}

	if req.Contacts != nil {
		contacts := make([]models.ClientContact, 0, len(*req.Contacts))
		for _, c := range *req.Contacts {
			contacts = append(contacts, models.ClientContact{
				ClientID: id,
				Name:     c.Name,
				Role:     c.Role,
				Phone:    c.Phone,
				Email:    c.Email,
			})
		}
		if err := s.clientRepo.ReplaceContacts(id, contacts); err != nil {
			return models.Client{}, err
		}
	}

	return s.clientRepo.FindByID(id)
}

// DeleteClient removes a client. Deletion is refused while the client
// still has active tickets, vulnerabilities or assets; projects and
// their gantt tasks are removed along with the client.
func (s *ClientService) DeleteClient(id string) error {
	client, err := s.clientRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(ErrNotFound, "client")
	}
	if err != nil {
		return err
	}
	if client.IsDefault {
		return validationErrorf("the default client cannot be deleted")
	}

	dependents, err := s.clientRepo.CountActiveDependents(id)
	if err != nil {
		return err
	}
	if dependents > 0 {
		return validationErrorf("client has %d active tickets, vulnerabilities or assets", dependents)
	}

	return s.clientRepo.Delete(id)
}

// AddContact creates a contact for a client
func (s *ClientService) AddContact(clientID string, req dto.ContactRequest) (models.ClientContact, error) {
	if _, err := s.clientRepo.FindByID(clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ClientContact{}, errors.Wrap(ErrNotFound, "client")
		}
		return models.ClientContact{}, err
	}

	return s.clientRepo.CreateContact(models.ClientContact{
		ClientID: clientID,
		Name:     req.Name,
		Role:     req.Role,
		Phone:    req.Phone,
		Email:    req.Email,
	})
}

// UpdateContact updates a contact of a client
func (s *ClientService) UpdateContact(clientID, contactID string, req dto.ContactRequest) (models.ClientContact, error) {
	contact, err := s.clientRepo.FindContact(clientID, contactID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ClientContact{}, errors.Wrap(ErrNotFound, "contact")
	}
	if err != nil {
		return models.ClientContact{}, err
	}

	contact.Name = req.Name
	contact.Role = req.Role
	contact.Phone = req.Phone
	contact.Email = req.Email

	if err := s.clientRepo.UpdateContact(contact); err != nil {
		return models.ClientContact{}, err
	}
	return contact, nil
}

// DeleteContact removes a contact from a client
func (s *ClientService) DeleteContact(clientID, contactID string) error {
	if _, err := s.clientRepo.FindContact(clientID, contactID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(ErrNotFound, "contact")
		}
		return err
	}
	return s.clientRepo.DeleteContact(clientID, contactID)
}

// optional maps an empty string to nil for date parsing helpers
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
