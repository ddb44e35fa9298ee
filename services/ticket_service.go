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

// TicketService handles business logic for tickets, their messages and
// their vulnerability links
type TicketService struct {
	ticketRepo *repositories.TicketRepository
	clientRepo *repositories.ClientRepository
	vulnRepo   *repositories.VulnerabilityRepository
	userRepo   *repositories.UserAccountRepository
	displayIDs *DisplayIDService
}

// NewTicketService creates a new ticket service instance
func NewTicketService() *TicketService {
	return &TicketService{
		ticketRepo: repositories.NewTicketRepository(),
		clientRepo: repositories.NewClientRepository(),
		vulnRepo:   repositories.NewVulnerabilityRepository(),
		userRepo:   repositories.NewUserAccountRepository(),
		displayIDs: NewDisplayIDService(),
	}
}

// ListTickets retrieves tickets with pagination and filtering
func (s *TicketService) ListTickets(filter dto.TicketFilter) (dto.TicketListResponse, error) {
	filter.Normalize()

	tickets, totalCount, err := s.ticketRepo.FindWithPagination(
		filter.Page, filter.PageSize,
		filter.ClientID, filter.Status, filter.Priority, filter.Search,
	)
	if err != nil {
		return dto.TicketListResponse{}, err
	}

	return dto.TicketListResponse{
		Tickets:  tickets,
		ListMeta: dto.NewListMeta(totalCount, filter.Page, filter.PageSize),
	}, nil
}

// GetTicket retrieves a ticket with its messages and linked vulnerabilities
func (s *TicketService) GetTicket(id string) (models.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Ticket{}, errors.Wrap(ErrNotFound, "ticket")
	}
	return ticket, err
}

// CreateTicket validates the client, people and vulnerability links,
// assigns the next display ID and inserts the ticket with its links in
// one transaction. Display-ID collisions are retried once after a
// rescan, then surfaced as ErrDuplicateIdentifier.
func (s *TicketService) CreateTicket(req dto.CreateTicketRequest) (models.Ticket, error) {
	client, err := s.clientRepo.FindByID(req.ClientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Ticket{}, errors.Wrap(ErrNotFound, "client")
	}
	if err != nil {
		return models.Ticket{}, err
	}

	if err := s.validatePeople(req.AssigneeID, req.ReporterID); err != nil {
		return models.Ticket{}, err
	}

	dueDate, err := utils.ParseDatePtr(req.DueDate)
	if err != nil {
		return models.Ticket{}, err
	}

	status := models.TicketOpen
	if req.Status != "" {
		status = models.TicketStatus(req.Status)
	}

	ticket := models.Ticket{
		ClientID:    req.ClientID,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		ReporterID:  req.ReporterID,
		Priority:    models.PriorityType(req.Priority),
		Status:      status,
		DueDate:     dueDate,
	}

	err = s.insertWithDisplayID(&ticket, client, req.VulnerabilityIDs, false)
	if repositories.IsUniqueViolation(err, "display_id") {
		err = s.insertWithDisplayID(&ticket, client, req.VulnerabilityIDs, true)
		if repositories.IsUniqueViolation(err, "display_id") {
			return models.Ticket{}, errors.Wrapf(ErrDuplicateIdentifier, "ticket %q", ticket.DisplayID)
		}
	}
	if err != nil {
		return models.Ticket{}, err
	}

	return s.ticketRepo.FindByID(ticket.ID)
}

// insertWithDisplayID runs one transactional create attempt: lock and
// validate the vulnerabilities being linked, draw the display ID and
// insert ticket plus junction rows together.
func (s *TicketService) insertWithDisplayID(ticket *models.Ticket, client models.Client, vulnerabilityIDs []string, rescan bool) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.lockAndValidateLinks(tx, client.ID, vulnerabilityIDs); err != nil {
			return err
		}

		var displayID string
		var err error
		if rescan {
			var highest int64
			highest, err = s.ticketRepo.MaxDisplayNumber(tx, client.ShortName)
			if err != nil {
				return err
			}
			displayID, err = s.displayIDs.NextAfter(tx, utils.TicketIDLetter, client, highest)
		} else {
			displayID, err = s.displayIDs.Next(tx, utils.TicketIDLetter, client)
		}
		if err != nil {
			return err
		}

		ticket.ID = ""
		ticket.DisplayID = displayID
		if err := s.ticketRepo.Create(tx, ticket); err != nil {
			return err
		}

		if len(vulnerabilityIDs) == 0 {
			return nil
		}
		return s.ticketRepo.ReplaceVulnerabilityLinks(tx, ticket.ID, vulnerabilityIDs)
	})
}

// lockAndValidateLinks takes FOR UPDATE locks on the vulnerabilities a
// ticket is being linked to and verifies each one exists, is not
// deleted and belongs to the ticket's client. Holding the locks until
// commit closes the race against a concurrent delete of the same
// vulnerabilities (which locks the same rows before checking for
// blocking tickets).
func (s *TicketService) lockAndValidateLinks(tx *gorm.DB, clientID string, vulnerabilityIDs []string) error {
	if len(vulnerabilityIDs) == 0 {
		return nil
	}

	vulnerabilities, err := s.vulnRepo.FindManyForUpdate(tx, vulnerabilityIDs)
	if err != nil {
		return err
	}

	found := make(map[string]models.Vulnerability, len(vulnerabilities))
	for _, v := range vulnerabilities {
		found[v.ID] = v
	}
	for _, id := range vulnerabilityIDs {
		vulnerability, ok := found[id]
		if !ok {
			return errors.Wrapf(ErrNotFound, "vulnerability %s", id)
		}
		if vulnerability.ClientID != clientID {
			return validationErrorf("all vulnerabilities must belong to the same client as the ticket")
		}
	}
	return nil
}

// UpdateTicket applies a partial update. When vulnerability links are
// provided they replace the existing set wholesale, under the same
// locking rules as create.
func (s *TicketService) UpdateTicket(id string, req dto.UpdateTicketRequest) (models.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Ticket{}, errors.Wrap(ErrNotFound, "ticket")
	}
	if err != nil {
		return models.Ticket{}, err
	}

	if err := s.validatePeople(req.AssigneeID, req.ReporterID); err != nil {
		return models.Ticket{}, err
	}

	if req.Title != nil {
		ticket.Title = *req.Title
	}
	if req.Description != nil {
		ticket.Description = *req.Description
	}
	if req.AssigneeID != nil {
		ticket.AssigneeID = req.AssigneeID
	}
	if req.ReporterID != nil {
		ticket.ReporterID = req.ReporterID
	}
	if req.Priority != nil {
		ticket.Priority = models.PriorityType(*req.Priority)
	}
	if req.Status != nil {
		ticket.Status = models.TicketStatus(*req.Status)
	}
	if req.Resolution != nil {
		ticket.Resolution = *req.Resolution
	}
	if req.DueDate != nil {
		dueDate, err := utils.ParseDatePtr(req.DueDate)
		if err != nil {
			return models.Ticket{}, err
		}
		ticket.DueDate = dueDate
	}

	// Preloaded associations must not be saved back
	ticket.Client = models.Client{}
	ticket.Assignee = nil
	ticket.Reporter = nil
	ticket.Messages = nil
	ticket.Vulnerabilities = nil

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.ticketRepo.Update(tx, ticket); err != nil {
			return err
		}
		if req.VulnerabilityIDs == nil {
			return nil
		}
		if err := s.lockAndValidateLinks(tx, ticket.ClientID, *req.VulnerabilityIDs); err != nil {
			return err
		}
		return s.ticketRepo.ReplaceVulnerabilityLinks(tx, ticket.ID, *req.VulnerabilityIDs)
	})
	if err != nil {
		return models.Ticket{}, err
	}

	return s.ticketRepo.FindByID(id)
}

// DeleteTicket soft-deletes a ticket. Tickets have no dependents, so
// there is nothing to guard; junction rows stay in place and the
// blocking checks stop counting the ticket once it is deleted.
func (s *TicketService) DeleteTicket(id string) error {
	exists, err := s.ticketRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrap(ErrNotFound, "ticket")
	}
	return s.ticketRepo.SoftDelete(id)
}

// AddMessage appends a message to a ticket
func (s *TicketService) AddMessage(ticketID string, req dto.CreateTicketMessageRequest) (models.TicketMessage, error) {
	exists, err := s.ticketRepo.Exists(ticketID)
	if err != nil {
		return models.TicketMessage{}, err
	}
	if !exists {
		return models.TicketMessage{}, errors.Wrap(ErrNotFound, "ticket")
	}

	if req.AuthorID != nil {
		if _, err := s.userRepo.FindByID(*req.AuthorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.TicketMessage{}, errors.Wrap(ErrNotFound, "author")
			}
			return models.TicketMessage{}, err
		}
	}

	return s.ticketRepo.AddMessage(models.TicketMessage{
		TicketID: ticketID,
		AuthorID: req.AuthorID,
		Message:  req.Message,
	})
}

// ListMessages retrieves all messages of a ticket, oldest first
func (s *TicketService) ListMessages(ticketID string) ([]models.TicketMessage, error) {
	exists, err := s.ticketRepo.Exists(ticketID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.Wrap(ErrNotFound, "ticket")
	}
	return s.ticketRepo.FindMessages(ticketID)
}

// validatePeople checks the optional assignee and reporter references
func (s *TicketService) validatePeople(assigneeID, reporterID *string) error {
	for _, ref := range []struct {
		id   *string
		name string
	}{
		{assigneeID, "assignee"},
		{reporterID, "reporter"},
	} {
		if ref.id == nil {
			continue
		}
		if _, err := s.userRepo.FindByID(*ref.id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrap(ErrNotFound, ref.name)
			}
			return err
		}
	}
	return nil
}
