package services

import (
	"github.com/pkg/errors"
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/models"
	"github.com/vulndesk-api/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// WorkerService handles business logic for user accounts, both internal
// workers and client-side users
type WorkerService struct {
	userRepo   *repositories.UserAccountRepository
	clientRepo *repositories.ClientRepository
}

// NewWorkerService creates a new worker service instance
func NewWorkerService() *WorkerService {
	return &WorkerService{
		userRepo:   repositories.NewUserAccountRepository(),
		clientRepo: repositories.NewClientRepository(),
	}
}

// ListWorkers retrieves user accounts with pagination, optionally
// filtered by account type
func (s *WorkerService) ListWorkers(filter dto.WorkerFilter) (dto.WorkerListResponse, error) {
	filter.Normalize()

	workers, totalCount, err := s.userRepo.FindWithPagination(filter.Page, filter.PageSize, filter.UserType)
	if err != nil {
		return dto.WorkerListResponse{}, err
	}
	for i := range workers {
		workers[i].Password = ""
	}

	return dto.WorkerListResponse{
		Workers:  workers,
		ListMeta: dto.NewListMeta(totalCount, filter.Page, filter.PageSize),
	}, nil
}

// GetWorker retrieves a single user account
func (s *WorkerService) GetWorker(id string) (models.UserAccount, error) {
	account, err := s.userRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserAccount{}, errors.Wrap(ErrNotFound, "account")
	}
	if err != nil {
		return models.UserAccount{}, err
	}
	account.Password = ""
	return account, nil
}

// CreateWorker hashes the password and inserts the account. Client-side
// accounts must reference a client; worker accounts must not.
func (s *WorkerService) CreateWorker(req dto.CreateWorkerRequest) (models.UserAccount, error) {
	userType := models.UserTypeWorker
	if req.UserType != "" {
		userType = models.UserType(req.UserType)
	}
	if err := s.validateClientLink(userType, req.ClientID); err != nil {
		return models.UserAccount{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.UserAccount{}, err
	}

	account, err := s.userRepo.Create(models.UserAccount{
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hashed),
		Phone:    req.Phone,
		UserType: userType,
		ClientID: req.ClientID,
	})
	if repositories.IsUniqueViolation(err, "email") {
		return models.UserAccount{}, validationErrorf("account with email %q already exists", req.Email)
	}
	if err != nil {
		return models.UserAccount{}, err
	}

	account.Password = ""
	return account, nil
}

// UpdateWorker applies a partial update; a provided password is re-hashed
func (s *WorkerService) UpdateWorker(id string, req dto.UpdateWorkerRequest) (models.UserAccount, error) {
	account, err := s.userRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserAccount{}, errors.Wrap(ErrNotFound, "account")
	}
	if err != nil {
		return models.UserAccount{}, err
	}

	if req.FullName != nil {
		account.FullName = *req.FullName
	}
	if req.Email != nil {
		account.Email = *req.Email
	}
	if req.Phone != nil {
		account.Phone = *req.Phone
	}
	if req.UserType != nil {
		account.UserType = models.UserType(*req.UserType)
	}
	if req.ClientID != nil {
		account.ClientID = req.ClientID
	}
	if err := s.validateClientLink(account.UserType, account.ClientID); err != nil {
		return models.UserAccount{}, err
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.UserAccount{}, err
		}
		account.Password = string(hashed)
	}

	account.Client = nil

	if err := s.userRepo.Update(account); err != nil {
		if repositories.IsUniqueViolation(err, "email") {
			return models.UserAccount{}, validationErrorf("account with email %q already exists", account.Email)
		}
		return models.UserAccount{}, err
	}

	account.Password = ""
	return account, nil
}

// DeleteWorker soft-deletes a user account. Tickets keep their
// assignee and reporter references; lookups on deleted accounts
// resolve through Unscoped reads where needed.
func (s *WorkerService) DeleteWorker(id string) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(ErrNotFound, "account")
		}
		return err
	}
	return s.userRepo.Delete(id)
}

// validateClientLink enforces the account type and client reference
// pairing rule
func (s *WorkerService) validateClientLink(userType models.UserType, clientID *string) error {
	switch userType {
	case models.UserTypeClient:
		if clientID == nil {
			return validationErrorf("client accounts must reference a client")
		}
		if _, err := s.clientRepo.FindByID(*clientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrap(ErrNotFound, "client")
			}
			return err
		}
	case models.UserTypeWorker:
		if clientID != nil {
			return validationErrorf("worker accounts must not reference a client")
		}
	default:
		return validationErrorf("unknown account type %q", userType)
	}
	return nil
}
