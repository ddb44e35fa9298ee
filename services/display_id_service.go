package services

import (
	"github.com/pkg/errors"
	"github.com/vulndesk-api/models"
	"github.com/vulndesk-api/repositories"
	"github.com/vulndesk-api/utils"
	"gorm.io/gorm"
)

// DisplayIDService hands out the human-readable sequential identifiers
// shown in place of internal UUIDs: T-TSV-001, V-FNH-042. Numbers are
// scoped per (entity letter, client), strictly increasing in commit
// order, and never reused even after soft-deletion.
type DisplayIDService struct {
	sequenceRepo *repositories.DisplaySequenceRepository
}

// NewDisplayIDService creates a new display ID service instance
func NewDisplayIDService() *DisplayIDService {
	return &DisplayIDService{
		sequenceRepo: repositories.NewDisplaySequenceRepository(),
	}
}

// Next returns the next display ID for the client. Must run inside the
// transaction that inserts the row: the counter upsert locks the
// sequence row until commit, serializing concurrent creators for the
// same client, and a rollback reverts the advance.
func (s *DisplayIDService) Next(tx *gorm.DB, letter string, client models.Client) (string, error) {
	if !utils.IsValidClientCode(client.ShortName) {
		return "", errors.Wrapf(ErrInvalidClientCode, "client %q", client.ShortName)
	}

	n, err := s.sequenceRepo.Next(tx, letter, client.ID)
	if err != nil {
		return "", errors.Wrap(err, "failed to advance display sequence")
	}

	return utils.FormatDisplayID(letter, client.ShortName, n), nil
}

// NextAfter returns a display ID guaranteed to be numbered past
// highestAssigned. This is the collision-recovery path: when an insert
// hits the display_id unique constraint (legacy rows the counter never
// saw), the caller rescans the highest assigned suffix and generates
// once more from here. A second collision is surfaced as
// ErrDuplicateIdentifier by the caller.
func (s *DisplayIDService) NextAfter(tx *gorm.DB, letter string, client models.Client, highestAssigned int64) (string, error) {
	if !utils.IsValidClientCode(client.ShortName) {
		return "", errors.Wrapf(ErrInvalidClientCode, "client %q", client.ShortName)
	}

	n, err := s.sequenceRepo.AdvancePast(tx, letter, client.ID, highestAssigned)
	if err != nil {
		return "", errors.Wrap(err, "failed to advance display sequence")
	}

	return utils.FormatDisplayID(letter, client.ShortName, n), nil
}
