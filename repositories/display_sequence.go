package repositories

import (
	"database/sql"

	"gorm.io/gorm"
)

// DisplaySequenceRepository handles the per-(entity-type, client)
// counters backing display-ID assignment
type DisplaySequenceRepository struct{}

// NewDisplaySequenceRepository creates a new display sequence repository instance
func NewDisplaySequenceRepository() *DisplaySequenceRepository {
	return &DisplaySequenceRepository{}
}

// Next atomically advances the counter for (entityType, clientID) and
// returns the new value. The upsert takes a row lock on the counter, so
// concurrent creators for the same client serialize here and can never
// be handed the same number. Must run inside the creating transaction:
// the lock is held until commit, and a rollback reverts the advance.
func (r *DisplaySequenceRepository) Next(tx *gorm.DB, entityType, clientID string) (int64, error) {
	var next int64
	err := tx.Raw(`
		INSERT INTO display_sequences (entity_type, client_id, last_value)
		VALUES (?, ?, 1)
		ON CONFLICT (entity_type, client_id)
		DO UPDATE SET last_value = display_sequences.last_value + 1
		RETURNING last_value`, entityType, clientID).Scan(&next).Error
	return next, err
}

// AdvancePast moves the counter to at least floor+1 and returns the new
// value. Used by the collision-recovery path when legacy rows exist
// that the counter never saw: the caller scans the highest assigned
// display-ID number and pushes the counter past it.
func (r *DisplaySequenceRepository) AdvancePast(tx *gorm.DB, entityType, clientID string, floor int64) (int64, error) {
	var next int64
	err := tx.Raw(`
		INSERT INTO display_sequences (entity_type, client_id, last_value)
		VALUES (?, ?, ?)
		ON CONFLICT (entity_type, client_id)
		DO UPDATE SET last_value = GREATEST(display_sequences.last_value + 1, EXCLUDED.last_value)
		RETURNING last_value`, entityType, clientID, floor+1).Scan(&next).Error
	return next, err
}

// maxDisplayNumber scans the highest numeric display-ID suffix ever
// assigned under a prefix in the given table, soft-deleted rows
// included. Suffixes are compared numerically via split_part + cast,
// never lexicographically: "9" must not outrank "10".
func maxDisplayNumber(tx *gorm.DB, table, prefix string) (int64, error) {
	var max sql.NullInt64
	err := tx.Table(table).
		Select("MAX(CAST(split_part(display_id, '-', 3) AS BIGINT))").
		Where("display_id LIKE ? AND display_id ~ '-[0-9]+$'", prefix+"%").
		Scan(&max).Error
	if err != nil || !max.Valid {
		return 0, err
	}
	return max.Int64, nil
}
