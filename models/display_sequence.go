package models

// DisplaySequence is the per-(entity-type, client) counter backing
// display-ID assignment. EntityType is the display-ID prefix letter
// ("T" for tickets, "V" for vulnerabilities). LastValue is advanced
// atomically inside the creating transaction, so two concurrent
// creators for the same client can never be handed the same number.
// Rows are never deleted; a client's sequence outlives soft-deleted
// tickets and vulnerabilities, which keeps numbers from being reused.
type DisplaySequence struct {
	EntityType string `json:"entityType" gorm:"primaryKey;type:varchar(1)"`
	ClientID   string `json:"clientId" gorm:"primaryKey;type:uuid"`
	LastValue  int64  `json:"lastValue" gorm:"not null;default:0"`
}
