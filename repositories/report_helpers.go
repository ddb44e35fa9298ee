package repositories

import (
	"github.com/vulndesk-api/database"
)

// countGrouped counts non-deleted rows of model grouped by one column,
// optionally scoped to a client. Shared by the dashboard queries.
func countGrouped(model interface{}, column string, clientID string) (map[string]int64, error) {
	type row struct {
		Value string
		Count int64
	}
	var rows []row

	db := database.DB.Model(model).
		Select(column + " as value, count(*) as count").
		Group(column)
	if clientID != "" {
		db = db.Where("client_id = ?", clientID)
	}
	if err := db.Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Value] = r.Count
	}
	return counts, nil
}
