package dto

// CreateReferenceItemRequest represents the payload for creating an
// asset type or scanner catalog entry
type CreateReferenceItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateReferenceItemRequest represents the payload for updating a
// catalog entry
type UpdateReferenceItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
