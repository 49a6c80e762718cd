package dto

// UpdateB2BStatusRequest defines the payload for an admin approval decision.
type UpdateB2BStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED PENDING"`
}
