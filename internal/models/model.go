// Package models implements the database resources for the Outlay backend.
package models

import (
	"time"
)

// DefaultModel is the base model for all other models in the Outlay backend.
type DefaultModel struct {
	ID        uint64    `json:"id" example:"4"`                                 // Sequential ID of the resource
	CreatedAt time.Time `json:"createdAt" example:"2024-03-01T14:03:00.271152Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2024-03-01T14:03:17.198347Z"` // Last time the resource was updated
}
