package models

import (
	"time"

	"github.com/google/uuid"
)

// Portfolio representa una cartera de inversión de un usuario.
// Cada portafolio pertenece a exactamente un usuario.
type Portfolio struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name" binding:"required"`
	BaseCurrency string    `json:"base_currency" binding:"required"`
	CreatedAt    time.Time `json:"created_at"`
}

// GenerateUUID - Función auxiliar para generar IDs únicos
func GenerateUUID() string {
	return uuid.NewString()
}
