package dto

import (
	"time"

	"github.com/google/uuid"

	"donavida_backend/internals/features/donations/donations/model"
)

// CreateDonationRequest: el monto llega como texto tal cual lo tipeó el
// donante (con o sin separadores de miles).
type CreateDonationRequest struct {
	Amount        string `json:"amount" validate:"required"`
	Name          string `json:"name"`
	Email         string `json:"email" validate:"omitempty,email"`
	Message       string `json:"message" validate:"omitempty,max=300"`
	IsAnonymous   bool   `json:"isAnonymous"`
	PaymentMethod string `json:"paymentMethod"`
}

type CreateDonationResponse struct {
	DonationID    uuid.UUID `json:"donationId"`
	OrderID       string    `json:"orderId"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	SnapToken     string    `json:"snapToken,omitempty"`
}

// DonorItem: fila del muro público de donantes.
type DonorItem struct {
	Name      string    `json:"name"`
	Amount    int       `json:"amount"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToDonorItem(d *model.DonationModel) DonorItem {
	name := d.DonationName
	if d.DonationIsAnonymous || name == "" {
		name = "Anónimo"
	}
	return DonorItem{
		Name:      name,
		Amount:    d.DonationAmount,
		Message:   d.DonationMessage,
		CreatedAt: d.DonationCreatedAt,
	}
}
