package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"donavida_backend/internals/features/donations/donations/model"
)

var SnapClient snap.Client

// InitMidtrans inicializa el cliente Snap. Sandbox salvo que se pida prod.
func InitMidtrans(serverKey string, useProd bool) {
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// GenerateSnapToken crea la transacción Snap para una donación pendiente y
// devuelve el token que el cliente usa para abrir el checkout.
func GenerateSnapToken(d *model.DonationModel, name, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  d.DonationOrderID,
			GrossAmt: int64(d.DonationAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}
	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// MapMidtransStatus traduce el par transaction_status/fraud_status del
// webhook a nuestro estado interno. "" significa dejar el estado como está.
func MapMidtransStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return model.StatusPaid
		}
		return ""
	case "settlement":
		return model.StatusPaid
	case "deny", "cancel", "failure":
		return model.StatusFailed
	case "expire":
		return model.StatusExpired
	case "refund", "partial_refund", "chargeback":
		return model.StatusRefunded
	default: // pending, authorize
		return ""
	}
}
