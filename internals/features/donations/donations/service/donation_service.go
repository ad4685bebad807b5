package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	campaignModel "donavida_backend/internals/features/campaigns/campaigns/model"
	notifModel "donavida_backend/internals/features/community/notifications/model"
	"donavida_backend/internals/features/donations/donations/model"
	helper "donavida_backend/internals/helpers"
)

var ErrDonationNotFound = errors.New("donación no encontrada")

// ApplyPaymentStatus mueve una donación a newStatus de forma idempotente y,
// en la transición pending → paid, acumula el monto en la campaña y notifica
// al organizador. Fila bloqueada durante toda la transición: dos webhooks
// simultáneos del mismo order_id no pueden duplicar el rollup.
func ApplyPaymentStatus(ctx context.Context, db *gorm.DB, orderID, newStatus string) error {
	if newStatus == "" {
		return nil
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d model.DonationModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("donation_order_id = ?", orderID).
			First(&d).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDonationNotFound
		}
		if err != nil {
			return err
		}

		if d.DonationStatus == newStatus {
			return nil
		}
		// un pago liquidado solo puede salir hacia refunded
		if d.DonationStatus == model.StatusPaid && newStatus != model.StatusRefunded {
			return nil
		}

		updates := map[string]interface{}{"donation_status": newStatus}
		if newStatus == model.StatusPaid {
			now := time.Now()
			updates["donation_paid_at"] = now
		}
		if err := tx.Model(&model.DonationModel{}).
			Where("donation_id = ?", d.DonationID).
			Updates(updates).Error; err != nil {
			return err
		}

		switch newStatus {
		case model.StatusPaid:
			if err := rollupPaid(tx, &d); err != nil {
				return err
			}
		case model.StatusRefunded:
			if d.DonationStatus == model.StatusPaid {
				if err := rollupRefund(tx, &d); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func rollupPaid(tx *gorm.DB, d *model.DonationModel) error {
	res := tx.Model(&campaignModel.CampaignModel{}).
		Where("campaign_id = ?", d.DonationCampaignID).
		Updates(map[string]interface{}{
			"campaign_raised_amount": gorm.Expr("campaign_raised_amount + ?", d.DonationAmount),
			"campaign_donor_count":   gorm.Expr("campaign_donor_count + 1"),
		})
	if res.Error != nil {
		return res.Error
	}

	// meta alcanzada → completed (solo desde active)
	if err := tx.Model(&campaignModel.CampaignModel{}).
		Where("campaign_id = ? AND campaign_status = ? AND campaign_raised_amount >= campaign_goal_amount",
			d.DonationCampaignID, campaignModel.StatusActive).
		Update("campaign_status", campaignModel.StatusCompleted).Error; err != nil {
		return err
	}

	return notifyOrganizer(tx, d)
}

func rollupRefund(tx *gorm.DB, d *model.DonationModel) error {
	return tx.Model(&campaignModel.CampaignModel{}).
		Where("campaign_id = ?", d.DonationCampaignID).
		Updates(map[string]interface{}{
			"campaign_raised_amount": gorm.Expr("GREATEST(campaign_raised_amount - ?, 0)", d.DonationAmount),
			"campaign_donor_count":   gorm.Expr("GREATEST(campaign_donor_count - 1, 0)"),
		}).Error
}

func notifyOrganizer(tx *gorm.DB, d *model.DonationModel) error {
	var camp campaignModel.CampaignModel
	if err := tx.Select("campaign_id", "campaign_user_id", "campaign_title").
		Where("campaign_id = ?", d.DonationCampaignID).
		First(&camp).Error; err != nil {
		return err
	}

	donorName := d.DonationName
	if d.DonationIsAnonymous || donorName == "" {
		donorName = "Un donante anónimo"
	}
	payload, _ := json.Marshal(map[string]interface{}{
		"campaignId": camp.CampaignID,
		"donationId": d.DonationID,
		"amount":     d.DonationAmount,
	})
	n := notifModel.NotificationModel{
		NotificationUserID: camp.CampaignUserID,
		NotificationType:   notifModel.TypeDonationReceived,
		NotificationTitle:  "¡Recibiste una donación!",
		NotificationBody: fmt.Sprintf("%s donó Bs %s a \"%s\"",
			donorName, helper.FormatAmount(d.DonationAmount), camp.CampaignTitle),
		NotificationData: datatypes.JSON(payload),
	}
	if err := tx.Create(&n).Error; err != nil {
		// la notificación no puede tumbar el pago
		log.Printf("[WARN] notificación de donación %s: %v", d.DonationID, err)
	}
	return nil
}
