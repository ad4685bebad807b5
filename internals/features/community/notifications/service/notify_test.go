package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"donavida_backend/internals/features/community/notifications/model"
)

func TestNewCampaignPublished(t *testing.T) {
	organizer := uuid.New()
	campaign := uuid.New()

	n := NewCampaignPublished(organizer, campaign, "Escuela Rural de Sopocachi")
	if n.NotificationType != model.TypeCampaignPublished {
		t.Fatalf("tipo = %q", n.NotificationType)
	}
	if n.NotificationUserID != organizer {
		t.Fatal("la notificación debe ir al organizador")
	}
	if !strings.Contains(n.NotificationBody, "Escuela Rural de Sopocachi") {
		t.Fatalf("el cuerpo debe nombrar la campaña: %q", n.NotificationBody)
	}
	if n.NotificationRead {
		t.Fatal("una notificación nueva nace sin leer")
	}

	var payload map[string]string
	if err := json.Unmarshal(n.NotificationData, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload["campaignId"] != campaign.String() {
		t.Fatalf("payload.campaignId = %q", payload["campaignId"])
	}
}

func TestNewCommentReceived(t *testing.T) {
	organizer := uuid.New()
	campaign := uuid.New()
	comment := uuid.New()

	n := NewCommentReceived(organizer, campaign, comment, "María", "Agua para Achocalla")
	if n.NotificationType != model.TypeCommentReceived {
		t.Fatalf("tipo = %q", n.NotificationType)
	}
	if !strings.Contains(n.NotificationBody, "María") ||
		!strings.Contains(n.NotificationBody, "Agua para Achocalla") {
		t.Fatalf("cuerpo incompleto: %q", n.NotificationBody)
	}

	var payload map[string]string
	if err := json.Unmarshal(n.NotificationData, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload["commentId"] != comment.String() {
		t.Fatalf("payload.commentId = %q", payload["commentId"])
	}
}

func TestNewCommentReceivedAnonymousFallback(t *testing.T) {
	n := NewCommentReceived(uuid.New(), uuid.New(), uuid.New(), "", "Agua para Achocalla")
	if !strings.HasPrefix(n.NotificationBody, "Alguien ") {
		t.Fatalf("sin nombre debe usar el genérico: %q", n.NotificationBody)
	}
}
