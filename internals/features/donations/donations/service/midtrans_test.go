package service

import (
	"testing"

	"donavida_backend/internals/features/donations/donations/model"
)

func TestMapMidtransStatus(t *testing.T) {
	cases := []struct {
		tx    string
		fraud string
		want  string
	}{
		{"settlement", "", model.StatusPaid},
		{"capture", "accept", model.StatusPaid},
		{"capture", "challenge", ""},
		{"pending", "", ""},
		{"authorize", "", ""},
		{"deny", "", model.StatusFailed},
		{"cancel", "", model.StatusFailed},
		{"failure", "", model.StatusFailed},
		{"expire", "", model.StatusExpired},
		{"refund", "", model.StatusRefunded},
		{"partial_refund", "", model.StatusRefunded},
		{"chargeback", "", model.StatusRefunded},
		{"algo_raro", "", ""},
	}
	for _, tc := range cases {
		if got := MapMidtransStatus(tc.tx, tc.fraud); got != tc.want {
			t.Errorf("MapMidtransStatus(%q, %q) = %q, quiero %q", tc.tx, tc.fraud, got, tc.want)
		}
	}
}
