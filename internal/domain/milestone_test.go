package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMilestone_EffectivePaymentStatus(t *testing.T) {
	tests := []struct {
		name           string
		milestone      *Milestone
		expectedStatus PaymentStatus
		expectedOK     bool
	}{
		{
			name:       "Marco não pagável - nenhum status efetivo",
			milestone:  &Milestone{HasPayment: false},
			expectedOK: false,
		},
		{
			name:           "Marco pagável com status nulo - assume Pending",
			milestone:      &Milestone{HasPayment: true, PaymentStatus: nil},
			expectedStatus: PaymentStatusPending,
			expectedOK:     true,
		},
		{
			name:           "Marco pagável com status preenchido",
			milestone:      &Milestone{HasPayment: true, PaymentStatus: paymentStatusPtr(PaymentStatusPaid)},
			expectedStatus: PaymentStatusPaid,
			expectedOK:     true,
		},
		{
			name:       "Marco não pagável com status residual - segue não pagável",
			milestone:  &Milestone{HasPayment: false, PaymentStatus: paymentStatusPtr(PaymentStatusSent)},
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ok := tt.milestone.EffectivePaymentStatus()

			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedStatus, status)
			}
		})
	}
}

func TestMilestone_NormalizePayment(t *testing.T) {
	t.Run("Marco não pagável - limpa valor e status juntos", func(t *testing.T) {
		milestone := &Milestone{
			HasPayment:    false,
			PaymentAmount: 1500.0,
			PaymentStatus: paymentStatusPtr(PaymentStatusSent),
		}

		milestone.NormalizePayment()

		assert.Zero(t, milestone.PaymentAmount)
		assert.Nil(t, milestone.PaymentStatus)
	})

	t.Run("Marco pagável - preserva o sub-registro de pagamento", func(t *testing.T) {
		milestone := &Milestone{
			HasPayment:    true,
			PaymentAmount: 1500.0,
			PaymentStatus: paymentStatusPtr(PaymentStatusSent),
		}

		milestone.NormalizePayment()

		assert.Equal(t, 1500.0, milestone.PaymentAmount)
		assert.Equal(t, PaymentStatusSent, *milestone.PaymentStatus)
	})
}

func TestDisplayMeta_Exhaustivo(t *testing.T) {
	t.Run("Todo status de marco tem rótulo e cor", func(t *testing.T) {
		for _, status := range []MilestoneStatus{
			MilestoneStatusPending,
			MilestoneStatusInProgress,
			MilestoneStatusCompleted,
		} {
			meta := status.DisplayMeta()
			assert.NotEmpty(t, meta.Label)
			assert.NotEmpty(t, meta.Color)
		}
	})

	t.Run("Status desconhecido cai no fallback Unassigned", func(t *testing.T) {
		meta := MilestoneStatus("ALGO_NOVO").DisplayMeta()
		assert.Equal(t, "Unassigned", meta.Label)

		paymentMeta := PaymentStatus("ALGO_NOVO").DisplayMeta()
		assert.Equal(t, "Unassigned", paymentMeta.Label)
	})
}

func paymentStatusPtr(s PaymentStatus) *PaymentStatus {
	return &s
}
