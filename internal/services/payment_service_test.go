package services

import (
	"testing"
	"time"

	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCustomCharge(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")

	payment, err := env.payments.RecordCustomCharge(RecordPaymentRequest{
		ClientID:    client.ID,
		Amount:      250,
		Method:      models.PaymentMethodTransfer,
		Description: "Personal training",
	})
	require.NoError(t, err)
	assert.Equal(t, 250.0, payment.Amount)
	assert.Nil(t, payment.MembershipID)
	assert.False(t, payment.PaymentDate.IsZero())
}

func TestRecordCustomChargeValidation(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")

	cases := []struct {
		name string
		req  RecordPaymentRequest
	}{
		{"zero amount", RecordPaymentRequest{ClientID: client.ID, Amount: 0, Method: models.PaymentMethodCash, Description: "x"}},
		{"negative amount", RecordPaymentRequest{ClientID: client.ID, Amount: -5, Method: models.PaymentMethodCash, Description: "x"}},
		{"bad method", RecordPaymentRequest{ClientID: client.ID, Amount: 10, Method: "crypto", Description: "x"}},
		{"blank description", RecordPaymentRequest{ClientID: client.ID, Amount: 10, Method: models.PaymentMethodCash, Description: "   "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.payments.RecordCustomCharge(tc.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRecordCustomChargeUnknownClient(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.payments.RecordCustomCharge(RecordPaymentRequest{
		ClientID:    9999,
		Amount:      10,
		Method:      models.PaymentMethodCash,
		Description: "x",
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGetPaymentsAggregatesAndFilters(t *testing.T) {
	env := newTestEnv(t)
	client := env.createClient(t, "Iryna Kovalenko")

	for _, p := range []struct {
		amount float64
		method string
	}{
		{100, models.PaymentMethodCash},
		{200, models.PaymentMethodCard},
		{50, models.PaymentMethodCash},
	} {
		_, err := env.payments.RecordCustomCharge(RecordPaymentRequest{
			ClientID:    client.ID,
			Amount:      p.amount,
			Method:      p.method,
			Description: "charge",
		})
		require.NoError(t, err)
	}

	all, err := env.payments.GetPayments(models.PaymentFilters{})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Count)
	assert.Equal(t, 350.0, all.TotalAmount)

	cash, err := env.payments.GetPayments(models.PaymentFilters{Method: models.PaymentMethodCash})
	require.NoError(t, err)
	assert.Equal(t, 2, cash.Count)
	assert.Equal(t, 150.0, cash.TotalAmount)

	today, err := env.payments.GetPayments(models.PaymentFilters{Date: time.Now().Format("2006-01-02")})
	require.NoError(t, err)
	assert.Equal(t, 3, today.Count)

	otherDay, err := env.payments.GetPayments(models.PaymentFilters{Date: "2000-01-01"})
	require.NoError(t, err)
	assert.Equal(t, 0, otherDay.Count)
}

func TestGetPaymentsSearchMatchesNameAndDescription(t *testing.T) {
	env := newTestEnv(t)
	iryna := env.createClient(t, "Iryna Kovalenko")
	oleh := env.createClient(t, "Oleh Shevchenko")

	_, err := env.payments.RecordCustomCharge(RecordPaymentRequest{
		ClientID: iryna.ID, Amount: 100, Method: models.PaymentMethodCash, Description: "Protein bar",
	})
	require.NoError(t, err)
	_, err = env.payments.RecordCustomCharge(RecordPaymentRequest{
		ClientID: oleh.ID, Amount: 200, Method: models.PaymentMethodCash, Description: "Towel rental",
	})
	require.NoError(t, err)

	byName, err := env.payments.GetPayments(models.PaymentFilters{Search: "kovalenko"})
	require.NoError(t, err)
	assert.Equal(t, 1, byName.Count)
	assert.Equal(t, 100.0, byName.TotalAmount)

	byDescription, err := env.payments.GetPayments(models.PaymentFilters{Search: "towel"})
	require.NoError(t, err)
	assert.Equal(t, 1, byDescription.Count)
	assert.Equal(t, 200.0, byDescription.TotalAmount)
}

func TestGetPaymentsRejectsUnknownMethodFilter(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.payments.GetPayments(models.PaymentFilters{Method: "crypto"})
	assert.ErrorIs(t, err, ErrValidation)
}
