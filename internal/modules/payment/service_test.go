package payment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryLedger keeps sale balances in a map.
type memoryLedger struct {
	balances map[int64]decimal.Decimal
	payments []*Payment
}

func (m *memoryLedger) RecordPayment(_ context.Context, p *Payment) (decimal.Decimal, error) {
	b, ok := m.balances[p.SaleID]
	if !ok {
		return decimal.Zero, ErrSaleNotFound
	}
	b = b.Sub(p.Amount)
	m.balances[p.SaleID] = b
	m.payments = append(m.payments, p)
	return b, nil
}

func (m *memoryLedger) ListOutstanding(context.Context) ([]*Outstanding, error) {
	return []*Outstanding{}, nil
}

func newLedger() *memoryLedger {
	return &memoryLedger{balances: map[int64]decimal.Decimal{56: decimal.RequireFromString("290")}}
}

func TestRecordPaymentLowersBalance(t *testing.T) {
	ledger := newLedger()
	receipt, err := NewService(ledger).RecordPayment(context.Background(), PaymentRequest{
		SaleID: "56", Amount: "100", Method: "Efectivo", Seller: "ana",
	})
	require.NoError(t, err)
	assert.True(t, receipt.Balance.Equal(decimal.RequireFromString("190")))
	require.Len(t, ledger.payments, 1)
	assert.Equal(t, "ana", ledger.payments[0].Seller)
}

func TestRecordPaymentAllowsOverpayment(t *testing.T) {
	receipt, err := NewService(newLedger()).RecordPayment(context.Background(), PaymentRequest{SaleID: "56", Amount: "300,50"})
	require.NoError(t, err)
	assert.True(t, receipt.Balance.Equal(decimal.RequireFromString("-10.5")))
}

func TestRecordPaymentValidation(t *testing.T) {
	svc := NewService(newLedger())
	cases := []struct {
		req  PaymentRequest
		want error
	}{
		{PaymentRequest{Amount: "10"}, ErrInvalidSale},
		{PaymentRequest{SaleID: "-1", Amount: "10"}, ErrInvalidSale},
		{PaymentRequest{SaleID: "56"}, ErrInvalidAmount},
		{PaymentRequest{SaleID: "56", Amount: "0"}, ErrInvalidAmount},
		{PaymentRequest{SaleID: "56", Amount: "-5"}, ErrInvalidAmount},
		{PaymentRequest{SaleID: "56", Amount: "cien"}, ErrInvalidAmount},
		{PaymentRequest{SaleID: "99", Amount: "10"}, ErrSaleNotFound},
	}
	for _, tc := range cases {
		_, err := svc.RecordPayment(context.Background(), tc.req)
		assert.ErrorIs(t, err, tc.want, "%+v", tc.req)
	}
}
