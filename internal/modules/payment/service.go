package payment

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Service defines the running-account payment logic.
type Service interface {
	RecordPayment(ctx context.Context, req PaymentRequest) (*Receipt, error)
	ListOutstanding(ctx context.Context) ([]*Outstanding, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) RecordPayment(ctx context.Context, req PaymentRequest) (*Receipt, error) {
	saleID, err := strconv.ParseInt(strings.TrimSpace(req.SaleID), 10, 64)
	if err != nil || saleID <= 0 {
		return nil, ErrInvalidSale
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(req.Amount), ",", "."))
	if err != nil || !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	p := &Payment{
		SaleID:   saleID,
		Customer: strings.TrimSpace(req.Customer),
		Amount:   amount.Round(2),
		Method:   strings.TrimSpace(req.Method),
		Seller:   req.Seller,
		Notes:    strings.TrimSpace(req.Notes),
	}
	balance, err := s.repo.RecordPayment(ctx, p)
	if err != nil {
		return nil, err
	}
	if balance.IsNegative() {
		log.Printf("WARN venta %d: saldo negativo %s tras pago de %s", saleID, balance.StringFixed(2), p.Amount.StringFixed(2))
	}
	return &Receipt{Payment: p, Balance: balance}, nil
}

func (s *service) ListOutstanding(ctx context.Context) ([]*Outstanding, error) {
	return s.repo.ListOutstanding(ctx)
}
