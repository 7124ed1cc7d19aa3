package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pbarbosa/vida/internal/domain"
	"github.com/pbarbosa/vida/internal/store"
)

type financeService struct {
	kv store.KV
}

func NewFinanceService(kv store.KV) FinanceService {
	return &financeService{kv: kv}
}

func (s *financeService) Add(ctx context.Context, tx *domain.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now().UTC()
	}
	txs, err := store.LoadSlice[domain.Transaction](ctx, s.kv, store.KeyTransactions)
	if err != nil {
		return err
	}
	txs = append(txs, *tx)
	return store.SaveSlice(ctx, s.kv, store.KeyTransactions, txs)
}

func (s *financeService) List(ctx context.Context) ([]domain.Transaction, error) {
	return store.LoadSlice[domain.Transaction](ctx, s.kv, store.KeyTransactions)
}

func (s *financeService) Delete(ctx context.Context, id string) error {
	txs, err := store.LoadSlice[domain.Transaction](ctx, s.kv, store.KeyTransactions)
	if err != nil {
		return err
	}
	kept := txs[:0]
	found := false
	for _, tx := range txs {
		if tx.ID == id {
			found = true
			continue
		}
		kept = append(kept, tx)
	}
	if !found {
		return ErrNotFound
	}
	return store.SaveSlice(ctx, s.kv, store.KeyTransactions, kept)
}

func (s *financeService) Summary(ctx context.Context, year int, month time.Month) (*MonthlySummary, error) {
	txs, err := store.LoadSlice[domain.Transaction](ctx, s.kv, store.KeyTransactions)
	if err != nil {
		return nil, err
	}

	sum := &MonthlySummary{
		Year:       year,
		Month:      month,
		ByCategory: map[string]float64{},
	}
	for _, tx := range txs {
		if tx.Date.Year() != year || tx.Date.Month() != month {
			continue
		}
		switch tx.Kind {
		case domain.TransactionIncome:
			sum.Income += tx.Amount
		case domain.TransactionExpense:
			sum.Expenses += tx.Amount
			sum.ByCategory[tx.Category] += tx.Amount
		}
	}
	sum.Net = sum.Income - sum.Expenses
	return sum, nil
}
