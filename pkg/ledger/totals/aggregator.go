package totals

import (
	"context"

	"cashbook-be/internal/entity"
	"cashbook-be/internal/pkg/apperror"
	"cashbook-be/internal/repository/contract"
	"cashbook-be/pkg/ledger/filter"

	"github.com/shopspring/decimal"
)

// Totals summarizes a filtered record set. NetAmount = CashIn - CashOut.
type Totals struct {
	CashIn    decimal.Decimal `json:"cashIn"`
	CashOut   decimal.Decimal `json:"cashOut"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

func FromSums(sums *entity.RecordSums) Totals {
	if sums == nil {
		return Totals{CashIn: decimal.Zero, CashOut: decimal.Zero, NetAmount: decimal.Zero}
	}
	return Totals{
		CashIn:    sums.CashIn,
		CashOut:   sums.CashOut,
		NetAmount: sums.CashIn.Sub(sums.CashOut),
	}
}

// Aggregator computes totals over the whole filtered set, never a page of it.
type Aggregator struct{}

// NewAggregator creates a new totals aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

func (a *Aggregator) Aggregate(ctx context.Context, repo contract.RecordRepository, f filter.RecordFilter) (Totals, error) {
	sums, err := repo.SumByType(ctx, f.Specifications()...)
	if err != nil {
		return Totals{}, apperror.Internal(err)
	}
	return FromSums(sums), nil
}
