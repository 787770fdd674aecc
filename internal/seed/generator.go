// Package seed synthesizes randomized expense and revenue rows and writes
// them out as a single transactional SQL script.
package seed

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/seedgen/internal/model"
)

// Source supplies uniform random numbers. *rand.Rand satisfies it.
type Source interface {
	Int63n(n int64) int64
	Float64() float64
}

// NewSource returns a math/rand source for seed, or a time-seeded one when
// seed is zero.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Ranges bounds the synthesized values. Integer bounds are inclusive; the
// finalistica fraction is drawn from [FinalisticaMin, FinalisticaMax).
type Ranges struct {
	TotalMin       int64
	TotalMax       int64
	FinalisticaMin float64
	FinalisticaMax float64
	RevenueMin     int64
	RevenueMax     int64
}

// DefaultRanges returns the stock ranges.
func DefaultRanges() Ranges {
	return Ranges{
		TotalMin:       5000,
		TotalMax:       50000,
		FinalisticaMin: 0.1,
		FinalisticaMax: 0.9,
		RevenueMin:     10000,
		RevenueMax:     100000,
	}
}

// Generator draws one row per (organization, account) pair.
type Generator struct {
	src    Source
	ranges Ranges
}

// NewGenerator creates a Generator. Ranges must already be validated.
func NewGenerator(src Source, ranges Ranges) *Generator {
	return &Generator{src: src, ranges: ranges}
}

// Ranges returns the bounds the generator draws from.
func (g *Generator) Ranges() Ranges {
	return g.ranges
}

// Expense synthesizes an expense row. Finalistica is floor(total * u), so it
// never exceeds the total.
func (g *Generator) Expense(org model.Organization, acct model.Account) model.ExpenseRow {
	total := g.intBetween(g.ranges.TotalMin, g.ranges.TotalMax)
	u := g.fraction(g.ranges.FinalisticaMin, g.ranges.FinalisticaMax)
	finalistica := decimal.NewFromInt(total).Mul(u).Floor().IntPart()

	return model.ExpenseRow{
		OrganizationID: org.ID,
		AccountID:      acct.ID,
		AccountName:    acct.Name,
		Total:          total,
		Finalistica:    finalistica,
	}
}

// Revenue synthesizes a revenue row.
func (g *Generator) Revenue(org model.Organization, acct model.Account) model.RevenueRow {
	return model.RevenueRow{
		OrganizationID: org.ID,
		AccountID:      acct.ID,
		Value:          g.intBetween(g.ranges.RevenueMin, g.ranges.RevenueMax),
	}
}

func (g *Generator) intBetween(lo, hi int64) int64 {
	return lo + g.src.Int63n(hi-lo+1)
}

func (g *Generator) fraction(lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(lo + g.src.Float64()*(hi-lo))
}
