package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"

	"github.com/cleared-dev/seedgen/internal/model"
)

const (
	expensesTable = "expenses"
	revenuesTable = "revenues"
)

var (
	expenseColumns = []string{"organization_id", "account_id", "account_name", "total", "finalistica", "updated_at"}
	revenueColumns = []string{"organization_id", "account_id", "value", "updated_at"}
)

// Stats counts what an Emit call wrote.
type Stats struct {
	Organizations int
	ExpenseRows   int
	RevenueRows   int
}

// Emitter writes the seed script for a set of organizations and accounts.
type Emitter struct {
	gen       *Generator
	timestamp string
	log       logrus.FieldLogger
}

// NewEmitter creates an Emitter. timestamp is the SQL expression used for
// updated_at, e.g. "NOW()".
func NewEmitter(gen *Generator, timestamp string, log logrus.FieldLogger) *Emitter {
	return &Emitter{gen: gen, timestamp: timestamp, log: log}
}

// QuoteLiteral renders s as a SQL string literal, doubling embedded quotes.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func literal(s string) sq.Sqlizer {
	return sq.Expr(QuoteLiteral(s))
}

func integer(n int64) sq.Sqlizer {
	return sq.Expr(strconv.FormatInt(n, 10))
}

// Emit writes BEGIN, TRUNCATE, one block per organization in order, and
// COMMIT. An organization block holds a comment line, then one multi-row
// INSERT per non-empty account list. Rows are drawn fresh for every
// (organization, account) pair.
func (e *Emitter) Emit(ctx context.Context, w io.Writer, orgs []model.Organization, expenses, revenues []model.Account) (Stats, error) {
	var stats Stats

	if _, err := fmt.Fprintf(w, "BEGIN;\nTRUNCATE TABLE %s, %s;\n", expensesTable, revenuesTable); err != nil {
		return stats, fmt.Errorf("writing preamble: %w", err)
	}

	for _, org := range orgs {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		var block strings.Builder
		fmt.Fprintf(&block, "\n-- Data for %s\n", org.Name)

		if len(expenses) > 0 {
			stmt, err := e.expenseStatement(org, expenses)
			if err != nil {
				return stats, fmt.Errorf("building expenses for %s: %w", org.ID, err)
			}
			block.WriteString(stmt)
			block.WriteString(";\n")
			stats.ExpenseRows += len(expenses)
		}

		if len(revenues) > 0 {
			stmt, err := e.revenueStatement(org, revenues)
			if err != nil {
				return stats, fmt.Errorf("building revenues for %s: %w", org.ID, err)
			}
			block.WriteString(stmt)
			block.WriteString(";\n")
			stats.RevenueRows += len(revenues)
		}

		if _, err := io.WriteString(w, block.String()); err != nil {
			return stats, fmt.Errorf("writing %s: %w", org.ID, err)
		}
		stats.Organizations++

		e.log.WithFields(logrus.Fields{
			"organization": org.ID,
			"expenses":     len(expenses),
			"revenues":     len(revenues),
		}).Debug("emitted organization")
	}

	if _, err := io.WriteString(w, "COMMIT;\n"); err != nil {
		return stats, fmt.Errorf("writing commit: %w", err)
	}
	return stats, nil
}

func (e *Emitter) expenseStatement(org model.Organization, accts []model.Account) (string, error) {
	q := sq.Insert(expensesTable).Columns(expenseColumns...)
	for _, acct := range accts {
		row := e.gen.Expense(org, acct)
		if verrs := ValidateExpense(row, e.gen.Ranges()); len(verrs) > 0 {
			return "", joinValidation(verrs)
		}
		q = q.Values(
			literal(row.OrganizationID),
			literal(row.AccountID),
			literal(row.AccountName),
			integer(row.Total),
			integer(row.Finalistica),
			sq.Expr(e.timestamp),
		)
	}
	return toSQL(q)
}

func (e *Emitter) revenueStatement(org model.Organization, accts []model.Account) (string, error) {
	q := sq.Insert(revenuesTable).Columns(revenueColumns...)
	for _, acct := range accts {
		row := e.gen.Revenue(org, acct)
		if verrs := ValidateRevenue(row, e.gen.Ranges()); len(verrs) > 0 {
			return "", joinValidation(verrs)
		}
		q = q.Values(
			literal(row.OrganizationID),
			literal(row.AccountID),
			integer(row.Value),
			sq.Expr(e.timestamp),
		)
	}
	return toSQL(q)
}

// toSQL renders an insert whose values are all inline literals.
func toSQL(q sq.InsertBuilder) (string, error) {
	stmt, args, err := q.ToSql()
	if err != nil {
		return "", fmt.Errorf("rendering insert: %w", err)
	}
	if len(args) > 0 {
		return "", fmt.Errorf("rendering insert: %d unexpected bind arguments", len(args))
	}
	return stmt, nil
}

func joinValidation(verrs []ValidationError) error {
	errs := make([]error, len(verrs))
	for i, ve := range verrs {
		errs[i] = ve
	}
	return fmt.Errorf("validation failed: %w", errors.Join(errs...))
}
