package seed

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/cleared-dev/seedgen/internal/logging"
	"github.com/cleared-dev/seedgen/internal/model"
	"github.com/cleared-dev/seedgen/internal/organizations"
)

var (
	testExpenses = []model.Account{
		{ID: "6.3.1.1.01", Name: "Vencimentos e Salários", Type: model.AccountTypeAnalytic},
		{ID: "6.3.1.1.02", Name: "O'Brien Fund", Type: model.AccountTypeAnalytic},
		{ID: "6.3.2.1.01", Name: "Diárias", Type: model.AccountTypeAnalytic},
	}
	testRevenues = []model.Account{
		{ID: "5.1.1.1.01", Name: "Anuidades PF", Type: model.AccountTypeAnalytic},
		{ID: "5.1.1.1.02", Name: "Anuidades PJ", Type: model.AccountTypeAnalytic},
	}
)

func emit(t *testing.T, seed int64, timestamp string, expenses, revenues []model.Account) (string, Stats) {
	t.Helper()
	gen := NewGenerator(NewSource(seed), DefaultRanges())
	em := NewEmitter(gen, timestamp, logging.Discard())

	var buf bytes.Buffer
	stats, err := em.Emit(context.Background(), &buf, organizations.Councils(), expenses, revenues)
	require.NoError(t, err)
	return buf.String(), stats
}

func TestQuoteLiteral(t *testing.T) {
	assert.Equal(t, "'plain'", QuoteLiteral("plain"))
	assert.Equal(t, "'O''Brien Fund'", QuoteLiteral("O'Brien Fund"))
	assert.Equal(t, "''''''", QuoteLiteral("''"))
	assert.Equal(t, "''", QuoteLiteral(""))
}

func TestEmit_Structure(t *testing.T) {
	out, stats := emit(t, 1, "NOW()", testExpenses, testRevenues)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "BEGIN;", lines[0])
	assert.Equal(t, "TRUNCATE TABLE expenses, revenues;", lines[1])
	assert.Equal(t, "COMMIT;", lines[len(lines)-1])
	assert.True(t, strings.HasSuffix(out, "COMMIT;\n"))

	assert.Equal(t, 1, strings.Count(out, "BEGIN;"))
	assert.Equal(t, 1, strings.Count(out, "COMMIT;"))
	assert.Equal(t, 28, strings.Count(out, "\n-- Data for "))
	assert.Equal(t, 28, strings.Count(out, "INSERT INTO expenses (organization_id,account_id,account_name,total,finalistica,updated_at) VALUES "))
	assert.Equal(t, 28, strings.Count(out, "INSERT INTO revenues (organization_id,account_id,value,updated_at) VALUES "))

	assert.Equal(t, Stats{Organizations: 28, ExpenseRows: 28 * 3, RevenueRows: 28 * 2}, stats)
}

func TestEmit_OrganizationOrder(t *testing.T) {
	out, _ := emit(t, 1, "NOW()", testExpenses, testRevenues)

	last := -1
	for _, org := range organizations.Councils() {
		idx := strings.Index(out, "-- Data for "+org.Name+"\n")
		require.NotEqual(t, -1, idx, "missing block for %s", org.Name)
		assert.Greater(t, idx, last, "%s out of order", org.Name)
		last = idx
	}
}

func TestEmit_RowsPerOrganization(t *testing.T) {
	out, _ := emit(t, 1, "NOW()", testExpenses, testRevenues)

	for _, org := range organizations.Councils() {
		// Every row starts with the organization literal.
		n := strings.Count(out, "('"+org.ID+"',")
		assert.Equal(t, len(testExpenses)+len(testRevenues), n, "rows for %s", org.ID)
	}
}

func TestEmit_EscapesQuotes(t *testing.T) {
	out, _ := emit(t, 1, "NOW()", testExpenses, testRevenues)

	assert.Contains(t, out, "'O''Brien Fund'")
	assert.NotContains(t, out, "'O'Brien Fund'")
}

func TestEmit_EmptyExpenses(t *testing.T) {
	out, stats := emit(t, 1, "NOW()", nil, testRevenues)

	assert.NotContains(t, out, "INSERT INTO expenses")
	assert.Equal(t, 28, strings.Count(out, "INSERT INTO revenues"))
	assert.Zero(t, stats.ExpenseRows)
	assert.Equal(t, 56, stats.RevenueRows)
}

func TestEmit_EmptyBoth(t *testing.T) {
	out, stats := emit(t, 1, "NOW()", nil, nil)

	assert.NotContains(t, out, "INSERT")
	assert.Equal(t, 28, strings.Count(out, "-- Data for "))
	assert.True(t, strings.HasPrefix(out, "BEGIN;\nTRUNCATE TABLE expenses, revenues;\n"))
	assert.True(t, strings.HasSuffix(out, "COMMIT;\n"))
	assert.Equal(t, 28, stats.Organizations)
}

func TestEmit_Deterministic(t *testing.T) {
	a, _ := emit(t, 42, "NOW()", testExpenses, testRevenues)
	b, _ := emit(t, 42, "NOW()", testExpenses, testRevenues)
	c, _ := emit(t, 43, "NOW()", testExpenses, testRevenues)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestEmit_TimestampExpression(t *testing.T) {
	out, _ := emit(t, 1, "CURRENT_TIMESTAMP", testExpenses, testRevenues)
	assert.NotContains(t, out, "NOW()")
	assert.Contains(t, out, ",CURRENT_TIMESTAMP)")
}

func TestEmit_Cancelled(t *testing.T) {
	gen := NewGenerator(NewSource(1), DefaultRanges())
	em := NewEmitter(gen, "NOW()", logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := em.Emit(ctx, &buf, organizations.Councils(), testExpenses, testRevenues)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, buf.String(), "COMMIT;")
}

func TestEmit_InvalidRowAborts(t *testing.T) {
	gen := NewGenerator(NewSource(1), DefaultRanges())
	em := NewEmitter(gen, "NOW()", logging.Discard())
	orgs := []model.Organization{{ID: "not-a-council", Name: "Bogus"}}

	var buf bytes.Buffer
	_, err := em.Emit(context.Background(), &buf, orgs, testExpenses, nil)
	require.Error(t, err)

	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 3, verr.Invariant)
	assert.NotContains(t, buf.String(), "INSERT")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEmit_WriteError(t *testing.T) {
	gen := NewGenerator(NewSource(1), DefaultRanges())
	em := NewEmitter(gen, "NOW()", logging.Discard())

	_, err := em.Emit(context.Background(), failingWriter{}, organizations.Councils(), testExpenses, testRevenues)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

const sqliteSchema = `
CREATE TABLE expenses (
	organization_id TEXT NOT NULL,
	account_id TEXT NOT NULL,
	account_name TEXT NOT NULL,
	total INTEGER NOT NULL,
	finalistica INTEGER NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE revenues (
	organization_id TEXT NOT NULL,
	account_id TEXT NOT NULL,
	value INTEGER NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// TestEmit_ExecutesInSQLite runs the script against an in-memory database.
// SQLite has no TRUNCATE, so it is swapped for DELETE.
func TestEmit_ExecutesInSQLite(t *testing.T) {
	out, _ := emit(t, 7, "CURRENT_TIMESTAMP", testExpenses, testRevenues)
	script := strings.Replace(out, "TRUNCATE TABLE expenses, revenues;", "DELETE FROM expenses; DELETE FROM revenues;", 1)

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	_, err = db.Exec(sqliteSchema)
	require.NoError(t, err)
	_, err = db.Exec(script)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM expenses`).Scan(&n))
	assert.Equal(t, 28*len(testExpenses), n)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM revenues`).Scan(&n))
	assert.Equal(t, 28*len(testRevenues), n)

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM expenses
		WHERE total < 5000 OR total > 50000 OR finalistica < 0 OR finalistica > total`).Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM revenues WHERE value < 10000 OR value > 100000`).Scan(&n))
	assert.Zero(t, n)

	require.NoError(t, db.QueryRow(`SELECT COUNT(DISTINCT organization_id) FROM expenses`).Scan(&n))
	assert.Equal(t, 28, n)

	var name string
	require.NoError(t, db.QueryRow(`SELECT account_name FROM expenses WHERE account_id = '6.3.1.1.02' LIMIT 1`).Scan(&name))
	assert.Equal(t, "O'Brien Fund", name)
}
