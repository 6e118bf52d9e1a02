package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

const schema = `
CREATE TABLE IF NOT EXISTS branches (
	id                 BIGSERIAL PRIMARY KEY,
	branch_name        TEXT NOT NULL UNIQUE,
	manager_id         BIGINT NULL,
	manager_started_at TIMESTAMPTZ NULL,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS branches_branch_name_lower_key ON branches (LOWER(branch_name));

CREATE TABLE IF NOT EXISTS employees (
	id              BIGSERIAL PRIMARY KEY,
	given_name      TEXT NOT NULL,
	family_name     TEXT NOT NULL,
	date_of_birth   DATE NOT NULL,
	gender_identity CHAR(1) NOT NULL CHECK (gender_identity IN ('M', 'F', 'O')),
	gross_salary    BIGINT NOT NULL CHECK (gross_salary >= 0),
	supervisor_id   BIGINT NULL REFERENCES employees (id),
	branch_id       BIGINT NULL REFERENCES branches (id),
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK (supervisor_id IS NULL OR supervisor_id <> id)
);

CREATE TABLE IF NOT EXISTS clients (
	id          BIGSERIAL PRIMARY KEY,
	client_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS working_with (
	employee_id BIGINT NOT NULL REFERENCES employees (id),
	client_id   BIGINT NOT NULL REFERENCES clients (id),
	total_sales NUMERIC(14, 2) NOT NULL DEFAULT 0,
	PRIMARY KEY (employee_id, client_id)
);
`

// TestDatabaseSetup holds the connection used by the repository tests.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and creates the schema.
// Tests are skipped when the variable is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.Options{MaxConns: 4})
	require.NoError(t, err, "failed to connect to test database")

	_, err = db.Exec(ctx, schema)
	require.NoError(t, err, "failed to create schema")

	setup := &TestDatabaseSetup{DB: db}
	require.NoError(t, setup.TruncateAllTables(ctx))
	t.Cleanup(setup.Close)

	return setup
}

// TruncateAllTables removes every row and resets the id sequences.
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{"working_with", "clients", "employees", "branches"}
	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

func (s *TestDatabaseSetup) Close() {
	s.DB.Close()
}

func (s *TestDatabaseSetup) insertClient(t *testing.T, name string) int64 {
	t.Helper()

	var id int64
	err := s.DB.QueryRow(context.Background(),
		`INSERT INTO clients (client_name) VALUES ($1) RETURNING id`, name,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func (s *TestDatabaseSetup) insertSale(t *testing.T, employeeID, clientID int64, total string) {
	t.Helper()

	_, err := s.DB.Exec(context.Background(),
		`INSERT INTO working_with (employee_id, client_id, total_sales) VALUES ($1, $2, $3::numeric)`,
		employeeID, clientID, total,
	)
	require.NoError(t, err)
}

func (s *TestDatabaseSetup) setBranchManager(t *testing.T, branchID, employeeID int64) {
	t.Helper()

	_, err := s.DB.Exec(context.Background(),
		`UPDATE branches SET manager_id = $1, manager_started_at = NOW() WHERE id = $2`,
		employeeID, branchID,
	)
	require.NoError(t, err)
}
