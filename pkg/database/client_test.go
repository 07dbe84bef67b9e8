package database

import (
	"context"
	"net/url"
	"os"
	"strconv"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/caseops/inquest/ent/caserecord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client with CI/local environment
// detection. In CI (when CI_DATABASE_URL is set): connects to an external
// PostgreSQL service container. In local dev: spins up a testcontainer.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)
		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})
		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	} else {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
	}

	cfg, err := configFromURL(connStr)
	require.NoError(t, err)

	client, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// configFromURL parses a postgres:// connection string into a Config.
func configFromURL(connStr string) (Config, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return Config{}, err
	}
	port := 5432
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return Config{}, err
		}
	}
	password, _ := u.User.Password()
	return Config{
		Host:            u.Hostname(),
		Port:            port,
		User:            u.User.Username(),
		Password:        password,
		Database:        u.Path[1:],
		SSLMode:         u.Query().Get("sslmode"),
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}, nil
}

func TestNewClient_MigrationsAndCRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	client := newTestClient(t)
	ctx := context.Background()

	// Migrations ran at startup; the cases table accepts rows.
	created, err := client.CaseRecord.Create().
		SetID("case-db-1").
		SetOwnerID("user-1").
		SetTitle("checkout timeouts").
		SetStatus(caserecord.StatusConsulting).
		SetPriority(caserecord.PriorityCritical).
		SetMetadata(map[string]interface{}{
			"investigation": map[string]interface{}{"investigation_id": "inv-1"},
		}).
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "case-db-1", created.ID)

	loaded, err := client.CaseRecord.Query().
		Where(caserecord.IDEQ("case-db-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "checkout timeouts", loaded.Title)
	assert.Equal(t, caserecord.StatusConsulting, loaded.Status)

	inv, ok := loaded.Metadata["investigation"].(map[string]interface{})
	require.True(t, ok, "metadata JSON round-trips")
	assert.Equal(t, "inv-1", inv["investigation_id"])
}

func TestNewClient_MigrationsAreIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	client := newTestClient(t)
	ctx := context.Background()

	// A second index-creation pass against the same database is a no-op.
	drv := entsql.OpenDB(dialect.Postgres, client.DB())
	require.NoError(t, CreateGINIndexes(ctx, drv))
	require.NoError(t, CreatePartialUniqueIndexes(ctx, drv))
}

func TestHealth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	client := newTestClient(t)

	status, err := Health(context.Background(), client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.GreaterOrEqual(t, status.OpenConnections, 1)
}
