// Package suites provides a shared Postgres-backed test suite for repository
// integration tests. Tests run against a disposable container and are skipped
// in -short mode.
package suites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// truncationOrder lists every application table, children before parents, so
// cleanup between tests never trips a foreign key.
var truncationOrder = []string{
	"documents",
	"role_users",
	"roles",
	"users",
}

type PostgresContainer struct {
	testcontainers.Container
	DSN string
}

func StartPostgres(ctx context.Context) (*PostgresContainer, error) {
	const port = "5432/tcp"

	dsn := func(host string, p nat.Port) string {
		return fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, p.Port())
	}

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17.5-alpine3.21",
		ExposedPorts: []string{port},
		Cmd:          []string{"postgres", "-c", "fsync=off"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForSQL(port, "postgres", dsn).
			WithStartupTimeout(30 * time.Second).
			WithQuery("SELECT 1"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	return &PostgresContainer{
		Container: container,
		DSN:       dsn(host, mappedPort),
	}, nil
}

// RepositoryTestSuite boots one Postgres container per suite, applies the
// project migrations, and truncates all application tables before each test.
type RepositoryTestSuite struct {
	suite.Suite
	Container      *PostgresContainer
	DB             *gorm.DB
	SQLDB          *sql.DB
	MigrationsPath string
}

func (s *RepositoryTestSuite) SetupSuite() {
	s.T().Helper()

	if testing.Short() {
		s.T().Skip("Skipping database integration tests in short mode")
	}

	if s.MigrationsPath == "" {
		s.MigrationsPath = findMigrationsPath()
	}

	ctx := context.Background()
	container, err := StartPostgres(ctx)
	if err != nil {
		s.T().Fatalf("Failed to start postgres: %v", err)
	}
	s.Container = container

	sqlDB, err := sql.Open("postgres", container.DSN)
	if err != nil {
		s.T().Fatalf("Failed to open sql connection: %v", err)
	}
	s.SQLDB = sqlDB
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		s.T().Fatalf("Failed to ping database: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		s.T().Fatalf("Failed to open gorm connection: %v", err)
	}
	s.DB = gormDB

	if err := s.runMigrations(); err != nil {
		s.T().Fatalf("Failed to run migrations: %v", err)
	}

	s.T().Cleanup(func() {
		if s.SQLDB != nil {
			_ = s.SQLDB.Close()
		}
		if s.Container != nil {
			_ = s.Container.Terminate(context.Background())
		}
	})
}

func (s *RepositoryTestSuite) BeforeTest(_, _ string) {
	if s.DB == nil {
		return
	}
	for _, table := range truncationOrder {
		s.DB.Exec(fmt.Sprintf(`DELETE FROM %q`, table))
	}
}

func (s *RepositoryTestSuite) runMigrations() error {
	if s.MigrationsPath == "" {
		return errors.New("migrations path not found")
	}

	m, err := migrate.New("file://"+s.MigrationsPath, s.Container.DSN)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// findMigrationsPath walks up from the test's working directory to the module
// root and returns its migrations directory.
func findMigrationsPath() string {
	wd, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return filepath.Join(wd, "migrations")
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			return ""
		}
		wd = parent
	}
}

func (s *RepositoryTestSuite) CountRecords(table string) int64 {
	var c int64
	s.DB.Table(table).Count(&c)
	return c
}
