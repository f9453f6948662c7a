package testutils

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"assignment-admin-backend/internal/config"
	"assignment-admin-backend/internal/database"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	pgUser     = "assignments"
	pgPassword = "assignments"
	pgDatabase = "assignment_admin_test"
)

// postgresContainer is the one Postgres instance shared by every suite of a test binary
type postgresContainer struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	dsn      string
	db       *gorm.DB
	tables   []string
}

var (
	shared     *postgresContainer
	sharedErr  error
	sharedOnce sync.Once
	sharedMu   sync.Mutex
)

// BaseTestSuite gives a suite the migrated schema and a config pointing at it.
// Every table owned by the service is emptied before and after each test.
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config

	tables []string
}

// SetupTestSuite starts the shared container on first use and returns a suite bound to it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { shared, sharedErr = startPostgres() })
	if sharedErr != nil {
		t.Fatalf("postgres test container: %v", sharedErr)
	}
	return &BaseTestSuite{
		DB:     shared.db,
		Config: testConfig(shared.dsn),
		tables: shared.tables,
	}
}

// RunWithTestSuite runs fn against a clean database and empties it afterwards
func RunWithTestSuite(t *testing.T, fn func(*BaseTestSuite)) {
	s := SetupTestSuite(t)
	s.CleanTestDB()
	defer s.TeardownTestSuite()
	fn(s)
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite leaves the container running for the next suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every migrated table in one statement
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || len(s.tables) == 0 {
		return
	}
	quoted := make([]string, len(s.tables))
	for i, table := range s.tables {
		quoted[i] = `"` + table + `"`
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		logrus.WithError(err).Warn("Could not truncate test tables")
	}
}

// CleanupSharedContainer closes the pool and purges the container
func CleanupSharedContainer() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		return
	}
	if sqlDB, err := shared.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := shared.pool.Purge(shared.resource); err != nil {
		logrus.WithError(err).Warn("Could not purge postgres test container")
	}
	shared = nil
}

func startPostgres() (*postgresContainer, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       "assignment-admin-test-" + uuid.NewString()[:8],
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("start postgres: %w", err)
	}
	// Reaps the container if the test binary dies without running cleanup
	_ = resource.Expire(600)

	c := &postgresContainer{
		pool:     pool,
		resource: resource,
		dsn: fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
			pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase),
	}

	if err := pool.Retry(c.ping); err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("postgres never became ready: %w", err)
	}

	c.db, err = database.Initialize(c.dsn, &database.Options{LogLevel: gormlogger.Silent})
	if err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("migrate test schema: %w", err)
	}

	if c.tables, err = migratedTables(c.db); err != nil {
		_ = pool.Purge(resource)
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"container": resource.Container.Name,
		"tables":    c.tables,
	}).Info("Postgres test container ready")
	return c, nil
}

func (c *postgresContainer) ping() error {
	db, err := sql.Open("pgx", c.dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.Ping()
}

// migratedTables resolves the table of every model and checks that AutoMigrate created it
func migratedTables(db *gorm.DB) ([]string, error) {
	tables := make([]string, 0, len(database.Models()))
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}
		if !db.Migrator().HasTable(stmt.Schema.Table) {
			return nil, fmt.Errorf("table %s missing after migration", stmt.Schema.Table)
		}
		tables = append(tables, stmt.Schema.Table)
	}
	return tables, nil
}

func testConfig(dsn string) *config.Config {
	return &config.Config{
		Environment:          "test",
		Port:                 "0",
		LogLevel:             "debug",
		DatabaseURL:          dsn,
		JWTSecret:            "test-secret",
		ImportMaxUploadBytes: 1 << 20,
		BcryptCost:           4,
	}
}
