package database

import (
	"database/sql"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridges/internal/config"
)

func storeConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:             "db.internal",
		Port:             "5432",
		User:             "curator",
		Password:         "s3cret",
		Name:             "ontologies",
		SSLMode:          "disable",
		ApplicationName:  "bridges",
		StatementTimeout: 30 * time.Second,
		MaxOpenConns:     8,
		MaxIdleConns:     2,
		ConnMaxLifetime:  30 * time.Minute,
		ConnMaxIdleTime:  5 * time.Minute,
	}
}

func TestBuildPostgresDSN(t *testing.T) {
	t.Run("runtime parameters", func(t *testing.T) {
		dsn, err := BuildPostgresDSN(storeConfig())
		require.NoError(t, err)

		u, err := url.Parse(dsn)
		require.NoError(t, err)
		assert.Equal(t, "postgres", u.Scheme)
		assert.Equal(t, "db.internal:5432", u.Host)
		assert.Equal(t, "/ontologies", u.Path)
		assert.Equal(t, "curator", u.User.Username())

		q := u.Query()
		assert.Equal(t, "disable", q.Get("sslmode"))
		assert.Equal(t, "bridges", q.Get("application_name"))
		assert.Equal(t, "30000", q.Get("statement_timeout"))
	})

	t.Run("optional parameters omitted", func(t *testing.T) {
		c := config.DatabaseConfig{Host: "localhost", Port: "5432", User: "curator", Name: "ontologies"}

		dsn, err := BuildPostgresDSN(c)

		require.NoError(t, err)
		assert.Equal(t, "postgres://curator@localhost:5432/ontologies", dsn)
	})

	missing := []struct {
		name   string
		mutate func(c *config.DatabaseConfig)
	}{
		{"host", func(c *config.DatabaseConfig) { c.Host = "" }},
		{"port", func(c *config.DatabaseConfig) { c.Port = "" }},
		{"user", func(c *config.DatabaseConfig) { c.User = "" }},
		{"name", func(c *config.DatabaseConfig) { c.Name = "" }},
	}
	for _, tt := range missing {
		t.Run("missing "+tt.name, func(t *testing.T) {
			c := storeConfig()
			tt.mutate(&c)

			dsn, err := BuildPostgresDSN(c)

			assert.Error(t, err)
			assert.Empty(t, dsn)
		})
	}
}

func TestConfigurePool(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	configurePool(db, storeConfig())

	assert.Equal(t, 8, db.Stats().MaxOpenConnections)
}

func stubOpen(t *testing.T, db *sql.DB, err error) {
	t.Helper()
	orig := sqlOpen
	sqlOpen = func(driverName, dataSourceName string) (*sql.DB, error) {
		assert.Contains(t, dataSourceName, "statement_timeout=30000")
		return db, err
	}
	t.Cleanup(func() { sqlOpen = orig })
}

func TestNewPostgres(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		stubOpen(t, db, nil)

		mock.ExpectPing()

		gotDB, err := NewPostgres(storeConfig())
		assert.NoError(t, err)
		assert.Same(t, db, gotDB)
		assert.Equal(t, 8, gotDB.Stats().MaxOpenConnections)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("open error", func(t *testing.T) {
		stubOpen(t, nil, errors.New("open error"))

		gotDB, err := NewPostgres(storeConfig())
		assert.ErrorContains(t, err, "sql open: open error")
		assert.Nil(t, gotDB)
	})

	t.Run("ping error closes the pool", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		stubOpen(t, db, nil)

		mock.ExpectPing().WillReturnError(errors.New("ping failed"))
		mock.ExpectClose()

		gotDB, err := NewPostgres(storeConfig())
		assert.ErrorContains(t, err, "db ping: ping failed")
		assert.Nil(t, gotDB)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid config", func(t *testing.T) {
		gotDB, err := NewPostgres(config.DatabaseConfig{})
		assert.Error(t, err)
		assert.Nil(t, gotDB)
	})
}
