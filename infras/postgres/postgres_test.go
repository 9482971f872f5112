package postgres

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/config"
)

func TestEndpointDSN(t *testing.T) {
	e := endpoint{
		username: "desk",
		password: "p@ss:word",
		host:     "db.local",
		port:     "5432",
		dbName:   "frontdesk",
		sslMode:  "disable",
	}

	parsed, err := url.Parse(e.DSN())
	require.NoError(t, err)

	password, _ := parsed.User.Password()

	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "db.local:5432", parsed.Host)
	assert.Equal(t, "/frontdesk", parsed.Path)
	assert.Equal(t, "p@ss:word", password)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
	assert.Equal(t, "UTC", parsed.Query().Get("timezone"))

	e.timezone = "Europe/Dublin"
	parsed, err = url.Parse(e.DSN())
	require.NoError(t, err)
	assert.Equal(t, "Europe/Dublin", parsed.Query().Get("timezone"))
}

func TestGetDBName(t *testing.T) {
	cfg := config.Config{}
	assert.Equal(t, "frontdesk", getDBName(cfg, "frontdesk"))

	cfg.DB.Postgres.Prefix = "test_"
	assert.Equal(t, "test_frontdesk", getDBName(cfg, "frontdesk"))
}
