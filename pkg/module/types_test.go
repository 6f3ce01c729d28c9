package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestConnectionConfigString(t *testing.T) {
	cfg := ConnectionConfig{
		Type:     ptr("mysql"),
		Host:     ptr("db.local"),
		Password: ptr("s3cret"),
		Port:     ptr("3306"),
	}

	got := cfg.String()
	assert.Equal(t, "type=mysql host=db.local database=<nil> username=<nil> password=****** port=3306", got)
	assert.NotContains(t, got, "s3cret")
}

func TestConnectionConfigString_NoPassword(t *testing.T) {
	assert.Contains(t, ConnectionConfig{}.String(), "password=<nil>")
}

func TestValues(t *testing.T) {
	cfg := ConnectionConfig{Type: ptr("postgresql"), Port: ptr("5432")}

	dbType, host, database, username, password, port := cfg.Values()
	assert.Equal(t, "postgresql", StringValue(dbType))
	assert.Nil(t, host)
	assert.Nil(t, database)
	assert.Nil(t, username)
	assert.Nil(t, password)
	assert.Equal(t, "5432", StringValue(port))
}

func TestStringValue(t *testing.T) {
	assert.Equal(t, "", StringValue(nil))
	assert.Equal(t, "x", StringValue(ptr("x")))
}
