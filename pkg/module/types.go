package module

import (
	"fmt"
	"strings"
)

const redacted = "******"

// ConnectionConfig describes how to reach a data store. A nil field means the
// key was absent from the source document.
type ConnectionConfig struct {
	Type     *string
	Host     *string
	Database *string
	Username *string
	Password *string
	Port     *string
}

// Values returns the fields in the fixed order
// type, host, database, username, password, port.
func (c ConnectionConfig) Values() (dbType, host, database, username, password, port *string) {
	return c.Type, c.Host, c.Database, c.Username, c.Password, c.Port
}

// String renders the config with the password redacted.
func (c ConnectionConfig) String() string {
	var password *string
	if c.Password != nil {
		p := redacted
		password = &p
	}

	fields := []struct {
		key   string
		value *string
	}{
		{"type", c.Type},
		{"host", c.Host},
		{"database", c.Database},
		{"username", c.Username},
		{"password", password},
		{"port", c.Port},
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		v := "<nil>"
		if f.value != nil {
			v = *f.value
		}
		parts = append(parts, fmt.Sprintf("%s=%s", f.key, v))
	}
	return strings.Join(parts, " ")
}

// StringValue dereferences s, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
