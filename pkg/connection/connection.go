package connection

import (
	"net"
	"net/url"
	"strings"

	"github.com/TianqiuHuang/connection-config/pkg/module"
	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

var (
	// ErrUnknownType is returned by DSN when connection.type is absent.
	ErrUnknownType = errors.New("connection type is not set")
	// ErrUnsupportedType is returned by DSN for engines it cannot render.
	ErrUnsupportedType = errors.New("unsupported connection type")
)

// DSN renders cfg as a driver connection string. It does not connect.
func DSN(cfg *module.ConnectionConfig) (string, error) {
	if cfg == nil || cfg.Type == nil {
		return "", ErrUnknownType
	}

	switch strings.ToLower(*cfg.Type) {
	case "postgres", "postgresql":
		return postgresDSN(cfg)
	case "mysql":
		return mysqlDSN(cfg), nil
	default:
		return "", errors.Wrapf(ErrUnsupportedType, "type %q", *cfg.Type)
	}
}

// postgresDSN builds a libpq key/value string, e.g.
// "dbname='app' host='db.local' port='5432' sslmode='disable' user='root'".
func postgresDSN(cfg *module.ConnectionConfig) (string, error) {
	u := url.URL{
		Scheme:   "postgres",
		Host:     hostPort(cfg),
		RawQuery: "sslmode=disable",
	}
	if cfg.Username != nil || cfg.Password != nil {
		if cfg.Password != nil {
			u.User = url.UserPassword(module.StringValue(cfg.Username), *cfg.Password)
		} else {
			u.User = url.User(*cfg.Username)
		}
	}
	if cfg.Database != nil {
		u.Path = "/" + *cfg.Database
	}

	dsn, err := pq.ParseURL(u.String())
	if err != nil {
		// *url.Error carries the raw URL, credentials included
		if urlErr, ok := err.(*url.Error); ok {
			err = urlErr.Err
		}
		return "", errors.Wrap(err, "render postgres dsn")
	}
	return dsn, nil
}

// mysqlDSN builds "user:password@tcp(host:port)/database".
func mysqlDSN(cfg *module.ConnectionConfig) string {
	mc := mysql.NewConfig()
	mc.User = module.StringValue(cfg.Username)
	mc.Passwd = module.StringValue(cfg.Password)
	mc.DBName = module.StringValue(cfg.Database)
	if addr := hostPort(cfg); addr != "" {
		mc.Net = "tcp"
		mc.Addr = addr
	}
	return mc.FormatDSN()
}

func hostPort(cfg *module.ConnectionConfig) string {
	host := module.StringValue(cfg.Host)
	if cfg.Port == nil {
		return host
	}
	return net.JoinHostPort(host, *cfg.Port)
}
