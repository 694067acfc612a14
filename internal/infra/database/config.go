package database

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	GatewayGorm = "gorm"
	GatewaySQL  = "sql"
)

// Config describes how to reach the todo store.
type Config struct {
	Driver          string
	Gateway         string
	DSN             string
	Path            string
	Host            string
	Port            string
	Username        string
	Password        string
	Database        string
	Schema          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// LoadConfig reads the app.db properties.
func LoadConfig() Config {
	return Config{
		Driver:          strings.ToLower(resource.GetString("app.db.driver")),
		Gateway:         strings.ToLower(resource.GetString("app.db.gateway")),
		DSN:             resource.GetString("app.db.dsn"),
		Path:            resource.GetString("app.db.path"),
		Host:            resource.GetString("app.db.host"),
		Port:            resource.GetString("app.db.port"),
		Username:        resource.GetString("app.db.username"),
		Password:        resource.GetString("app.db.password"),
		Database:        resource.GetString("app.db.database"),
		Schema:          resource.GetString("app.db.schema"),
		SSLMode:         resource.GetString("app.db.ssl-mode"),
		MaxOpenConns:    resource.GetInt("app.db.max-open-conns"),
		MaxIdleConns:    resource.GetInt("app.db.max-idle-conns"),
		ConnMaxLifetime: resource.GetDuration("app.db.conn-max-lifetime"),
	}
}

// Validate checks driver and gateway names.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return errors.New(msg.GetMessage("db.error.unsupported-driver", c.Driver))
	}
	switch c.Gateway {
	case GatewayGorm, GatewaySQL:
	default:
		return errors.New(msg.GetMessage("db.error.unsupported-gateway", c.Gateway))
	}
	return nil
}

// DataSourceName returns the explicit DSN when set, otherwise one built from the driver fields.
func (c Config) DataSourceName() (string, error) {
	if c.DSN != "" {
		return c.DSN, nil
	}

	switch c.Driver {
	case DriverSQLite:
		path := strings.TrimSpace(c.Path)
		if path == "" {
			return "", fmt.Errorf("sqlite path is required")
		}
		return filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", nil
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
			c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode, c.Schema), nil
	default:
		return "", errors.New(msg.GetMessage("db.error.unsupported-driver", c.Driver))
	}
}
