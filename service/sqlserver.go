package service

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/microsoft/go-mssqldb"

	"datachat/config"
	"datachat/dataset"
)

// SQLServerService pulls datasets out of a SQL Server instance as an
// alternative to file upload. It is optional; the rest of the service
// works without it.
type SQLServerService struct {
	db *sql.DB
}

func NewSQLServerService(cfg config.SQLServerConfig) (*SQLServerService, error) {
	if cfg.Server == "" || cfg.Database == "" {
		return nil, fmt.Errorf("SQL Server configuration is incomplete")
	}

	db, err := sql.Open("sqlserver", buildConnectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open SQL Server connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		// Log a warning but do not fail service initialization.
		// This allows the application to start even if SQL Server is temporarily unavailable.
		log.Printf("Warning: failed to ping SQL Server during initialization: %v", err)
	}

	return &SQLServerService{db: db}, nil
}

func buildConnectionString(cfg config.SQLServerConfig) string {
	connStr := fmt.Sprintf("server=%s;port=%s;database=%s",
		cfg.Server, cfg.Port, cfg.Database)

	if cfg.UserID != "" {
		connStr += fmt.Sprintf(";user id=%s;password=%s", cfg.UserID, cfg.Password)
	} else {
		connStr += ";trusted_connection=true"
	}

	if cfg.Encrypt {
		// Use TLS but skip CA verification so self-signed / internal certs work.
		connStr += ";encrypt=true;TrustServerCertificate=true"
	} else {
		connStr += ";encrypt=false"
	}

	return connStr
}

func (s *SQLServerService) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLServerService) IsConnected() bool {
	if s.db == nil {
		return false
	}
	return s.db.Ping() == nil
}

// QueryDataset runs a read query and shapes the result set into a
// dataset. Numbers and booleans keep their native types so the engine
// can aggregate them without re-parsing; everything else is
// stringified. A positive maxRows stops the scan early so a broad
// query cannot flood the session store.
func (s *SQLServerService) QueryDataset(ctx context.Context, query string, maxRows int) (*dataset.Dataset, error) {
	if s.db == nil {
		return nil, fmt.Errorf("SQL Server connection is not initialized")
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var datasetRows []dataset.Row

	for rows.Next() {
		if maxRows > 0 && len(datasetRows) >= maxRows {
			break
		}
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(dataset.Row, len(columns))
		for i, name := range columns {
			row[name] = cellValue(values[i])
		}
		datasetRows = append(datasetRows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	return &dataset.Dataset{Columns: columns, Rows: datasetRows}, nil
}

// cellValue converts one scanned SQL value into the dataset value
// space: number, string, bool or nil.
func cellValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return nil
	case bool:
		return val
	case int64:
		return float64(val)
	case float64:
		return val
	case []byte:
		return string(val)
	case string:
		return val
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", val)
	}
}
