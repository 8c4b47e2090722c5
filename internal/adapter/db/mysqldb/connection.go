package mysqldb

import (
	"context"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/JacobNatural/task-manager/internal/config"
)

const defaultParams = "parseTime=true&multiStatements=true"

// Connect opens a pool sized by conf and pings it before handing it out.
func Connect(ctx context.Context, conf *config.Config) (*sqlx.DB, error) {
	dsn, err := buildDSN(conf)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	if conf.DbMaxOpenConns > 0 {
		db.SetMaxOpenConns(conf.DbMaxOpenConns)
	}
	if conf.DbMaxIdleConns > 0 {
		db.SetMaxIdleConns(conf.DbMaxIdleConns)
	}
	if conf.DbConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(conf.DbConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql at %s:%s: %w", conf.DbHost, conf.DbPort, err)
	}

	return db, nil
}

// buildDSN reads the extra driver parameters from conf.DbParams and puts
// the connection settings on top. parseTime is always on since the
// repositories scan DATETIME columns into time.Time.
func buildDSN(conf *config.Config) (string, error) {
	params := conf.DbParams
	if params == "" {
		params = defaultParams
	}

	cfg, err := mysql.ParseDSN("/?" + params)
	if err != nil {
		return "", fmt.Errorf("parse MYSQL_PARAMS: %w", err)
	}

	cfg.User = conf.DbUser
	cfg.Passwd = conf.DbPassword
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(conf.DbHost, conf.DbPort)
	cfg.DBName = conf.DbName
	cfg.ParseTime = true

	return cfg.FormatDSN(), nil
}
