//go:build integration
// +build integration

package tests

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	"github.com/JacobNatural/task-manager/internal/adapter/db/mysqldb"
	"github.com/JacobNatural/task-manager/internal/config"
)

// IntegrationSuiteBase owns a throwaway MySQL database for one suite run.
// Every test starts from freshly migrated, empty tables.
type IntegrationSuiteBase struct {
	suite.Suite

	adminDB    *sqlx.DB
	DB         *sqlx.DB
	testDBName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	conf := &config.Config{
		DbHost:     envOrDefault("MYSQL_HOST", "127.0.0.1"),
		DbPort:     envOrDefault("MYSQL_PORT", "3306"),
		DbUser:     envOrDefault("MYSQL_ROOT_USER", "root"),
		DbPassword: envOrDefault("MYSQL_ROOT_PASSWORD", "root"),
		DbParams:   envOrDefault("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminDB, err := mysqldb.Connect(ctx, conf)
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	s.testDBName = fmt.Sprintf("%s_test_%d", envOrDefault("MYSQL_DATABASE", "task_manager"), time.Now().UnixNano())
	_, err = s.adminDB.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE `%s`", s.testDBName))
	s.Require().NoError(err)

	conf.DbName = s.testDBName
	s.DB, err = mysqldb.Connect(ctx, conf)
	s.Require().NoError(err)
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
	if s.adminDB == nil {
		return
	}

	_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.testDBName))
	s.Require().NoError(err)
	s.Require().NoError(s.adminDB.Close())
}

// ResetDatabase rolls every migration down and up again.
func (s *IntegrationSuiteBase) ResetDatabase() {
	ups, downs := s.migrationFiles()

	for i := len(downs) - 1; i >= 0; i-- {
		s.execFile(downs[i])
	}
	for _, file := range ups {
		s.execFile(file)
	}
}

func (s *IntegrationSuiteBase) migrationFiles() (ups, downs []string) {
	dir := filepath.Join(s.projectRoot(), "db", "migrations")

	ups, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	s.Require().NoError(err)
	downs, err = filepath.Glob(filepath.Join(dir, "*.down.sql"))
	s.Require().NoError(err)
	s.Require().NotEmpty(ups, "no migrations in %s", dir)

	sort.Strings(ups)
	sort.Strings(downs)
	return ups, downs
}

func (s *IntegrationSuiteBase) execFile(path string) {
	content, err := os.ReadFile(path)
	s.Require().NoError(err)

	_, err = s.DB.Exec(string(content))
	s.Require().NoError(err, filepath.Base(path))
}

func (s *IntegrationSuiteBase) projectRoot() string {
	_, thisFile, _, ok := runtime.Caller(0)
	s.Require().True(ok)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
