package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"campusdesk/internal/shared/logger"
)

// Generator creates migration script files.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log,
	}
}

// CreateMigration creates an up/down migration file pair.
func (g *Generator) CreateMigration(name string) error {
	timestamp := time.Now().Format("20060102150405")

	upFilePath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.up.sql", timestamp, name))
	downFilePath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.down.sql", timestamp, name))

	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	if err := g.writeFile(upFilePath, g.migrationTemplate(name)); err != nil {
		return fmt.Errorf("failed to create up migration file: %w", err)
	}

	if err := g.writeFile(downFilePath, g.rollbackTemplate(name)); err != nil {
		return fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return nil
}

func (g *Generator) writeFile(filePath, content string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}

func (g *Generator) migrationTemplate(name string) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s

-- Add your SQL statements here

`, name, time.Now().Format("2006-01-02 15:04:05"))
}

func (g *Generator) rollbackTemplate(name string) string {
	return fmt.Sprintf(`-- Rollback Migration: %s
-- Created: %s

-- Add your rollback SQL statements here

`, name, time.Now().Format("2006-01-02 15:04:05"))
}

// CreateUserTableMigration writes the initial users table migration.
func (g *Generator) CreateUserTableMigration() error {
	upFilePath := filepath.Join(g.scriptsPath, "000001_create_users_table.up.sql")
	downFilePath := filepath.Join(g.scriptsPath, "000001_create_users_table.down.sql")

	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	if err := g.writeFile(upFilePath, userTableUpMigration); err != nil {
		return fmt.Errorf("failed to create user table up migration: %w", err)
	}

	if err := g.writeFile(downFilePath, userTableDownMigration); err != nil {
		return fmt.Errorf("failed to create user table down migration: %w", err)
	}

	g.logger.Infow("user table migration created",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return nil
}

const userTableUpMigration = `-- Migration: Create users table
-- Description: Accounts for students, faculty and admins

CREATE TABLE IF NOT EXISTS users (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    email VARCHAR(255) NOT NULL UNIQUE,
    password_hash VARCHAR(255) NOT NULL,
    first_name VARCHAR(100) NOT NULL,
    last_name VARCHAR(100) NOT NULL,
    role VARCHAR(20) NOT NULL,
    department VARCHAR(100),
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    INDEX idx_users_role (role),
    INDEX idx_users_is_active (is_active)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`

const userTableDownMigration = `-- Rollback Migration: Create users table

DROP TABLE IF EXISTS users;
`
