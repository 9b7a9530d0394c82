package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/outreach-crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/outreach-crm-api/internal/config"
	"github.com/vfg2006/outreach-crm-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS roles (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`INSERT INTO roles (id, name) VALUES (1, 'admin'), (2, 'supervisor'), (3, 'sdr')
		ON CONFLICT (id) DO NOTHING`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		lastname TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		role_id INTEGER NOT NULL REFERENCES roles (id),
		avatar_url TEXT,
		deleted BOOLEAN NOT NULL DEFAULT FALSE,
		deleted_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS report_snapshots (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		view_mode TEXT NOT NULL DEFAULT '',
		payload JSONB NOT NULL,
		sequence BIGINT NOT NULL,
		computed_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT report_snapshots_project_kind_view_unique UNIQUE (project_id, kind, view_mode)
	)`,
	`CREATE INDEX IF NOT EXISTS report_snapshots_computed_at_idx ON report_snapshots (computed_at)`,
}

func createSchema(tx *sql.Tx) error {
	for i, statement := range schemaStatements {
		if _, err := tx.Exec(statement); err != nil {
			logrus.WithError(err).Errorf("ERRO ao executar statement %d/%d", i+1, len(schemaStatements))
			return err
		}
	}

	logrus.Infof("Schema criado/atualizado (%d statements)", len(schemaStatements))
	return nil
}

// seedAdmin cria o usuário administrador inicial se ele ainda não existir
func seedAdmin(tx *sql.Tx, email, password string) error {
	if email == "" || password == "" {
		logrus.Warn("ADMIN_EMAIL ou ADMIN_PASSWORD não definidos, usuário admin não será criado")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	result, err := tx.Exec(
		`INSERT INTO users (name, lastname, email, password_hash, active, role_id)
		VALUES ($1, $2, $3, $4, TRUE, $5)
		ON CONFLICT (email) DO NOTHING`,
		"Admin", "", email, string(hash), domain.RoleAdmin,
	)
	if err != nil {
		return err
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		logrus.Infof("Usuário admin %s já existe", email)
		return nil
	}

	logrus.Infof("Usuário admin %s criado", email)
	return nil
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Iniciando script de migração...")
	startTime := time.Now()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco: %v", err)
	}
	defer conn.Close()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(tx); err != nil {
			return err
		}
		return seedAdmin(tx, os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD"))
	})
	if err != nil {
		logrus.Fatalf("ERRO na migração, transação revertida: %v", err)
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
