package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/outreach-crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/outreach-crm-api/internal/domain"
)

const (
	usersTable        = "users"
	pqUniqueViolation = "23505"
)

// ErrEmailAlreadyExists é retornado quando já existe um usuário com o mesmo email
var ErrEmailAlreadyExists = errors.New("email já cadastrado")

// Colunas públicas do usuário; password_hash só é lido na autenticação
var userPublicColumns = []string{"id", "name", "lastname", "email", "active", "role_id", "avatar_url", "created_at", "updated_at"}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

//go:generate mockgen -source=user.go -destination=mocks/user.go -package=mocks
type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	UpdateUser(user *domain.User) error
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(userID int) (*domain.User, error)
	ListUser() ([]*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{conn: conn}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	query, args, err := psql.
		Insert(usersTable).
		SetMap(map[string]interface{}{
			"name":          user.Name,
			"lastname":      user.Lastname,
			"email":         user.Email,
			"password_hash": user.PasswordHash,
			"active":        user.Active,
			"role_id":       user.RoleID,
		}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation:
		return nil, ErrEmailAlreadyExists
	case err != nil:
		return nil, fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) UpdateUser(user *domain.User) error {
	query, args, err := buildUpdateUserQuery(user)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar usuário %d: %w", user.ID, err)
	}
	return nil
}

// buildUpdateUserQuery só altera os campos preenchidos; active é sempre gravado
func buildUpdateUserQuery(user *domain.User) (string, []interface{}, error) {
	changes := map[string]interface{}{
		"active":     user.Active,
		"updated_at": squirrel.Expr("NOW()"),
	}

	optional := map[string]string{
		"name":          user.Name,
		"lastname":      user.Lastname,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
	}
	for column, value := range optional {
		if value != "" {
			changes[column] = value
		}
	}

	if user.RoleID != 0 {
		changes["role_id"] = user.RoleID
	}
	if user.AvatarURL != nil && *user.AvatarURL != "" {
		changes["avatar_url"] = *user.AvatarURL
	}
	if user.Deleted {
		changes["deleted"] = true
		changes["deleted_at"] = user.DeletedAt
	}

	return psql.Update(usersTable).SetMap(changes).Where(squirrel.Eq{"id": user.ID}).ToSql()
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	return r.getUser(squirrel.Eq{"email": email, "deleted": false})
}

func (r *userRepository) GetUserByID(userID int) (*domain.User, error) {
	return r.getUser(squirrel.Eq{"id": userID, "deleted": false})
}

// getUser retorna nil, nil quando nenhum usuário atende ao filtro
func (r *userRepository) getUser(filter squirrel.Eq) (*domain.User, error) {
	query, args, err := psql.
		Select(append(userPublicColumns, "password_hash")...).
		From(usersTable).
		Where(filter).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var user domain.User
	err = r.conn.QueryRow(query, args...).Scan(append(userTargets(&user), &user.PasswordHash)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return &user, nil
}

func (r *userRepository) ListUser() ([]*domain.User, error) {
	query, args, err := psql.
		Select(userPublicColumns...).
		From(usersTable).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user := &domain.User{}
		if err := rows.Scan(userTargets(user)...); err != nil {
			return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// userTargets segue a ordem de userPublicColumns
func userTargets(user *domain.User) []interface{} {
	return []interface{}{
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.Active,
		&user.RoleID,
		&user.AvatarURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	}
}
