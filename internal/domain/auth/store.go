package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type AuthUser struct {
	ID       string
	RoleID   string
	RoleName string
	Password string
}

func (s *Store) FindActiveUserByEmail(ctx context.Context, email string) (AuthUser, error) {
	var out AuthUser
	err := s.DB.QueryRow(ctx, `
    SELECT u.id, u.role_id, r.name, u.password_hash
    FROM users u
    JOIN roles r ON u.role_id = r.id
    WHERE u.email = $1 AND u.status = $2
  `, email, UserStatusActive).Scan(&out.ID, &out.RoleID, &out.RoleName, &out.Password)
	return out, err
}

func (s *Store) UpdateLastLogin(ctx context.Context, userID string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET last_login = now() WHERE id = $1", userID)
	return err
}

func (s *Store) ListUsers(ctx context.Context, limit, offset int) ([]User, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT u.id, u.email, u.full_name, u.role_id, r.name, u.status, u.last_login
    FROM users u
    JOIN roles r ON u.role_id = r.id
    ORDER BY u.email
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.RoleID, &u.RoleName, &u.Status, &u.LastLogin); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) CreateUser(ctx context.Context, email, name, passwordHash, roleID string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (email, full_name, password_hash, role_id, status)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id
  `, email, name, passwordHash, roleID, UserStatusActive).Scan(&id)
	return id, err
}

func (s *Store) UpdateUserRole(ctx context.Context, userID, roleID string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET role_id = $1 WHERE id = $2", roleID, userID)
	return err
}

func (s *Store) SetUserStatus(ctx context.Context, userID, status string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET status = $1 WHERE id = $2", status, userID)
	return err
}

func (s *Store) ListRoles(ctx context.Context) ([]Role, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT r.id, r.name, COALESCE(array_agg(rm.module) FILTER (WHERE rm.module IS NOT NULL), '{}')
    FROM roles r
    LEFT JOIN role_modules rm ON rm.role_id = r.id
    GROUP BY r.id, r.name
    ORDER BY r.name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []Role
	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Modules); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// HasModule reports whether a role was granted access to a portal module.
func (s *Store) HasModule(ctx context.Context, roleID, module string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM role_modules WHERE role_id = $1 AND module = $2
  `, roleID, module).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) GrantModule(ctx context.Context, roleID, module string) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO role_modules (role_id, module)
    VALUES ($1, $2)
    ON CONFLICT DO NOTHING
  `, roleID, module)
	return err
}

func (s *Store) RevokeModule(ctx context.Context, roleID, module string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM role_modules WHERE role_id = $1 AND module = $2", roleID, module)
	return err
}
