package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"rrhh/internal/domain/auth"
	"rrhh/internal/platform/config"
)

// Seed ensures the default roles, their module grants and the bootstrap
// administrator account exist.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	roleIDs, err := ensureRoles(ctx, pool)
	if err != nil {
		return err
	}

	if err := ensureRoleModules(ctx, pool, roleIDs); err != nil {
		return err
	}

	return ensureAdminUser(ctx, pool, roleIDs[auth.RoleAdmin], cfg.SeedAdminEmail, cfg.SeedAdminPassword)
}

func ensureRoles(ctx context.Context, pool *pgxpool.Pool) (map[string]string, error) {
	ids := make(map[string]string)
	for _, name := range []string{auth.RoleAdmin, auth.RoleRRHH, auth.RoleGerencia} {
		var id string
		err := pool.QueryRow(ctx, "SELECT id FROM roles WHERE name = $1", name).Scan(&id)
		if err != nil {
			err = pool.QueryRow(ctx, "INSERT INTO roles (name) VALUES ($1) RETURNING id", name).Scan(&id)
			if err != nil {
				return nil, err
			}
		}
		ids[name] = id
	}
	return ids, nil
}

func ensureRoleModules(ctx context.Context, pool *pgxpool.Pool, roleIDs map[string]string) error {
	for role, modules := range auth.RoleModules {
		roleID, ok := roleIDs[role]
		if !ok {
			continue
		}
		for _, module := range modules {
			if _, err := pool.Exec(ctx, `
        INSERT INTO role_modules (role_id, module)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING
      `, roleID, module); err != nil {
				return err
			}
		}
	}
	return nil
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, roleID, email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
    INSERT INTO users (email, full_name, password_hash, role_id, status)
    VALUES ($1, $2, $3, $4, $5)
  `, email, "Administrador", hash, roleID, auth.UserStatusActive)
	return err
}
