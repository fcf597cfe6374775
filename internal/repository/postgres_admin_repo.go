package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"unika_storefront/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresAdminRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresAdminRepository(db *sql.DB, logger *logrus.Logger) domain.AdminRepository {
	return &postgresAdminRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresAdminRepository) CreateAdmin(admin *domain.AdminUser) (*domain.AdminUser, error) {
	query := `
        INSERT INTO admin_users (login_id, password_hash)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	r.log.Debugf("Repository: Attempting to create admin user: %s", admin.LoginID)

	err := r.db.QueryRow(query, admin.LoginID, admin.PasswordHash).Scan(
		&admin.ID,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			r.log.Warnf("Repository: Attempted to create admin with duplicate login ID: %s", admin.LoginID)
			return nil, fmt.Errorf("admin with login ID '%s' already exists", admin.LoginID)
		}

		r.log.Errorf("Repository: Failed to create admin '%s': %v", admin.LoginID, err)
		return nil, fmt.Errorf("could not create admin user: %w", err)
	}

	r.log.Infof("Repository: Admin user created with ID: %d, login: %s", admin.ID, admin.LoginID)
	return admin, nil
}

func (r *postgresAdminRepository) GetAdminByLoginID(loginID string) (*domain.AdminUser, error) {
	query := `
        SELECT id, login_id, password_hash, created_at, updated_at
        FROM admin_users
        WHERE login_id = $1`
	admin := &domain.AdminUser{}

	r.log.Debugf("Repository: Attempting to find admin by login ID: %s", loginID)

	err := r.db.QueryRow(query, loginID).Scan(
		&admin.ID,
		&admin.LoginID,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Repository: Admin with login ID %s not found", loginID)
			return nil, fmt.Errorf("admin with login ID %s not found", loginID)
		}
		r.log.Errorf("Repository: Failed to get admin by login ID %s: %v", loginID, err)
		return nil, fmt.Errorf("could not get admin by login ID: %w", err)
	}

	return admin, nil
}
