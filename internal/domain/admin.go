package domain

import "time"

type AdminUser struct {
	ID           int64
	LoginID      string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AdminAuthResponse struct {
	Authenticated bool
	Token         string
	ErrorMessage  string
}

type AdminRepository interface {
	CreateAdmin(admin *AdminUser) (*AdminUser, error)
	GetAdminByLoginID(loginID string) (*AdminUser, error)
}
