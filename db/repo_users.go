// db/repo_users.go
//
// Identity collaborator boundary: the accounting core only needs "who is
// calling" and "are they privileged".
package db

import (
	"Gin_postgres_redis_equipment_lab/models"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegisterUser creates a user with role "user", or returns the existing row
// when the email is already registered (the original behaves the same way).
func (r *Repo) RegisterUser(ctx context.Context, name, email string) (*models.User, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, false, invalidArgf("missing required field %q", "email")
	}

	var u models.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err == nil {
		return &u, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	u = models.User{ID: uuid.NewString(), Name: name, Email: email, Role: models.UserRoleUser}
	if err := r.DB.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, false, err
	}
	return &u, true, nil
}

func (r *Repo) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.DB.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

// MakeAdmin promotes a user and returns the updated row for the audit trail.
func (r *Repo) MakeAdmin(ctx context.Context, id string) (*models.User, error) {
	u, err := r.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Model(u).Update("role", models.UserRoleAdmin).Error; err != nil {
		return nil, err
	}
	u.Role = models.UserRoleAdmin
	return u, nil
}

func (r *Repo) DeleteUserByID(ctx context.Context, id string) (*models.User, error) {
	u, err := r.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Repo) TouchUserSeen(ctx context.Context, email string) error {
	return r.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).
		Update("last_seen_at", gorm.Expr("NOW()")).Error
}
