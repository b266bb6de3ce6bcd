package db

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Arss011/network-toolkit-management-api/models"
)

// ErrProtectedUser is returned for any attempt to modify or delete the
// admin singleton.
var ErrProtectedUser = errors.New("the admin user cannot be modified")

type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

// Users

func (r *Repo) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) CreateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

// UpdateUser writes the mutable profile fields. Username is immutable
// once created, and the admin singleton rejects every update.
func (r *Repo) UpdateUser(ctx context.Context, id uint, fields map[string]any) (*models.User, error) {
	u, err := r.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.IsProtected() {
		return nil, ErrProtectedUser
	}
	delete(fields, "username")
	if err := r.DB.WithContext(ctx).Model(u).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindUserByID(ctx, id)
}

func (r *Repo) DeleteUserByID(ctx context.Context, id uint) error {
	u, err := r.FindUserByID(ctx, id)
	if err != nil {
		return err
	}
	if u.IsProtected() {
		return ErrProtectedUser
	}
	return r.DB.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}

func (r *Repo) TouchUserSeen(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("last_seen_at", gorm.Expr("NOW()")).Error
}

type ListUsersResult struct {
	Users []models.User `json:"users"`
	Total int64         `json:"total"`
}

func (r *Repo) ListUsers(ctx context.Context, q string, isActive *bool, page, size int) (ListUsersResult, error) {
	page, size = clampPage(page, size)

	tx := r.DB.WithContext(ctx).Model(&models.User{})
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(username) LIKE ? OR LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}
	if isActive != nil {
		tx = tx.Where("is_active = ?", *isActive)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ListUsersResult{}, err
	}

	var users []models.User
	if err := tx.
		Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&users).Error; err != nil {
		return ListUsersResult{}, err
	}
	return ListUsersResult{Users: users, Total: total}, nil
}

func clampPage(page, size int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 1000 {
		size = 10
	}
	return page, size
}
