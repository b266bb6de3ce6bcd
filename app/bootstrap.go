package app

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Arss011/network-toolkit-management-api/db"
	"github.com/Arss011/network-toolkit-management-api/models"
)

// BootstrapAdmin ensures the protected admin account exists. Without it
// nobody could log in to create the first users.
func BootstrapAdmin(ctx context.Context, cfg Config, repo *db.Repo) {
	_, err := repo.FindUserByUsername(ctx, models.AdminUsername)
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("bootstrap admin lookup failed: %v", err)
		return
	}
	if cfg.BootstrapPassword == "" {
		log.Printf("[BOOTSTRAP] no admin user and ADMIN_PASSWORD unset; skipping")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.BootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("bootstrap admin hash failed: %v", err)
		return
	}
	admin := &models.User{
		Username:     models.AdminUsername,
		FullName:     "Administrator",
		Email:        cfg.BootstrapEmail,
		Role:         models.RoleAdmin,
		IsActive:     true,
		PasswordHash: string(hash),
	}
	if err := repo.CreateUser(ctx, admin); err != nil {
		log.Printf("bootstrap admin create failed: %v", err)
		return
	}
	log.Printf("[BOOTSTRAP] created admin user %q", admin.Username)
}
