package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gymgate/internal/config"
	"gymgate/internal/models/db_models"
	"gymgate/internal/repositories"
	"gymgate/pkg/utils"
)

const flagTrue = "True"

// Default admin created on first start, matching the desktop app.
const (
	DefaultAdminEmail    = "admin@gmail.com"
	defaultAdminPassword = "Admin1234"
)

// Run performs the one-time setup steps, each guarded by its flag in
// the config store so restarts are no-ops.
func Run(db *gorm.DB, store *config.Store, adminRepo repositories.AdminRepository, memberRepo repositories.MemberRepository) error {
	ctx := context.Background()

	if err := ensureSchema(db, store); err != nil {
		return err
	}
	if err := ensureDefaultAdmin(ctx, store, adminRepo); err != nil {
		return err
	}
	if err := ensureFakeMembers(ctx, store, memberRepo); err != nil {
		return err
	}
	return nil
}

func ensureSchema(db *gorm.DB, store *config.Store) error {
	if store.GetValue(config.SectionDatabase, config.KeyIsCreated) == flagTrue {
		return nil
	}

	if err := db.AutoMigrate(&db_models.Member{}, &db_models.Admin{}); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	store.SetValue(config.SectionDatabase, config.KeyIsCreated, flagTrue)
	return store.Save()
}

func ensureDefaultAdmin(ctx context.Context, store *config.Store, adminRepo repositories.AdminRepository) error {
	if store.GetValue(config.SectionAdmin, config.KeyAdminCreated) == flagTrue {
		return nil
	}

	hashed, err := utils.HashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	admin := &db_models.Admin{
		FirstName:    "admin",
		LastName:     "admin",
		Email:        DefaultAdminEmail,
		PasswordHash: hashed,
	}
	if err := adminRepo.Insert(ctx, admin); err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}
	log.Printf("Created default admin %s", admin.Email)

	store.SetValue(config.SectionAdmin, config.KeyAdminCreated, flagTrue)
	return store.Save()
}

func ensureFakeMembers(ctx context.Context, store *config.Store, memberRepo repositories.MemberRepository) error {
	if store.GetValue(config.SectionFakeData, config.KeyIsCreated) == flagTrue {
		return nil
	}

	now := time.Now().Unix()
	day := int64(24 * 60 * 60)

	for i, m := range fakeMembers {
		member := m
		member.LastCheckIn = now - int64(i+1)*day
		member.NextPayment = now + 30*day
		if err := memberRepo.Insert(ctx, &member); err != nil {
			return fmt.Errorf("seed fake member %s %s: %w", member.FirstName, member.LastName, err)
		}
	}
	log.Printf("Seeded %d fake members", len(fakeMembers))

	store.SetValue(config.SectionFakeData, config.KeyIsCreated, flagTrue)
	return store.Save()
}
