package main

import (
	"context"
	"log"
	"os"

	"gorm.io/gorm"

	"regadmin/internal/auth"
	"regadmin/internal/config"
	"regadmin/internal/db"
	"regadmin/internal/model"
	"regadmin/internal/repository"
)

// Baseline permission actions granted to the administrator roles.
var baselineActions = []model.Action{
	{Name: "manage_users", Description: "Create, update and delete user accounts", IsActive: true},
	{Name: "manage_roles", Description: "Create, update and delete roles", IsActive: true},
	{Name: "manage_branches", Description: "Create, update and deactivate branches", IsActive: true},
	{Name: "manage_content", Description: "Publish and retire content pages", IsActive: true},
	{Name: "manage_events", Description: "Schedule and cancel events", IsActive: true},
}

var baselineRoles = []model.Role{
	{Name: "SystemAdmin", Description: "Full access to every operation", IsActive: true},
	{Name: "Admin", Description: "Administrative access without permission management", IsActive: true},
	{Name: "Staff", Description: "Day-to-day registry operations", IsActive: true},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Action{},
		&model.Role{},
		&model.User{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	actionRepo := repository.NewActionRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	created := 0
	actions := make([]model.Action, 0, len(baselineActions))
	for _, a := range baselineActions {
		existing, err := actionRepo.FindByName(ctx, a.Name)
		if err == nil {
			actions = append(actions, *existing)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to look up action %q: %v", a.Name, err)
		}
		action := a
		if err := actionRepo.Create(ctx, &action); err != nil {
			log.Fatalf("Failed to create action %q: %v", a.Name, err)
		}
		actions = append(actions, action)
		created++
	}
	log.Printf("Actions ready (%d created)", created)

	created = 0
	var adminRole *model.Role
	for _, r := range baselineRoles {
		existing, err := roleRepo.FindByName(ctx, r.Name)
		if err == nil {
			if r.Name == "SystemAdmin" {
				adminRole = existing
			}
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to look up role %q: %v", r.Name, err)
		}
		role := r
		if role.Name != "Staff" {
			role.Actions = actions
		}
		if err := roleRepo.Create(ctx, &role); err != nil {
			log.Fatalf("Failed to create role %q: %v", r.Name, err)
		}
		if role.Name == "SystemAdmin" {
			adminRole = &role
		}
		created++
	}
	log.Printf("Roles ready (%d created)", created)

	username := envOr("SEED_ADMIN_USERNAME", "sysadmin")
	if _, err := userRepo.FindByUsername(ctx, username); err == nil {
		log.Printf("Admin user %q already exists, nothing to do", username)
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to look up admin user: %v", err)
	}

	password := envOr("SEED_ADMIN_PASSWORD", "ChangeMe_123")
	hash, err := auth.HashPassword(password, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &model.User{
		Username: username,
		FullName: "System Administrator",
		Password: hash,
		IsActive: true,
	}
	if adminRole != nil {
		admin.Roles = []model.Role{*adminRole}
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("Admin user %q created", username)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
