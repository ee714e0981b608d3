// Command seed creates the initial agent roles and an admin account.
// Safe to run repeatedly: existing rows are left untouched.
package main

import (
	"errors"
	"os"

	"inventario/internal/config"
	"inventario/internal/database"
	"inventario/internal/model"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var initialRoles = []string{"Director", "Docente", "Administrativo", "Mantenimiento"}

func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Info().Msg("no configs/.env file found")
	}
	cfg := config.Load()

	db, err := database.NewConnection(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	for _, name := range initialRoles {
		var role model.Role
		err := db.First(&role, "name = ?", name).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&model.Role{Name: name}).Error; err != nil {
				log.Fatal().Err(err).Str("role", name).Msg("role creation failed")
			}
			log.Info().Str("role", name).Msg("role created")
		} else if err != nil {
			log.Fatal().Err(err).Msg("role lookup failed")
		}
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Info().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin account")
		return
	}

	var user model.User
	err = db.First(&user, "email = ?", adminEmail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("password hash failed")
		}
		admin := &model.User{
			Name:     "Administrador",
			Email:    adminEmail,
			Password: string(hashed),
			Role:     model.UserRoleAdmin,
		}
		if err := db.Create(admin).Error; err != nil {
			log.Fatal().Err(err).Msg("admin creation failed")
		}
		log.Info().Str("email", adminEmail).Msg("admin account created")
	} else if err != nil {
		log.Fatal().Err(err).Msg("admin lookup failed")
	} else {
		log.Info().Str("email", adminEmail).Msg("admin account already exists")
	}
}
