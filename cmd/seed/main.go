// Command seed bootstraps the first admin account. It is idempotent: when an
// admin already exists it exits without touching anything.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/portfolio-studio/backend/internal/models"
	"github.com/portfolio-studio/backend/internal/repository"
	"github.com/portfolio-studio/backend/pkg/config"
	"github.com/portfolio-studio/backend/pkg/database"
	"github.com/portfolio-studio/backend/pkg/logger"
)

func main() {
	name := flag.String("name", "Admin", "display name of the admin account")
	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if *email == "" || *password == "" {
		log.Fatal("admin email and password are required (flags or ADMIN_EMAIL/ADMIN_PASSWORD)")
	}

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	users := repository.NewUserRepository(db)

	n, err := users.CountAdmins(ctx)
	if err != nil {
		log.Fatal("admin lookup failed", zap.Error(err))
	}
	if n > 0 {
		fmt.Fprintln(os.Stdout, "admin account already present, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("password hash failed", zap.Error(err))
	}

	u := models.User{
		Name:         *name,
		Email:        *email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := users.Create(ctx, &u); err != nil {
		log.Fatal("admin create failed", zap.Error(err))
	}

	fmt.Fprintf(os.Stdout, "admin account created: %s\n", u.Email)
}
