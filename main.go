package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"taskhub/internal/api"
	"taskhub/internal/config"
	"taskhub/internal/db"
	"taskhub/internal/mailer"
	"taskhub/internal/service"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02_15:04:05"}).Level(level)

	store, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	defer store.Close()

	seedAdmin(store, cfg.AdminEmail)

	sender := mailer.NewSender(cfg.Email)
	dispatcher := mailer.NewDispatcher(sender, cfg.Email.FromEmail, log.Logger)
	defer dispatcher.Close()

	users := service.NewUserService(store, dispatcher, log.Logger)
	projects := service.NewProjectService(store, log.Logger)
	tasks := service.NewTaskService(store, dispatcher, cfg.BaseURL, log.Logger)

	handler := api.New(users, projects, tasks, cfg, log.Logger).Handler()

	log.Info().Str("addr", cfg.Addr).Msg("taskhub listening")
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}

// seedAdmin makes sure the configured admin email has an account, so a
// fresh deployment is reachable through the login endpoint.
func seedAdmin(store *db.Store, email string) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return
	}

	ctx := context.Background()
	existing, err := store.FindUserByEmail(ctx, email)
	if err != nil {
		log.Error().Err(err).Msg("admin lookup")
		return
	}
	if existing != nil {
		return
	}

	name := strings.Split(email, "@")[0]
	admin := &db.User{
		UserName:    name,
		Password:    uuid.NewString(),
		Email:       email,
		Name:        name,
		CreatedDate: time.Now(),
	}
	if err := store.CreateUser(ctx, admin); err != nil {
		log.Error().Err(err).Msg("seed admin user")
		return
	}
	log.Info().Str("email", email).Str("user_name", name).Str("password", admin.Password).Msg("created admin user")
}
