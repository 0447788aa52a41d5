package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jstern/bookmarkd/internal/api"
	"github.com/jstern/bookmarkd/internal/auth"
	"github.com/jstern/bookmarkd/internal/config"
	"github.com/jstern/bookmarkd/internal/db"
	"github.com/jstern/bookmarkd/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			userStore := store.NewUserStore(database)
			bookmarkStore := store.NewBookmarkStore(database)

			hasher := auth.NewArgon2Hasher()
			tokenService := auth.NewTokenService([]byte(cfg.Auth.Secret), cfg.Auth.TokenLifetime)
			authHandlers := auth.NewHandlers(userStore, hasher, tokenService)
			bearerAuth := auth.NewBearerMiddleware(tokenService, userStore)

			router := api.NewRouter(api.Deps{
				AuthHandlers:  authHandlers,
				BearerAuth:    bearerAuth,
				UserStore:     userStore,
				BookmarkStore: bookmarkStore,
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
