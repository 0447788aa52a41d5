package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/jstern/bookmarkd/internal/config"
	"github.com/jstern/bookmarkd/internal/db"
	"github.com/jstern/bookmarkd/internal/store"
)

func newPurgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete all users and bookmarks",
		Long:  "Deletes every bookmark and every user. Intended for resetting non-production environments.",
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

			if err := store.NewMaintenanceStore(database).PurgeAll(cmd.Context()); err != nil {
				return err
			}

			log.Println("all users and bookmarks deleted")
			return nil
		},
	}
}
