package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ariebrainware/clinique/config"
	"github.com/ariebrainware/clinique/logging"
	"github.com/ariebrainware/clinique/model"
	"github.com/ariebrainware/clinique/util"
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var withDoctors bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the default staff accounts (and optionally the default doctors)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			logging.Set(logging.New(cfg, "seed"))

			db, err := config.ConnectDB(config.ServiceAuth)
			if err != nil {
				return err
			}
			if err := model.Migrate(db, config.ServiceAuth); err != nil {
				return err
			}
			if err := model.SeedStaffUsers(db, util.HashPassword); err != nil {
				return err
			}
			logging.L().Info().Int("accounts", len(model.DefaultStaff())).Msg("staff accounts seeded")

			if !withDoctors {
				return nil
			}
			ddb, err := config.ConnectDB(config.ServiceDoctors)
			if err != nil {
				return err
			}
			if err := model.Migrate(ddb, config.ServiceDoctors); err != nil {
				return err
			}
			if err := model.SeedDoctors(ddb); err != nil {
				return err
			}
			logging.L().Info().Msg("doctors directory seeded")
			return nil
		},
	}
	cmd.Flags().BoolVar(&withDoctors, "doctors", false, "also seed the doctors directory")
	return cmd
}

func newGeoIPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geoip",
		Short: "Manage the GeoIP database used by the security log",
	}

	var url, dest string
	var timeout time.Duration
	download := &cobra.Command{
		Use:   "download",
		Short: "Download and validate a GeoLite2/GeoIP2 City database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dest == "" {
				dest = config.LoadConfig().GeoIPDBPath
			}
			if url == "" || dest == "" {
				return fmt.Errorf("--url and --dest (or GEOIP_DB_PATH) are required")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			path, err := util.DownloadGeoIP(ctx, url, dest)
			if err != nil {
				return fmt.Errorf("download geoip database: %w", err)
			}
			if err := util.ValidateGeoIP(path); err != nil {
				return fmt.Errorf("validate geoip database: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "GeoIP database written to %s\n", path)
			return nil
		},
	}
	download.Flags().StringVar(&url, "url", "", "download URL (.mmdb or .mmdb.gz)")
	download.Flags().StringVar(&dest, "dest", "", "destination path, defaults to GEOIP_DB_PATH")
	download.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "download timeout")

	cmd.AddCommand(download)
	return cmd
}
