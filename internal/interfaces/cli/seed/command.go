package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	announcementApp "bulletin/internal/application/announcement"
	"bulletin/internal/application/announcement/usecases"
	"bulletin/internal/domain/announcement"
	"bulletin/internal/infrastructure/config"
	"bulletin/internal/infrastructure/database"
	"bulletin/internal/infrastructure/persistence/seeds"
	"bulletin/internal/infrastructure/repository"
	shareddb "bulletin/internal/shared/db"
	"bulletin/internal/shared/logger"
	"bulletin/internal/shared/services/content"
)

var (
	env  string
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load announcements from a YAML file",
		Long: `Create every announcement listed in a YAML seed file.
Entries go through the same validation and sanitization as the admin API and are created in file order.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the seed file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	reqs, err := seeds.LoadAnnouncements(f)
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "seed file contains no announcements")
		return nil
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger().Named("seed")

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	svc := announcementApp.NewService(announcementApp.Dependencies{
		Announcements: repository.NewAnnouncementRepository(db),
		ReadState:     repository.NewReadStateRepository(db),
		Markers:       repository.NewReadMarkerRepository(db),
		Transactor:    shareddb.NewTransactionManager(db),
		Sanitizer:     content.NewSanitizer(),
		Options: usecases.Options{
			UnreadCap: cfg.Announcement.UnreadCap,
			MaxBulk:   cfg.Announcement.MaxBulk,
			ListOrder: announcement.ListOrder(cfg.Announcement.ListOrder),
		},
		Logger: log,
	})

	ids, err := seeds.Apply(context.Background(), svc, reqs, log)
	fmt.Fprintf(cmd.OutOrStdout(), "created %d of %d announcements\n", len(ids), len(reqs))
	return err
}
