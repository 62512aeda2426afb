package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"bulletin/internal/infrastructure/config"
	"bulletin/internal/infrastructure/database"
	"bulletin/internal/infrastructure/migration"
	"bulletin/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create empty migration files for every supported dialect using the configured strategy.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration in snake_case (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// openManager connects to the configured database and builds the migration
// manager. The caller closes the database.
func openManager() (*migration.Manager, logger.Interface, error) {
	cfg, log, err := initEnv()
	if err != nil {
		return nil, nil, err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	manager, err := migration.NewManager(&cfg.Migration, &cfg.Database, log)
	if err != nil {
		_ = database.Close()
		return nil, nil, err
	}

	return manager, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	manager, log, err := openManager()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env, "strategy", manager.Strategy().Name())

	if err := manager.Migrate(database.Get()); err != nil {
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	manager, log, err := openManager()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := manager.Down(database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	manager, log, err := openManager()
	if err != nil {
		return err
	}
	defer database.Close()

	current, err := manager.Version(database.Get())
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Strategy:        %s\n", manager.Strategy().Name())
	fmt.Fprintf(out, "  Current Version: %d\n", current)

	if goose, ok := manager.Strategy().(*migration.GooseStrategy); ok {
		if err := goose.Status(database.Get()); err != nil {
			log.Errorw("failed to get detailed status", "error", err)
			return fmt.Errorf("failed to get detailed status: %w", err)
		}
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}

	strategy := cfg.Migration.Strategy
	if strategy == "" {
		strategy = migration.StrategyGoose
	}

	files, err := migration.NewGenerator(cfg.Migration.ScriptsPath, log).Create(strategy, name)
	if err != nil {
		log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", f)
	}
	return nil
}
