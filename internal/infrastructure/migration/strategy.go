package migration

import (
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"bulletin/internal/infrastructure/persistence/models"
	"bulletin/internal/shared/config"
	"bulletin/internal/shared/logger"
)

// Strategy applies schema changes.
type Strategy interface {
	Migrate(db *gorm.DB) error
	Name() string
}

// Reverter is implemented by versioned strategies.
type Reverter interface {
	Down(db *gorm.DB, steps int) error
	Version(db *gorm.DB) (int64, error)
}

// =============================================================================
// goose
// =============================================================================

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

type GooseStrategy struct {
	dialect string
	logger  logger.Interface
}

func NewGooseStrategy(dialect string, log logger.Interface) *GooseStrategy {
	return &GooseStrategy{
		dialect: dialect,
		logger:  log.With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) Name() string {
	return "goose"
}

func (s *GooseStrategy) with(db *gorm.DB, fn func(dir string) error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(scripts)
	goose.SetLogger(&gooseLogger{log: s.logger})
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return fn(gooseDir(s.dialect))
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return s.with(db, func(dir string) error {
		from, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get current version: %w", err)
		}

		if err := goose.Up(sqlDB, dir); err != nil {
			s.logger.Errorw("migration failed", "error", err)
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		to, err := goose.GetDBVersion(sqlDB)
		if err != nil {
			return fmt.Errorf("failed to get final version: %w", err)
		}

		s.logger.Infow("migration completed", "from_version", from, "to_version", to)
		return nil
	})
}

func (s *GooseStrategy) Down(db *gorm.DB, steps int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	return s.with(db, func(dir string) error {
		for i := 0; i < steps; i++ {
			if err := goose.Down(sqlDB, dir); err != nil {
				return fmt.Errorf("failed to run down migration: %w", err)
			}
		}
		s.logger.Infow("down migration completed", "steps", steps)
		return nil
	})
}

func (s *GooseStrategy) Version(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	var version int64
	err = s.with(db, func(string) error {
		v, err := goose.GetDBVersion(sqlDB)
		version = v
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

// Status prints applied and pending migrations through the logger.
func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return s.with(db, func(dir string) error {
		return goose.Status(sqlDB, dir)
	})
}

type gooseLogger struct {
	log logger.Interface
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Infow(fmt.Sprintf(format, v...))
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Fatalw(fmt.Sprintf(format, v...))
}

// =============================================================================
// golang-migrate
// =============================================================================

// GolangMigrateStrategy runs the paired up/down scripts. It opens its own
// connection from cfg because closing a migrate instance closes its database.
type GolangMigrateStrategy struct {
	cfg    *config.DatabaseConfig
	logger logger.Interface
}

func NewGolangMigrateStrategy(cfg *config.DatabaseConfig, log logger.Interface) *GolangMigrateStrategy {
	return &GolangMigrateStrategy{
		cfg:    cfg,
		logger: log.With("component", "migration.golang-migrate"),
	}
}

func (s *GolangMigrateStrategy) Name() string {
	return "golang_migrate"
}

func (s *GolangMigrateStrategy) databaseURL() string {
	if DialectFor(s.cfg.Driver) == DialectSQLite3 {
		path := s.cfg.Path
		if path == "" {
			path = "bulletin.db"
		}
		return "sqlite3://" + path + "?_foreign_keys=on"
	}
	return fmt.Sprintf("mysql://%s:%s@tcp(%s:%d)/%s?multiStatements=true&parseTime=true",
		url.QueryEscape(s.cfg.Username), url.QueryEscape(s.cfg.Password),
		s.cfg.Host, s.cfg.Port, s.cfg.Database)
}

func (s *GolangMigrateStrategy) open() (*migrate.Migrate, error) {
	source, err := iofs.New(scripts, golangMigrateDir(DialectFor(s.cfg.Driver)))
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, s.databaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

func (s *GolangMigrateStrategy) Migrate(_ *gorm.DB) error {
	m, err := s.open()
	if err != nil {
		return err
	}
	defer m.Close()

	from, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		s.logger.Warnw("database is in dirty state, please fix manually", "version", from)
		return fmt.Errorf("database is in dirty state at version %d", from)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	to, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get final migration version: %w", err)
	}

	s.logger.Infow("migration completed", "from_version", from, "to_version", to)
	return nil
}

func (s *GolangMigrateStrategy) Down(_ *gorm.DB, steps int) error {
	m, err := s.open()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run down migrations: %w", err)
	}

	s.logger.Infow("down migration completed", "steps", steps)
	return nil
}

func (s *GolangMigrateStrategy) Version(_ *gorm.DB) (int64, error) {
	m, err := s.open()
	if err != nil {
		return 0, err
	}
	defer m.Close()

	version, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return int64(version), nil
}

// =============================================================================
// gorm AutoMigrate
// =============================================================================

// AutoMigrateStrategy derives the schema from the persistence models. It is
// meant for local development; it does not create the marker foreign key.
type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{logger: log.With("component", "migration.auto")}
}

func (s *AutoMigrateStrategy) Name() string {
	return "auto"
}

func (s *AutoMigrateStrategy) Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	s.logger.Infow("auto migration completed", "models", len(Models()))
	return nil
}

// Models lists the persistence models owned by this service.
func Models() []interface{} {
	return []interface{}{
		&models.AnnouncementModel{},
		&models.ReadMarkerModel{},
	}
}
