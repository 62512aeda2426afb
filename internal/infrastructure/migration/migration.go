package migration

import (
	"fmt"

	"gorm.io/gorm"

	"bulletin/internal/shared/config"
	"bulletin/internal/shared/logger"
)

const (
	StrategyGoose         = "goose"
	StrategyGolangMigrate = "golang_migrate"
	StrategyAuto          = "auto"
)

// Manager runs the configured migration strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy named in cfg.
func NewManager(cfg *config.MigrationConfig, dbCfg *config.DatabaseConfig, log logger.Interface) (*Manager, error) {
	var strategy Strategy

	switch cfg.Strategy {
	case StrategyGoose, "":
		strategy = NewGooseStrategy(DialectFor(dbCfg.Driver), log)
	case StrategyGolangMigrate:
		strategy = NewGolangMigrateStrategy(dbCfg, log)
	case StrategyAuto:
		strategy = NewAutoMigrateStrategy(log)
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", cfg.Strategy)
	}

	return NewManagerWithStrategy(strategy, log), nil
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.Name())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.Name(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.Name(), err)
	}

	return nil
}

func (m *Manager) Down(db *gorm.DB, steps int) error {
	reverter, ok := m.strategy.(Reverter)
	if !ok {
		return fmt.Errorf("strategy %s does not support down migrations", m.strategy.Name())
	}
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}
	return reverter.Down(db, steps)
}

func (m *Manager) Version(db *gorm.DB) (int64, error) {
	reverter, ok := m.strategy.(Reverter)
	if !ok {
		return 0, fmt.Errorf("strategy %s is not versioned", m.strategy.Name())
	}
	return reverter.Version(db)
}
