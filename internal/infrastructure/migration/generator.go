package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"bulletin/internal/shared/logger"
)

var migrationNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Generator writes empty migration files for both dialects so that the
// embedded script sets stay in step.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
		now:         time.Now,
	}
}

// Create writes a goose file per dialect, or an up/down pair per dialect
// for golang-migrate. It returns the created paths.
func (g *Generator) Create(strategy, name string) ([]string, error) {
	if !migrationNamePattern.MatchString(name) {
		return nil, fmt.Errorf("migration name %q must be snake_case", name)
	}

	stamp := g.now().UTC().Format("20060102150405")
	var created []string

	for _, dialect := range []string{DialectMySQL, DialectSQLite3} {
		var files map[string]string

		switch strategy {
		case StrategyGoose:
			files = map[string]string{
				filepath.Join(g.scriptsPath, "goose", dialect, fmt.Sprintf("%s_%s.sql", stamp, name)): gooseTemplate(name),
			}
		case StrategyGolangMigrate:
			dir := filepath.Join(g.scriptsPath, "migrate", dialect)
			files = map[string]string{
				filepath.Join(dir, fmt.Sprintf("%s_%s.up.sql", stamp, name)):   fmt.Sprintf("-- Migration: %s\n", name),
				filepath.Join(dir, fmt.Sprintf("%s_%s.down.sql", stamp, name)): fmt.Sprintf("-- Rollback: %s\n", name),
			}
		default:
			return nil, fmt.Errorf("strategy %q does not use migration files", strategy)
		}

		for path, content := range files {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, fmt.Errorf("failed to create scripts directory: %w", err)
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return nil, fmt.Errorf("failed to write migration file: %w", err)
			}
			created = append(created, path)
		}
	}

	g.logger.Infow("migration files created", "name", name, "files", created)
	return created, nil
}

func gooseTemplate(name string) string {
	return fmt.Sprintf(`-- Migration: %s

-- +goose Up

-- +goose Down
`, name)
}
