package root

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nhle/kids-todo/internal/model"
	"github.com/nhle/kids-todo/internal/store"
)

// openGateway loads the configuration, opens the SQLite blob store, and
// wraps it in a persistence gateway. The returned cleanup closes the db.
func openGateway() (*model.AppConfig, *store.Gateway, func(), error) {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	dir := filepath.Dir(cfg.Storage.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, nil, fmt.Errorf("creating data directory %s: %w", dir, err)
	}

	s, err := store.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		return nil, nil, nil, err
	}

	cleanup := func() { _ = s.Close() }
	return cfg, store.NewGateway(s), cleanup, nil
}
