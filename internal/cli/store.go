package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nuggetscustoms/site/internal/config"
	"github.com/nuggetscustoms/site/orders"
	"github.com/nuggetscustoms/site/orders/filerepo"
	"github.com/nuggetscustoms/site/orders/sqliterepo"
	"github.com/rs/zerolog/log"
)

const (
	ordersFileName = "orders.json"
	ordersDBName   = "orders.db"
)

// openOrders opens the order store selected by ORDERS_BACKEND. The returned
// close func is always safe to call.
func openOrders(cfg config.Config) (orders.Repo, func(), error) {
	dataFolder := cfg.GetDataFolder()

	switch cfg.GetOrdersBackend() {
	case config.OrdersBackendSQLite:
		if err := os.MkdirAll(dataFolder, 0o755); err != nil {
			return nil, nil, fmt.Errorf("[openOrders] create data folder: %w", err)
		}
		path := filepath.Join(dataFolder, ordersDBName)
		repo, err := sqliterepo.Open(path)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("path", path).Msg("Using order database")
		closeRepo := func() {
			if err := repo.Close(); err != nil {
				log.Err(err).Msg("Failed to close order database")
			}
		}
		return repo, closeRepo, nil
	default:
		repo, err := filerepo.New(filepath.Join(dataFolder, ordersFileName))
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("path", repo.Path()).Msg("Using order file")
		return repo, func() {}, nil
	}
}
