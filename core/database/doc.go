// Package database manages the relational database connection used by the
// recipe history store.
//
// The connection is optional: when no database is reachable the application
// still serves the pantry, and only recipe archiving is unavailable.
//
// # Drivers
//
//   - mysql: production deployments, DSN built from Config with strict
//     connection and I/O timeouts.
//   - sqlite: local single-binary runs and tests (supports ":memory:").
//
// # Usage
//
//	db, err := database.Connect(cfg)
//	if err != nil {
//	    log.Warn("history store unavailable", zap.Error(err))
//	}
package database
