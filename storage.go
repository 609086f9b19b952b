package main

import (
	"database/sql"
	"fmt"
	"log"

	"bunkmeter-backend/internal/attendance"
	"bunkmeter-backend/internal/classes"
	"bunkmeter-backend/internal/platform/db"
	"bunkmeter-backend/internal/platform/kv"
)

// storage is the repository pair for the configured driver.
type storage struct {
	classes    classes.Repository
	attendance attendance.Repository
	close      func() error
}

func (s *storage) Close() {
	if err := s.close(); err != nil {
		log.Printf("[WARN] close storage: %v", err)
	}
}

func openStorage(cfg *db.Config) (*storage, error) {
	switch cfg.Storage.Driver {
	case db.DriverBolt:
		store, err := kv.Open(cfg.Storage.BoltPath,
			classes.BucketClasses, classes.BucketClassNames, attendance.BucketSubmissions)
		if err != nil {
			return nil, err
		}
		return &storage{
			classes:    classes.NewBoltStore(store),
			attendance: attendance.NewBoltStore(store),
			close:      store.Close,
		}, nil

	case db.DriverMySQL:
		conn, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return mysqlStorage(conn), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func mysqlStorage(conn *sql.DB) *storage {
	return &storage{
		classes:    classes.NewStore(conn),
		attendance: attendance.NewStore(conn),
		close:      conn.Close,
	}
}
