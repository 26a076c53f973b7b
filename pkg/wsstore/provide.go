/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package wsstore

import (
	"time"

	bolt "go.etcd.io/bbolt"
)

// Opens store file, creates it if not exists
func Open(path string) (IStore, error) {
	return open(path, time.Now)
}

func open(path string, now func() time.Time) (*store, error) {
	db, err := bolt.Open(path, fileMode, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, err
	}
	if err := initDB(db); err != nil {
		db.Close()
		return nil, err
	}
	return &store{db: db, now: now}, nil
}
