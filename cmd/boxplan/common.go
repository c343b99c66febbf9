package main

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/metalagman/boxplan/internal/history"
)

func openDB() (*sql.DB, string, func(), error) {
	repoRoot, err := os.Getwd()
	if err != nil {
		return nil, "", func() {}, err
	}
	stateDir := filepath.Join(repoRoot, ".boxplan")
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, "", func() {}, err
	}
	dbPath := filepath.Join(stateDir, "boxplan.db")
	storeDB, err := history.Open(dbPath)
	if err != nil {
		return nil, "", func() {}, err
	}
	return storeDB, repoRoot, func() { _ = storeDB.Close() }, nil
}
