// Package database handles connections to the catalog database.
//
// It provides a wrapper around GORM to configure MySQL (production) or SQLite
// (local runs and tests) connections based on the application's configuration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
