// Package config provides configuration management for the Catalog Manager.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: catalog database connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Feed: backend product feed endpoint and categories
//   - Campaign: campaign code spreadsheet object
//   - Reconcile: stock-ignore flag, default brand, plan TTL
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Feed.CategoryList())
package config
