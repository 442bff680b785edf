// Package config provides configuration management for Pantry Pal.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Pantry: inventory store backend (file or object) and blob names
//   - Storage: S3/MinIO credentials and bucket settings
//   - Lookup: UPCItemDB endpoint and timeout
//   - Recipes: language-model endpoint, key, model and token limit
//   - Database: recipe history database connection details
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
