// Package config provides configuration management for the feed service.
//
// It utilizes Viper for loading configuration from environment variables and an optional
// .env file. Defaults come from the `default` struct tags of every section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, API key and shutdown bound
//   - Database: MySQL connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - List: flat list engine settings (pre data count, placeholder id range, cache sizes)
//   - Feed: section table and content source
//
// Nested keys map to upper case environment variables, e.g. list.pre_data_count is
// LIST_PRE_DATA_COUNT.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
