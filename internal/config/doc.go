// Package config provides configuration loading, merging, and validation
// facilities for the dashboard server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (fills environment variables that are not set yet)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Defaults are applied after merging and the result is validated. The main
// entry point is [GetStructuredConfig].
package config
