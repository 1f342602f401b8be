// Package config loads storefront client configuration.
//
// # Overview
//
// Configuration lives in a TOML file (default ~/.config/storefront/config.toml)
// and covers the Resource Gateway base URL, the device-local data directory,
// the default page size, the request timeout, and the infinite-scroll debounce
// delay. Every field has a sensible default so the client runs with no config
// file at all.
//
// # Resolution Order
//
// Values are resolved in three layers, later layers winning:
//
//  1. Built-in defaults
//  2. TOML file values
//  3. Environment variables (a .env file is honored via godotenv):
//     STOREFRONT_API_URL, STOREFRONT_DATA_DIR, STOREFRONT_PAGE_SIZE
//
// # Path Expansion
//
// Paths beginning with ~ are expanded to the user's home directory and made
// absolute. A missing config file is not an error; a present but malformed
// one is, since silently ignoring a user's explicit configuration hides
// mistakes.
package config
