// Package tmdb provides a client for The Movie Database catalog API.
package tmdb

import (
	"os"
	"time"
)

// DefaultBaseURL is the production TMDB API root.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Config holds configuration for the TMDB API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads TMDB configuration from environment variables.
// The loaded struct is injected into the client at construction; nothing in
// the request path reads the environment.
func LoadConfig() Config {
	base := os.Getenv("TMDB_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("TMDB_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
