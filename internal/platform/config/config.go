package config

import (
	"os"
	"strings"
)

// Server captures process-level configuration.
type Server struct {
	Addr               string
	DatabaseURL        string
	CORSAllowedOrigins []string
	SeedOnStart        bool
}

// defaultOrigins covers the public frontend plus the local dev servers.
var defaultOrigins = []string{
	"https://sentinelles.declic.cloud",
	"http://localhost:5173",
	"http://localhost:3000",
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("SENTINELLES_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	origins := defaultOrigins
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = nil
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Server{
		Addr:               addr,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		CORSAllowedOrigins: origins,
		SeedOnStart:        os.Getenv("SEED_ON_START") == "true",
	}
}
