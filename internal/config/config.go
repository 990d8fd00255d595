package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	SourceREST    = "rest"
	SourceGraphQL = "graphql"

	// DefaultUsername ist der feste Platzhalter für die USERNAME-Spalte.
	DefaultUsername = "Antonette"
)

type Config struct {
	APIURL          string
	GraphQLURL      string
	Source          string
	Username        string
	ResolveUsername bool
	OutputDir       string
	ShowProgress    bool
	LogLevel        string
	Verbose         bool
}

func NewConfig() (*Config, error) {
	// .env laden (ignoriere Fehler wenn Datei nicht existiert)
	if os.Getenv("GODOTENV_DISABLE") == "" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("fehler beim Laden der .env: %w", err)
		}
	}

	cfg := &Config{
		APIURL:          getEnv("TODO_API_URL", "https://jsonplaceholder.typicode.com"),
		GraphQLURL:      getEnv("TODO_GRAPHQL_URL", "https://graphqlzero.almansi.me/api"),
		Source:          getEnv("TODO_SOURCE", SourceREST),
		Username:        getEnv("EXPORT_USERNAME", DefaultUsername),
		ResolveUsername: getBoolEnv("RESOLVE_USERNAME", false),
		OutputDir:       getEnv("OUTPUT_DIR", "."),
		ShowProgress:    getBoolEnv("SHOW_PROGRESS", false),
		LogLevel:        getEnv("LOG_LEVEL", "warn"),
		Verbose:         getBoolEnv("VERBOSE", false),
	}

	return cfg, nil
}

// PrintDebugInfo schreibt die geladene Konfiguration (ohne Secrets) nach w.
func (c *Config) PrintDebugInfo(w io.Writer) {
	fmt.Fprintf(w, "🔧 Configuration loaded:\n")
	fmt.Fprintf(w, "   Source: %s\n", c.Source)
	fmt.Fprintf(w, "   API URL: %s\n", c.GetAPIBaseURL())
	fmt.Fprintf(w, "   GraphQL URL: %s\n", c.GraphQLURL)
	fmt.Fprintf(w, "   Output Dir: %s\n", c.OutputDir)
	fmt.Fprintf(w, "   Username: %s (resolve: %t)\n", c.Username, c.ResolveUsername)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	switch c.Source {
	case SourceREST:
		if c.APIURL == "" {
			return fmt.Errorf("API URL fehlt (TODO_API_URL)")
		}
	case SourceGraphQL:
		if c.GraphQLURL == "" {
			return fmt.Errorf("GraphQL URL fehlt (TODO_GRAPHQL_URL)")
		}
	default:
		return fmt.Errorf("unbekannte Quelle %q (erlaubt: rest, graphql)", c.Source)
	}
	if c.Username == "" && !c.ResolveUsername {
		return fmt.Errorf("username fehlt (EXPORT_USERNAME)")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("ausgabeverzeichnis fehlt (OUTPUT_DIR)")
	}
	return nil
}

func (c *Config) GetAPIBaseURL() string {
	return strings.TrimSuffix(c.APIURL, "/")
}
