package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/example/campus-scheduler/internal/application"
)

// Storage backend names accepted by CAMPUS_STORAGE.
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Config captures environment driven configuration values for the campus
// scheduling service.
type Config struct {
	HTTPPort   int
	Storage    string
	DataPath   string
	SQLiteDSN  string
	SessionTTL time.Duration
	SeedUsers  []application.SeedUser
}

// Load parses configuration values from the current process environment.
//
// Optional fields fall back to sensible defaults; invalid values are
// collected and reported together.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:   8080,
		Storage:    StorageFile,
		DataPath:   "db/data.json",
		SQLiteDSN:  "file:campus.db?_foreign_keys=on",
		SessionTTL: 24 * time.Hour,
		SeedUsers:  defaultSeedUsers(),
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("CAMPUS_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "CAMPUS_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if storage := strings.TrimSpace(os.Getenv("CAMPUS_STORAGE")); storage != "" {
		switch storage {
		case StorageMemory, StorageFile, StorageSQLite:
			cfg.Storage = storage
		default:
			invalid = append(invalid, "CAMPUS_STORAGE")
		}
	}

	if path := strings.TrimSpace(os.Getenv("CAMPUS_DB_PATH")); path != "" {
		cfg.DataPath = path
	}

	if dsn := strings.TrimSpace(os.Getenv("CAMPUS_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if ttlValue := strings.TrimSpace(os.Getenv("CAMPUS_SESSION_TTL")); ttlValue != "" {
		ttl, err := time.ParseDuration(ttlValue)
		if err != nil || ttl <= 0 {
			invalid = append(invalid, "CAMPUS_SESSION_TTL")
		} else {
			cfg.SessionTTL = ttl
		}
	}

	if seedValue := strings.TrimSpace(os.Getenv("CAMPUS_SEED_USERS")); seedValue != "" {
		seeds, err := parseSeedUsers(seedValue)
		if err != nil {
			invalid = append(invalid, "CAMPUS_SEED_USERS")
		} else {
			cfg.SeedUsers = seeds
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// parseSeedUsers parses "user:pass:role1|role2;user2:pass2:role" into seed
// accounts.
func parseSeedUsers(value string) ([]application.SeedUser, error) {
	entries := strings.Split(value, ";")
	seeds := make([]application.SeedUser, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("seed user entry %q must look like user:pass:role1|role2", entry)
		}
		username := strings.TrimSpace(parts[0])
		password := parts[1]
		if username == "" || password == "" {
			return nil, fmt.Errorf("seed user entry %q has an empty username or password", entry)
		}
		roles := make([]string, 0, 2)
		for _, role := range strings.Split(parts[2], "|") {
			if role = strings.TrimSpace(role); role != "" {
				roles = append(roles, role)
			}
		}
		if len(roles) == 0 {
			return nil, fmt.Errorf("seed user entry %q names no roles", entry)
		}
		seeds = append(seeds, application.SeedUser{Username: username, Password: password, Roles: roles})
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no seed users configured")
	}
	return seeds, nil
}

func defaultSeedUsers() []application.SeedUser {
	return []application.SeedUser{
		{Username: "admin", Password: "adminpass", Roles: []string{"admin"}},
		{Username: "manager", Password: "managerpass", Roles: []string{"manager"}},
		{Username: "public", Password: "publicpass", Roles: []string{"public"}},
	}
}
