package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CAMPUS_HTTP_PORT",
		"CAMPUS_STORAGE",
		"CAMPUS_DB_PATH",
		"CAMPUS_SQLITE_DSN",
		"CAMPUS_SESSION_TTL",
		"CAMPUS_SEED_USERS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTPPort != 8080 {
		t.Errorf("HTTPPort = %d, want 8080", cfg.HTTPPort)
	}
	if cfg.Storage != StorageFile {
		t.Errorf("Storage = %q, want %q", cfg.Storage, StorageFile)
	}
	if cfg.DataPath != "db/data.json" {
		t.Errorf("DataPath = %q, want db/data.json", cfg.DataPath)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want 24h", cfg.SessionTTL)
	}
	if len(cfg.SeedUsers) != 3 {
		t.Fatalf("SeedUsers length = %d, want 3", len(cfg.SeedUsers))
	}
	if cfg.SeedUsers[0].Username != "admin" || !hasRole(cfg.SeedUsers[0].Roles, "admin") {
		t.Errorf("first seed user = %+v, want admin account", cfg.SeedUsers[0])
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CAMPUS_HTTP_PORT", "9090")
	t.Setenv("CAMPUS_STORAGE", StorageSQLite)
	t.Setenv("CAMPUS_SQLITE_DSN", "file:other.db")
	t.Setenv("CAMPUS_SESSION_TTL", "30m")
	t.Setenv("CAMPUS_SEED_USERS", "root:rootpass:admin|manager;viewer:viewerpass:public")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTPPort != 9090 {
		t.Errorf("HTTPPort = %d, want 9090", cfg.HTTPPort)
	}
	if cfg.Storage != StorageSQLite {
		t.Errorf("Storage = %q, want sqlite", cfg.Storage)
	}
	if cfg.SQLiteDSN != "file:other.db" {
		t.Errorf("SQLiteDSN = %q", cfg.SQLiteDSN)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want 30m", cfg.SessionTTL)
	}
	if len(cfg.SeedUsers) != 2 {
		t.Fatalf("SeedUsers length = %d, want 2", len(cfg.SeedUsers))
	}
	root := cfg.SeedUsers[0]
	if root.Username != "root" || root.Password != "rootpass" {
		t.Errorf("first seed user = %+v", root)
	}
	if !hasRole(root.Roles, "admin") || !hasRole(root.Roles, "manager") {
		t.Errorf("first seed user roles = %v, want admin and manager", root.Roles)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"bad port", "CAMPUS_HTTP_PORT", "not-a-port"},
		{"negative port", "CAMPUS_HTTP_PORT", "-1"},
		{"unknown storage", "CAMPUS_STORAGE", "cassandra"},
		{"bad ttl", "CAMPUS_SESSION_TTL", "soon"},
		{"zero ttl", "CAMPUS_SESSION_TTL", "0s"},
		{"seed users missing roles", "CAMPUS_SEED_USERS", "admin:adminpass:"},
		{"seed users malformed", "CAMPUS_SEED_USERS", "admin-adminpass-admin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("Load accepted %s=%q", tc.key, tc.value)
			}
			if !strings.Contains(err.Error(), tc.key) {
				t.Errorf("error %q does not name %s", err, tc.key)
			}
		})
	}
}

func hasRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
