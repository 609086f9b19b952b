package db

import (
	"errors"
	"io/fs"
	"regexp"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("BUNK_JWT_SECRET", "")
	t.Setenv("BUNK_DB_PASSWORD", "")

	cfg, err := ParseConfig([]byte("auth:\n  jwt_secret: s3cret\nstorage:\n  driver: BOLT\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "dev" || cfg.Listen != ":8443" {
		t.Errorf("mode=%q listen=%q", cfg.Mode, cfg.Listen)
	}
	if cfg.Storage.Driver != DriverBolt || cfg.Storage.BoltPath == "" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour || cfg.Sessions.TTL != 2*time.Hour {
		t.Errorf("ttl token=%s session=%s", cfg.Auth.TokenTTL, cfg.Sessions.TTL)
	}
	if cfg.TLSEnabled() {
		t.Error("TLS enabled without certificates")
	}
}

func TestParseConfigEnvOverrides(t *testing.T) {
	t.Setenv("BUNK_JWT_SECRET", "from-env")
	t.Setenv("BUNK_DB_PASSWORD", "pw")

	cfg, err := ParseConfig([]byte("mode: release\nauth:\n  token_ttl: 30m\nsessions:\n  ttl: 15m\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Auth.JWTSecret != "from-env" || cfg.DB.Password != "pw" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Auth.TokenTTL != 30*time.Minute || cfg.Sessions.TTL != 15*time.Minute {
		t.Errorf("ttl token=%s session=%s", cfg.Auth.TokenTTL, cfg.Sessions.TTL)
	}
}

func TestParseConfigErrors(t *testing.T) {
	t.Setenv("BUNK_JWT_SECRET", "")
	for name, doc := range map[string]string{
		"missing secret": "mode: dev\n",
		"bad mode":       "mode: staging\nauth:\n  jwt_secret: x\n",
		"bad driver":     "storage:\n  driver: postgres\nauth:\n  jwt_secret: x\n",
		"bad yaml":       "mode: [\n",
	} {
		if _, err := ParseConfig([]byte(doc)); err == nil {
			t.Errorf("%s: accepted", name)
		}
	}
}

func TestIsDuplicateKey(t *testing.T) {
	if !IsDuplicateKey(&mysql.MySQLError{Number: 1062}) {
		t.Error("1062 not detected")
	}
	if IsDuplicateKey(&mysql.MySQLError{Number: 1064}) || IsDuplicateKey(errors.New("x")) {
		t.Error("false positive")
	}
}

func TestMigrationsOrdered(t *testing.T) {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) < 4 || !sort.StringsAreSorted(names) {
		t.Fatalf("migrations = %v", names)
	}
}

// name_key is already case-folded, so it must compare byte for byte like
// the bolt index does.
func TestClassNameKeyIsBinary(t *testing.T) {
	binary := regexp.MustCompile(`name_key\s+VARCHAR\(128\)[^,\n]*COLLATE utf8mb4_bin`)
	for _, name := range []string{"migrations/0001_classes.sql", "migrations/0004_classes_name_key_binary.sql"} {
		body, err := migrationFiles.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		if !binary.Match(body) {
			t.Errorf("%s: name_key not declared utf8mb4_bin:\n%s", name, body)
		}
	}

	body, err := migrationFiles.ReadFile("migrations/0003_classes_special_dates.sql")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "special_dates JSON NULL") {
		t.Errorf("0003 = %s", body)
	}
}
