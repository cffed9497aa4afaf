package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(values map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, noEnv)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.RunAddress != defaultRunAddress {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.DatabaseURI != "" {
		t.Fatalf("expected empty DSN, got %q", cfg.DatabaseURI)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Fatalf("unexpected token TTL %v", cfg.TokenTTL)
	}
	if cfg.MinJobBudget != defaultMinJobBudget {
		t.Fatalf("unexpected min budget %v", cfg.MinJobBudget)
	}
	if cfg.CommissionRate != defaultCommissionRate {
		t.Fatalf("unexpected commission rate %v", cfg.CommissionRate)
	}
	if cfg.WorkerPoolSize != defaultWorkerPoolSize || cfg.MaxOrdersBatch != defaultMaxOrdersBatch {
		t.Fatalf("unexpected worker settings %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	cfg, err := load(nil, envMap(map[string]string{
		"RUN_ADDRESS":            ":9090",
		"DATABASE_URI":           "postgres://localhost/writershub",
		"JWT_SECRET":             "env-secret",
		"TOKEN_TTL":              "2h",
		"MIN_JOB_BUDGET":         "12.5",
		"COMMISSION_RATE":        "0.2",
		"DEADLINE_POLL_INTERVAL": "30s",
		"WORKER_POOL_SIZE":       "8",
		"POLL_BATCH_SIZE":        "64",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.RunAddress != ":9090" || cfg.DatabaseURI != "postgres://localhost/writershub" {
		t.Fatalf("environment not applied: %+v", cfg)
	}
	if cfg.JWTSecret != "env-secret" || cfg.TokenTTL != 2*time.Hour {
		t.Fatalf("auth settings not applied: %+v", cfg)
	}
	if cfg.MinJobBudget != 12.5 || cfg.CommissionRate != 0.2 {
		t.Fatalf("marketplace settings not applied: %+v", cfg)
	}
	if cfg.DeadlinePollInterval != 30*time.Second || cfg.WorkerPoolSize != 8 || cfg.MaxOrdersBatch != 64 {
		t.Fatalf("worker settings not applied: %+v", cfg)
	}
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	args := []string{
		"-a", ":7070",
		"-d", "postgres://flag/db",
		"-jwt-secret", "flag-secret",
		"-min-budget", "20",
		"-worker-pool", "2",
		"-poll-interval", "5s",
		"-shutdown-timeout", "3s",
		"-poll-batch", "16",
	}
	cfg, err := load(args, envMap(map[string]string{
		"RUN_ADDRESS": ":9090",
		"JWT_SECRET":  "env-secret",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.RunAddress != ":7070" || cfg.DatabaseURI != "postgres://flag/db" {
		t.Fatalf("flags must win: %+v", cfg)
	}
	if cfg.JWTSecret != "flag-secret" || cfg.MinJobBudget != 20 {
		t.Fatalf("flags must win: %+v", cfg)
	}
	if cfg.WorkerPoolSize != 2 || cfg.DeadlinePollInterval != 5*time.Second {
		t.Fatalf("worker flags not applied: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 3*time.Second || cfg.MaxOrdersBatch != 16 {
		t.Fatalf("shutdown flags not applied: %+v", cfg)
	}
}

func TestLoadJWTSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	cfg, err := load(nil, envMap(map[string]string{"JWT_SECRET_FILE": path}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Fatalf("secret file not applied: %q", cfg.JWTSecret)
	}

	if _, err := load(nil, envMap(map[string]string{"JWT_SECRET_FILE": path + "-missing"})); err == nil {
		t.Fatalf("expected error for missing secret file")
	}
}

func TestLoadSanitizesBadValues(t *testing.T) {
	cfg, err := load([]string{"-worker-pool", "0", "-poll-batch", "-1"}, envMap(map[string]string{
		"COMMISSION_RATE": "1.5",
		"TOKEN_TTL":       "-1h",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.WorkerPoolSize != defaultWorkerPoolSize {
		t.Fatalf("zero pool must fall back, got %d", cfg.WorkerPoolSize)
	}
	if cfg.MaxOrdersBatch != defaultMaxOrdersBatch {
		t.Fatalf("negative batch must fall back, got %d", cfg.MaxOrdersBatch)
	}
	if cfg.CommissionRate != defaultCommissionRate {
		t.Fatalf("commission rate above 1 must fall back, got %v", cfg.CommissionRate)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Fatalf("negative TTL must fall back, got %v", cfg.TokenTTL)
	}
}

func TestLoadBadFlag(t *testing.T) {
	if _, err := load([]string{"-poll-interval", "nope"}, noEnv); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
	if _, err := load([]string{"-unknown"}, noEnv); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}
