package stripeapi

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v72"
)

// unsetenv unsets the given variables for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	for _, key := range keys {
		if val, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, val) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

var configKeys = []string{
	"STRIPE_SECRET",
	"STRIPE_API_VERSION",
	"STRIPE_API_URL",
	"STRIPE_TIMEOUT",
}

func Test_LoadConfig(t *testing.T) {
	unsetenv(t, configKeys...)

	t.Setenv("STRIPE_SECRET", "sk_test_123")

	cfg, err := LoadConfig()

	if err != nil {
		t.Fatal(err)
	}

	expected := Config{
		Secret:  "sk_test_123",
		Version: stripe.APIVersion,
		BaseURL: stripe.APIURL + "/v1",
		Timeout: 80 * time.Second,
	}

	if cfg != expected {
		t.Errorf("unexpected config, expected=%+v, got=%+v\n", expected, cfg)
	}
}

func Test_LoadConfigDotenv(t *testing.T) {
	unsetenv(t, configKeys...)

	t.Setenv("STRIPE_TIMEOUT", "5s")

	env := filepath.Join(t.TempDir(), ".env")

	contents := "STRIPE_SECRET=sk_test_dotenv\n" +
		"STRIPE_API_VERSION=2022-11-15\n" +
		"STRIPE_API_URL=http://localhost:12111/v1\n" +
		"STRIPE_TIMEOUT=30s\n"

	if err := os.WriteFile(env, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(env)

	if err != nil {
		t.Fatal(err)
	}

	expected := Config{
		Secret:  "sk_test_dotenv",
		Version: "2022-11-15",
		BaseURL: "http://localhost:12111/v1",
		Timeout: 5 * time.Second,
	}

	if cfg != expected {
		t.Errorf("unexpected config, expected=%+v, got=%+v\n", expected, cfg)
	}
}

func Test_LoadConfigMissingSecret(t *testing.T) {
	unsetenv(t, configKeys...)

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing secret")
	}
}

func Test_LoadConfigMissingFile(t *testing.T) {
	unsetenv(t, configKeys...)

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
