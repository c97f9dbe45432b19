package stripeapi

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v72"
)

// Config configures a Client. Each field can be read from the environment via
// LoadConfig.
type Config struct {
	// Secret is the secret key used to authenticate against the API.
	Secret string `env:"STRIPE_SECRET" env-required:"true" env-description:"Stripe secret key"`

	// Version is sent in the Stripe-Version header of each request.
	Version string `env:"STRIPE_API_VERSION" env-description:"Stripe API version"`

	// BaseURL is the URL each path template is appended to.
	BaseURL string `env:"STRIPE_API_URL" env-description:"Stripe API base URL"`

	// Timeout is the timeout of the default HTTP client.
	Timeout time.Duration `env:"STRIPE_TIMEOUT" env-default:"80s" env-description:"Request timeout"`
}

const defaultTimeout = 80 * time.Second

// DefaultConfig returns the configuration for talking to the live Stripe API,
// without a secret.
func DefaultConfig() Config {
	return Config{
		Version: stripe.APIVersion,
		BaseURL: stripe.APIURL + "/v1",
		Timeout: defaultTimeout,
	}
}

// LoadConfig reads the configuration from the environment. The given dotenv
// files, if any, are loaded into the environment first. Unset fields other
// than the secret fall back to DefaultConfig.
func LoadConfig(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, err
		}
	}

	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.Version == "" {
		c.Version = def.Version
	}

	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}

	if c.Timeout == 0 {
		c.Timeout = def.Timeout
	}
	return c
}
