package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath        = "."
	defaultCartTTL     = 5 * time.Minute
	defaultHTTPTimeout = 30 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Commerce holds the connection settings for the external commerce
	// platform. StoreURL is the storefront cart/checkout API root, APIURL the
	// management API root (customers, orders, products), AuthURL the token
	// endpoint root and PagesURL the CMS pages root.
	Commerce *CommerceConfig `json:"commerce" yaml:"commerce"`

	// Wishlist is a separate backend from the commerce platform.
	Wishlist *WishlistConfig `json:"wishlist" yaml:"wishlist"`

	// Geocode configures the postal pincode lookup used during checkout.
	Geocode *GeocodeConfig `json:"geocode" yaml:"geocode"`

	// Razorpay configures the hosted payment gateway handoff.
	Razorpay *RazorpayConfig `json:"razorpay" yaml:"razorpay"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Cache *CacheConfig `json:"cache" yaml:"cache"`
}

// CommerceConfig defines endpoints and credentials for the commerce backend.
type CommerceConfig struct {
	StoreURL     string        `json:"storeUrl" yaml:"storeUrl"`
	APIURL       string        `json:"apiUrl" yaml:"apiUrl"`
	AuthURL      string        `json:"authUrl" yaml:"authUrl"`
	PagesURL     string        `json:"pagesUrl" yaml:"pagesUrl"`
	ClientKey    string        `json:"clientKey" yaml:"clientKey"`
	ClientSecret string        `json:"clientSecret" yaml:"clientSecret"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

// WishlistConfig defines the wishlist service endpoint.
type WishlistConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// GeocodeConfig defines the postal pincode lookup endpoint.
type GeocodeConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// RazorpayConfig defines the payment gateway credentials.
type RazorpayConfig struct {
	KeyID     string `json:"keyId" yaml:"keyId"`
	KeySecret string `json:"keySecret" yaml:"keySecret"`
}

// SessionConfig defines how customer sessions are carried.
type SessionConfig struct {
	CookieName string        `json:"cookieName" yaml:"cookieName"`
	CookieTTL  time.Duration `json:"cookieTtl" yaml:"cookieTtl"`
	// Secret optionally enables local verification of the commerce-issued
	// token signature. When empty, claims are extracted without verification
	// and the commerce backend remains the authority.
	Secret string `json:"secret" yaml:"secret"`
}

// CacheConfig defines the redis cart cache.
type CacheConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	CartTTL  time.Duration `json:"cartTtl" yaml:"cartTtl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf, then overlays environment
// variables on top of the file values.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to a dotted path and align each segment
			// with existing YAML keys.
			// Example: COMMERCE_CLIENTSECRET -> commerce.clientSecret
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

// validate performs presence checks only; the commerce backend owns all
// deeper validation of the credentials it receives.
func (cfg *Config) validate() error {
	if cfg.Commerce == nil {
		return errors.New("commerce configuration is required")
	}
	if cfg.Commerce.StoreURL == "" || cfg.Commerce.APIURL == "" {
		return errors.New("commerce storeUrl and apiUrl are required")
	}
	if cfg.Commerce.ClientKey == "" || cfg.Commerce.ClientSecret == "" {
		return errors.New("commerce client credentials are required")
	}

	return nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Commerce.Timeout == 0 {
		cfg.Commerce.Timeout = defaultHTTPTimeout
	}
	if cfg.Wishlist != nil && cfg.Wishlist.Timeout == 0 {
		cfg.Wishlist.Timeout = defaultHTTPTimeout
	}
	if cfg.Geocode != nil && cfg.Geocode.Timeout == 0 {
		cfg.Geocode.Timeout = defaultHTTPTimeout
	}
	if cfg.Cache != nil && cfg.Cache.CartTTL == 0 {
		cfg.Cache.CartTTL = defaultCartTTL
	}
	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "jwt_token"
	}
	if cfg.Session.CookieTTL == 0 {
		cfg.Session.CookieTTL = 7 * 24 * time.Hour
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
