package server

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/goccy/go-yaml"

	"github.com/basecamp/cookie-composer/pkg/cookie"
)

const (
	DefaultHttpPort   = 3000
	DefaultCookiePath = "/"
)

type Config struct {
	Bind        string
	HttpPort    int
	MetricsPort int

	CookieConfigPath string
}

// CookieDefaults are the attributes the demo pages give every cookie they
// write. Removal uses the same attributes so that it targets the same slot.
type CookieDefaults struct {
	Domain   string `yaml:"domain"`
	Path     string `yaml:"path"`
	Secure   bool   `yaml:"secure"`
	HTTPOnly bool   `yaml:"http_only"`
	SameSite string `yaml:"same_site"`
	MaxAge   int    `yaml:"max_age"`
}

func (c Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.HttpPort)
}

func (c Config) CookieConfigFile() string {
	return cmp.Or(c.CookieConfigPath, c.defaultCookieConfigFile())
}

func LoadCookieDefaults(configPath string) (CookieDefaults, error) {
	defaults := CookieDefaults{Path: DefaultCookiePath}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("No cookie configuration found, using defaults", "path", configPath)
			return defaults, nil
		}
		return defaults, fmt.Errorf("failed to read cookie configuration %s: %w", configPath, err)
	}

	err = yaml.Unmarshal(data, &defaults)
	if err != nil {
		return defaults, fmt.Errorf("failed to parse cookie configuration %s: %w", configPath, err)
	}

	if defaults.SameSite != "" {
		_, err = cookie.ParseSameSite(defaults.SameSite)
		if err != nil {
			return defaults, fmt.Errorf("invalid cookie configuration %s: %w", configPath, err)
		}
	}

	_, err = cookie.New(VisitsCookie, "", defaults.WriteOptions()...)
	if err != nil {
		return defaults, fmt.Errorf("invalid cookie configuration %s: %w", configPath, err)
	}

	slog.Info("Loaded cookie configuration", "path", configPath)
	return defaults, nil
}

// SlotOptions are the attributes that identify a cookie slot.
func (d CookieDefaults) SlotOptions() []cookie.Option {
	opts := []cookie.Option{
		cookie.WithDomain(d.Domain),
		cookie.WithPath(d.Path),
		cookie.WithSecure(d.Secure),
		cookie.WithHTTPOnly(d.HTTPOnly),
	}

	if sameSite, err := cookie.ParseSameSite(d.SameSite); err == nil {
		opts = append(opts, cookie.WithSameSite(sameSite))
	}

	return opts
}

func (d CookieDefaults) WriteOptions() []cookie.Option {
	opts := d.SlotOptions()
	if d.MaxAge != 0 {
		opts = append(opts, cookie.WithMaxAge(d.MaxAge))
	}
	return opts
}

// Private

func (c Config) defaultCookieConfigFile() string {
	home, err := os.UserConfigDir()
	if err != nil {
		home = os.TempDir()
	}

	return path.Join(home, "cookie-composer", "cookies.yml")
}
