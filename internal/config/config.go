package config

import (
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/wmspro/wmsui/internal/errors"
)

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "wmsui.json"

	// EnvPrefix prefixes every environment variable.
	EnvPrefix = "WMSUI"
)

// Config holds all configuration for wmsui.
type Config struct {
	// Server configures the page bridge server.
	Server ServerConfig `mapstructure:"server"`
	// API configures calls to the WMS backend.
	API APIConfig `mapstructure:"api"`
	// Toast configures toast lifetimes.
	Toast ToastConfig `mapstructure:"toast"`
	// Search configures the global search redirect.
	Search SearchConfig `mapstructure:"search"`
	// Log configures the logger.
	Log LogConfig `mapstructure:"log"`
	// Metrics configures Prometheus metrics.
	Metrics MetricsConfig `mapstructure:"metrics"`
	// Tracing configures OpenTelemetry tracing.
	Tracing TracingConfig `mapstructure:"tracing"`
}

// ServerConfig configures the bridge server.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `mapstructure:"addr" default:":3000"`
	// Title is the page title.
	Title string `mapstructure:"title" default:"WMS Pro"`
	// MaxSessions caps concurrent page sessions; 0 means no cap.
	MaxSessions int `mapstructure:"max_sessions" default:"0"`
	// RenderDebounce coalesces page changes into one push.
	RenderDebounce time.Duration `mapstructure:"render_debounce" default:"10ms"`
	// IconScript is the icon library loaded by every page. Empty loads none.
	IconScript string `mapstructure:"icon_script" default:"https://unpkg.com/lucide@latest"`
	// InlineIcons converts icon placeholders on the server instead.
	InlineIcons bool `mapstructure:"inline_icons" default:"false"`
	// StaticDir holds files served under /static/. Empty or missing serves
	// none.
	StaticDir string `mapstructure:"static_dir" default:"static"`
	// DevMode disables client script caching.
	DevMode bool `mapstructure:"dev_mode" default:"false"`
}

// APIConfig configures the backend client.
type APIConfig struct {
	// BaseURL resolves relative request URLs.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:5000"`
	// Timeout bounds each request. Zero leaves requests unbounded.
	Timeout time.Duration `mapstructure:"timeout" default:"0s"`
}

// ToastConfig configures the toast lifecycle.
type ToastConfig struct {
	// Hold is how long a toast stays visible.
	Hold time.Duration `mapstructure:"hold" default:"4s"`
	// Fade is the exit animation length.
	Fade time.Duration `mapstructure:"fade" default:"300ms"`
}

// SearchConfig configures the global search redirect.
type SearchConfig struct {
	// Path is the page the search field navigates to.
	Path string `mapstructure:"path" default:"/inventory"`
	// Param is the query parameter carrying the search text.
	Param string `mapstructure:"param" default:"search"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" default:"info"`
	// Format is text or json.
	Format string `mapstructure:"format" default:"text"`
}

// MetricsConfig configures metrics.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string `mapstructure:"namespace" default:"wmsui"`
}

// TracingConfig configures tracing.
type TracingConfig struct {
	// Enabled wraps backend calls in client spans.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// ServiceName is the tracer name.
	ServiceName string `mapstructure:"service_name" default:"wmsui"`
	// Endpoint is the OTLP/HTTP collector address (host:port). Empty keeps
	// spans in process.
	Endpoint string `mapstructure:"endpoint" default:""`
	// Insecure sends spans over plain HTTP.
	Insecure bool `mapstructure:"insecure" default:"true"`
}

// Load reads configuration from dir: wmsui.json and .env if present, then
// the environment.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = "."
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	v := viper.New()
	bindValues(v, Config{}, "")

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.New("W010").WithDetail("reading " + configPath).Wrap(err)
		}
	}

	// Map environment variables to nested keys (WMSUI_SERVER_ADDR -> server.addr)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New("W010").WithDetail("decoding configuration").Wrap(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration with every default applied.
func Default() *Config {
	v := viper.New()
	bindValues(v, Config{}, "")
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate checks values that would otherwise fail later at use.
func (c *Config) Validate() error {
	invalid := func(detail string) error {
		return errors.New("W010").WithDetail(detail)
	}

	if c.API.BaseURL != "" {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return invalid("api.base_url must be an absolute URL, got " + c.API.BaseURL)
		}
	}
	if c.API.Timeout < 0 {
		return invalid("api.timeout must not be negative")
	}
	if c.Server.MaxSessions < 0 {
		return invalid("server.max_sessions must not be negative")
	}
	if c.Toast.Hold < 0 || c.Toast.Fade < 0 {
		return invalid("toast durations must not be negative")
	}
	if !strings.HasPrefix(c.Search.Path, "/") {
		return invalid("search.path must start with /")
	}
	if c.Search.Param == "" {
		return invalid("search.param must not be empty")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("log.level must be debug, info, warn or error")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return invalid("log.format must be text or json")
	}
	return nil
}

// bindValues registers every key with its `default` tag so that
// AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
