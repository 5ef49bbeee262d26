package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Catalog  CatalogConfig
	Render   RenderConfig
	Session  SessionConfig
	Animator AnimatorConfig
}

type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level    string
	Encoding string
}

type CatalogConfig struct {
	Size           int
	Seed           uint64
	VocabularyFile string
}

type RenderConfig struct {
	PageSize        int
	ScrollProximity int
	// Slots lists the card slots the item template provides; empty means all.
	Slots        []string
	TemplateFile string
}

type SessionConfig struct {
	Max            int
	SearchDebounce time.Duration
	IdleTimeout    time.Duration
	SweepInterval  time.Duration
}

type AnimatorConfig struct {
	ProductInterval   time.Duration
	AggregateInterval time.Duration
	RegionInterval    time.Duration
	MaxProductStep    int
	FlipProbability   float64
	AggregateMaxStep  int
	AggregateStart    int
	RegionMaxStep     int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_ENCODING", "json")
	v.SetDefault("CATALOG_SIZE", 500)
	v.SetDefault("CATALOG_SEED", 0)
	v.SetDefault("CATALOG_VOCABULARY_FILE", "")
	v.SetDefault("RENDER_PAGE_SIZE", 20)
	v.SetDefault("RENDER_SCROLL_PROXIMITY", 600)
	v.SetDefault("RENDER_SLOTS", "")
	v.SetDefault("RENDER_TEMPLATE_FILE", "")
	v.SetDefault("SESSION_MAX", 1000)
	v.SetDefault("SEARCH_DEBOUNCE", "200ms")
	v.SetDefault("SESSION_IDLE_TIMEOUT", "30m")
	v.SetDefault("SESSION_SWEEP_INTERVAL", "1m")
	v.SetDefault("ANIMATOR_PRODUCT_INTERVAL", "2500ms")
	v.SetDefault("ANIMATOR_AGGREGATE_INTERVAL", "1s")
	v.SetDefault("ANIMATOR_REGION_INTERVAL", "1s")
	v.SetDefault("ANIMATOR_MAX_PRODUCT_STEP", 8)
	v.SetDefault("ANIMATOR_FLIP_PROBABILITY", 0.02)
	v.SetDefault("ANIMATOR_AGGREGATE_MAX_STEP", 25)
	v.SetDefault("ANIMATOR_AGGREGATE_START", 34305)
	v.SetDefault("ANIMATOR_REGION_MAX_STEP", 3)
}

// Load reads configuration from the environment. When configFile is not
// empty it is read first and environment variables override its keys.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
		},
		Log: LogConfig{
			Level:    v.GetString("LOG_LEVEL"),
			Encoding: v.GetString("LOG_ENCODING"),
		},
		Catalog: CatalogConfig{
			Size:           v.GetInt("CATALOG_SIZE"),
			Seed:           v.GetUint64("CATALOG_SEED"),
			VocabularyFile: v.GetString("CATALOG_VOCABULARY_FILE"),
		},
		Render: RenderConfig{
			PageSize:        v.GetInt("RENDER_PAGE_SIZE"),
			ScrollProximity: v.GetInt("RENDER_SCROLL_PROXIMITY"),
			Slots:           splitList(v.GetString("RENDER_SLOTS")),
			TemplateFile:    v.GetString("RENDER_TEMPLATE_FILE"),
		},
		Session: SessionConfig{
			Max:            v.GetInt("SESSION_MAX"),
			SearchDebounce: v.GetDuration("SEARCH_DEBOUNCE"),
			IdleTimeout:    v.GetDuration("SESSION_IDLE_TIMEOUT"),
			SweepInterval:  v.GetDuration("SESSION_SWEEP_INTERVAL"),
		},
		Animator: AnimatorConfig{
			ProductInterval:   v.GetDuration("ANIMATOR_PRODUCT_INTERVAL"),
			AggregateInterval: v.GetDuration("ANIMATOR_AGGREGATE_INTERVAL"),
			RegionInterval:    v.GetDuration("ANIMATOR_REGION_INTERVAL"),
			MaxProductStep:    v.GetInt("ANIMATOR_MAX_PRODUCT_STEP"),
			FlipProbability:   v.GetFloat64("ANIMATOR_FLIP_PROBABILITY"),
			AggregateMaxStep:  v.GetInt("ANIMATOR_AGGREGATE_MAX_STEP"),
			AggregateStart:    v.GetInt("ANIMATOR_AGGREGATE_START"),
			RegionMaxStep:     v.GetInt("ANIMATOR_REGION_MAX_STEP"),
		},
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
