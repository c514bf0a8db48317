package model

import "time"

// Config is the full configuration tree. Defaults come from
// DefaultConfig; viper overlays config file and CLAIMSCOPE_* environment
// values, and CLI flags sit on top.
type Config struct {
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Sources    SourcesConfig    `yaml:"sources" mapstructure:"sources"`
	Authority  AuthorityConfig  `yaml:"authority" mapstructure:"authority"`
	Classifier ClassifierConfig `yaml:"classifier" mapstructure:"classifier"`
	Translator TranslatorConfig `yaml:"translator" mapstructure:"translator"`
	Cache      CacheConfig      `yaml:"cache" mapstructure:"cache"`
	Store      StoreConfig      `yaml:"store" mapstructure:"store"`
	Logging    LoggingConfig    `yaml:"logging" mapstructure:"logging"`
}

// ServerConfig configures the HTTP facade.
type ServerConfig struct {
	Addr            string        `yaml:"addr" mapstructure:"addr"`
	RequestTimeout  time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// SourcesConfig configures the evidence source connectors. A connector
// whose credential is empty never attempts a call.
type SourcesConfig struct {
	NewsAPIKey      string        `yaml:"newsapi_key" mapstructure:"newsapi_key"`
	FactCheckKey    string        `yaml:"factcheck_key" mapstructure:"factcheck_key"`
	GoogleSearchKey string        `yaml:"google_search_key" mapstructure:"google_search_key"`
	GoogleCX        string        `yaml:"google_cx" mapstructure:"google_cx"`
	Timeout         time.Duration `yaml:"timeout" mapstructure:"timeout"`
	PageSize        int           `yaml:"page_size" mapstructure:"page_size"`
	UserAgent       string        `yaml:"user_agent" mapstructure:"user_agent"`
	RatePerSecond   float64       `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	RateBurst       int           `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// AuthorityConfig holds the trusted-domain allowlist and the myth
// keyword set used to flag debunking snippets.
type AuthorityConfig struct {
	Domains      []string `yaml:"domains" mapstructure:"domains"`
	MythKeywords []string `yaml:"myth_keywords" mapstructure:"myth_keywords"`
}

// ClassifierConfig selects and configures the model-scoring provider.
type ClassifierConfig struct {
	Provider string        `yaml:"provider" mapstructure:"provider"` // "remote" or "openai"
	BaseURL  string        `yaml:"base_url" mapstructure:"base_url"` // Inference server for "remote"
	Model    string        `yaml:"model" mapstructure:"model"`       // Model name for "openai"
	APIKey   string        `yaml:"api_key" mapstructure:"api_key"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// TranslatorConfig configures the fail-open translation collaborator.
type TranslatorConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	BaseURL string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// CacheConfig bounds the shared translation cache. The original memo
// grew without limit under sustained traffic; TTL plus the cleanup
// sweep keeps it bounded here.
type CacheConfig struct {
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// StoreConfig selects the history store backend.
type StoreConfig struct {
	Path     string `yaml:"path" mapstructure:"path"`           // SQLite directory
	InMemory bool   `yaml:"in_memory" mapstructure:"in_memory"` // Volatile store, used by `check`
}

// LoggingConfig configures the zerolog root logger.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // "console" or "json"
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Sources: SourcesConfig{
			Timeout:       6 * time.Second,
			PageSize:      10,
			UserAgent:     "claimscope/0.1 (+https://github.com/claimscope/claimscope)",
			RatePerSecond: 2,
			RateBurst:     5,
		},
		Authority: AuthorityConfig{
			Domains:      DefaultAuthoritativeDomains(),
			MythKeywords: DefaultMythKeywords(),
		},
		Classifier: ClassifierConfig{
			Provider: "remote",
			BaseURL:  "http://localhost:8501",
			Timeout:  10 * time.Second,
		},
		Translator: TranslatorConfig{
			Enabled: true,
			BaseURL: "https://translate.googleapis.com",
			Timeout: 6 * time.Second,
		},
		Cache: CacheConfig{
			TTL:             24 * time.Hour,
			CleanupInterval: time.Hour,
		},
		Store: StoreConfig{
			Path: "data",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultAuthoritativeDomains is the built-in trusted-domain allowlist.
// Matching is plain substring against the full URL, so entries may be
// bare registrable domains.
func DefaultAuthoritativeDomains() []string {
	return []string{
		"gov.in", "nic.in", "niti.gov.in", "prsindia.org", "meity.gov.in", "mha.gov.in",
		"mhrd.gov.in", "indianrailways.gov.in", "pmindia.gov.in", "rajyasabha.nic.in", "loksabha.nic.in",
		"ap.gov.in", "assam.gov.in", "bihar.gov.in", "goa.gov.in", "gujarat.gov.in", "kerala.gov.in",
		"ka.gov.in", "tn.gov.in", "mh.gov.in", "wb.gov.in", "delhi.gov.in", "telangana.gov.in",
		"who.int", "cdc.gov", "nasa.gov", "noaa.gov", "unesco.org", "un.org", "nature.com",
		"sciencedirect.com", "springer.com", "plos.org", "nih.gov", "esa.int", "sciencemag.org",
		"factcheck.org", "snopes.com", "politifact.com", "altnews.in", "boomlive.in", "fullfact.org",
	}
}

// DefaultMythKeywords is the built-in debunking vocabulary scanned over
// snippets of authoritative items.
func DefaultMythKeywords() []string {
	return []string{"myth", "hoax", "false", "rumor", "fake", "untrue", "debunked"}
}
