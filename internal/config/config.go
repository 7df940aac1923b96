package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FeedSource is one subscribable feed shown in the UI
type FeedSource struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Enabled  bool   `json:"enabled"`
}

type OllamaConfig struct {
	URL   string `json:"url"`
	Model string `json:"model"`
}

type Config struct {
	Server struct {
		Host    string `json:"host"`
		Port    int    `json:"port"`
		Subpath string `json:"subpath"`
	} `json:"server"`
	Ollama OllamaConfig `json:"ollama"`
	Feeds  []FeedSource `json:"feeds"`
}

const (
	DefaultPort        = 8080
	DefaultOllamaURL   = "http://127.0.0.1:11434"
	DefaultOllamaModel = "llama2"
)

// DefaultFeeds ships with every install unless config.json lists its own
func DefaultFeeds() []FeedSource {
	return []FeedSource{
		{URL: "https://www.zerohedge.com/rss/all", Name: "ZeroHedge", Category: "Alternative", Enabled: true},
		{URL: "https://thegrayzone.com/feed/", Name: "The Grayzone", Category: "Alternative", Enabled: true},
		{URL: "https://unlimitedhangout.com/feed/", Name: "Unlimited Hangout", Category: "Alternative", Enabled: true},
		{URL: "https://www.globalresearch.ca/feed", Name: "Global Research", Category: "Alternative", Enabled: true},
		{URL: "https://brownstone.org/feed/", Name: "Brownstone Institute", Category: "Alternative", Enabled: true},
		{URL: "https://antiwar.com/feed/", Name: "Antiwar.com", Category: "Alternative", Enabled: true},
		{URL: "https://www.reuters.com/rssFeed/worldNews", Name: "Reuters World", Category: "Mainstream", Enabled: true},
		{URL: "https://www.federalregister.gov/rss/documents.xml", Name: "Federal Register", Category: "Government", Enabled: true},
	}
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// LoadConfig reads config.json from disk (singleton)
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		raw, err := os.ReadFile(path)
		if err != nil {
			cfgErr = fmt.Errorf("failed to read config file: %w", err)
			return
		}
		var c Config
		if err := json.Unmarshal(raw, &c); err != nil {
			cfgErr = fmt.Errorf("invalid config format: %w", err)
			return
		}
		c.applyDefaults()
		cfg = &c
	})
	return cfg, cfgErr
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Ollama.URL == "" {
		c.Ollama.URL = DefaultOllamaURL
	}
	if c.Ollama.Model == "" {
		c.Ollama.Model = DefaultOllamaModel
	}
	if c.Feeds == nil {
		c.Feeds = DefaultFeeds()
	}
}

// GetConfig returns the loaded config (must call LoadConfig first)
func GetConfig() *Config {
	return cfg
}

// ResetConfigForTest resets the singleton state (for testing only)
func ResetConfigForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}
