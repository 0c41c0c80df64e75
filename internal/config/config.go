package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Upstream UpstreamConfig `yaml:"upstream"`
	OAuth    OAuthConfig    `yaml:"oauth"`
	History  HistoryConfig  `yaml:"history"`
	LogLevel string         `yaml:"log_level"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	SessionSecret   string        `yaml:"session_secret"`
	AllowedOrigin   string        `yaml:"allowed_origin"`
	FrontendURL     string        `yaml:"frontend_url"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

// Enabled reports whether the activity publisher should be wired at all.
func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

type UpstreamConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
	RedditBaseURL string        `yaml:"reddit_base_url"`
	GitHubBaseURL string        `yaml:"github_base_url"`
	HackerNews    HNConfig      `yaml:"hackernews"`
	NewsAPI       KeyedAPI      `yaml:"newsapi"`
	Football      KeyedAPI      `yaml:"football"`
	YouTube       KeyedAPI      `yaml:"youtube"`
}

type HNConfig struct {
	BaseURL      string        `yaml:"base_url"`
	ItemInterval time.Duration `yaml:"item_interval"`
	TopLimit     int           `yaml:"top_limit"`
	SearchLimit  int           `yaml:"search_limit"`
}

type KeyedAPI struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

type OAuthConfig struct {
	Google OAuthProvider `yaml:"google"`
	GitHub OAuthProvider `yaml:"github"`
}

type OAuthProvider struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURL  string `yaml:"redirect_url"`
}

func (p OAuthProvider) Enabled() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

type HistoryConfig struct {
	ReadLimit     int           `yaml:"read_limit"`
	RetentionDays int           `yaml:"retention_days"`
	PruneInterval time.Duration `yaml:"prune_interval"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":5000"
	}
	if c.Server.AllowedOrigin == "" {
		c.Server.AllowedOrigin = "http://localhost:4200"
	}
	if c.Server.FrontendURL == "" {
		c.Server.FrontendURL = c.Server.AllowedOrigin
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		// The news aggregation walks every source sequentially,
		// including the paced Hacker News item fetches.
		c.Server.WriteTimeout = 2 * time.Minute
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "trendhub"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "activity"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "user_activity"
	}
	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = 10 * time.Second
	}
	if c.Upstream.UserAgent == "" {
		c.Upstream.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	}
	if c.Upstream.RedditBaseURL == "" {
		c.Upstream.RedditBaseURL = "https://www.reddit.com"
	}
	if c.Upstream.GitHubBaseURL == "" {
		c.Upstream.GitHubBaseURL = "https://api.github.com"
	}
	if c.Upstream.HackerNews.BaseURL == "" {
		c.Upstream.HackerNews.BaseURL = "https://hacker-news.firebaseio.com/v0"
	}
	if c.Upstream.HackerNews.ItemInterval == 0 {
		c.Upstream.HackerNews.ItemInterval = 100 * time.Millisecond
	}
	if c.Upstream.HackerNews.TopLimit == 0 {
		c.Upstream.HackerNews.TopLimit = 25
	}
	if c.Upstream.HackerNews.SearchLimit == 0 {
		c.Upstream.HackerNews.SearchLimit = 50
	}
	if c.Upstream.NewsAPI.BaseURL == "" {
		c.Upstream.NewsAPI.BaseURL = "https://newsapi.org/v2"
	}
	if c.Upstream.Football.BaseURL == "" {
		c.Upstream.Football.BaseURL = "https://api.football-data.org/v4"
	}
	if c.Upstream.YouTube.BaseURL == "" {
		c.Upstream.YouTube.BaseURL = "https://www.googleapis.com/youtube/v3"
	}
	if c.History.ReadLimit == 0 {
		c.History.ReadLimit = 100
	}
	if c.History.RetentionDays == 0 {
		c.History.RetentionDays = 90
	}
	if c.History.PruneInterval == 0 {
		c.History.PruneInterval = 12 * time.Hour
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
