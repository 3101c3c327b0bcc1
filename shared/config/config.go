package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	ApiBaseURL     string   `yaml:"api_base_url"`
	PageSize       int      `yaml:"page_size"`       // feed page size, fixed per session
	CachePages     int      `yaml:"cache_pages"`     // max page snapshots held by the feed cache
	LogLevel       string   `yaml:"log_level"`
	LogJSON        bool     `yaml:"log_json"`
	AllowedOrigins []string `yaml:"allowed_origins"` // browser origins for CORS
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
}

const defaultCachePages = 8

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	if public.ApiBaseURL == "" {
		panic("api_base_url is required")
	}
	if public.PageSize <= 0 {
		panic("page_size is required")
	}
	if private.JwtKey == "" {
		panic("jwt_key is required")
	}
	if public.CachePages <= 0 {
		public.CachePages = defaultCachePages
	}

	return &Config{public, private}
}
