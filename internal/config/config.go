package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/evmkit/chain-resolver/pkg/chainid"
	"github.com/evmkit/chain-resolver/pkg/types"
)

type Config struct {
	Server  ServerConfig    `json:"server"`
	Cache   CacheConfig     `json:"cache"`
	Aliases AliasConfig     `json:"aliases"`
	Jobs    types.JobConfig `json:"jobs"`
}

type ServerConfig struct {
	Port         string `json:"port"`
	ReadTimeout  string `json:"read_timeout"`
	WriteTimeout string `json:"write_timeout"`
}

type CacheConfig struct {
	TTL             string `json:"ttl"`
	CleanupInterval string `json:"cleanup_interval"`
}

type AliasConfig struct {
	Path string `json:"path"`
}

// AliasFile is the on-disk shape of the optional chains.yaml overlay. Each
// entry maps an extra accepted name onto a chain identifier, which may itself
// be written as a canonical name or a raw id.
type AliasFile struct {
	Aliases []Alias `yaml:"aliases"`
}

type Alias struct {
	Name  string     `yaml:"name"`
	Chain chainid.ID `yaml:"chain"`
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if err := godotenv.Load(); err != nil {
			if err := godotenv.Load(".env.local"); err != nil {
				fmt.Printf("No .env or .env.local file found. Using environment variables.\n")
			}
		}

		return &Config{
			Server: ServerConfig{
				Port: getEnv("PORT", "8080"),
			},
			Cache: CacheConfig{
				TTL:             getEnv("CACHE_TTL", "5m"),
				CleanupInterval: getEnv("CACHE_CLEANUP_INTERVAL", "10m"),
			},
			Aliases: AliasConfig{
				Path: getEnv("ALIAS_FILE", ""),
			},
		}, nil
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Cache: CacheConfig{
			TTL:             "5m",
			CleanupInterval: "10m",
		},
	}
}

// LoadAliases parses the YAML alias overlay. An empty path yields an empty
// map, not an error, since the overlay is optional.
func LoadAliases(path string) (map[string]chainid.ID, error) {
	if path == "" {
		return map[string]chainid.ID{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file: %w", err)
	}

	var file AliasFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse alias file: %w", err)
	}

	aliases := make(map[string]chainid.ID, len(file.Aliases))
	for _, alias := range file.Aliases {
		if alias.Name == "" {
			return nil, fmt.Errorf("alias for chain %s has no name", alias.Chain)
		}
		aliases[alias.Name] = alias.Chain
	}

	return aliases, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
