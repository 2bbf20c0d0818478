package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	OpenAI OpenAIConfig
	Upload UploadConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type OpenAIConfig struct {
	APIKey    string
	BaseURL   string // default: "https://api.openai.com/v1"
	ChatModel string
	STTModel  string
}

type UploadConfig struct {
	TempDir   string // empty means os.TempDir()
	MaxMemory int64  // multipart in-memory threshold, bytes
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // "json" or "text"
}

// defaultDotenvFiles are tried in order when DOTENV_PATH is unset. Older
// deployments keep the key in .flaskenv.
var defaultDotenvFiles = []string{".env", ".flaskenv"}

// Load reads configuration from the environment. Dotenv files are loaded
// first when they exist: DOTENV_PATH if set, otherwise defaultDotenvFiles.
// Variables already set in the process win, and earlier files win over
// later ones.
func Load() (*Config, error) {
	files := defaultDotenvFiles
	if p := os.Getenv("DOTENV_PATH"); p != "" {
		files = []string{p}
	}
	for _, f := range files {
		if err := loadDotenv(f); err != nil {
			return nil, err
		}
	}

	port, err := getEnvInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
	}

	maxMemory, err := getEnvInt("UPLOAD_MAX_MEMORY", 32<<20)
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_MEMORY: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		// The model overrides are a deployment hook for compatible
		// endpoints; prompts and limits are tuned for the defaults.
		OpenAI: OpenAIConfig{
			APIKey:    getEnv("OPENAI_API_KEY", ""),
			BaseURL:   getEnv("OPENAI_BASE_URL", ""),
			ChatModel: getEnv("OPENAI_CHAT_MODEL", "gpt-4o"),
			STTModel:  getEnv("OPENAI_STT_MODEL", "whisper-1"),
		},
		Upload: UploadConfig{
			TempDir:   getEnv("UPLOAD_TEMP_DIR", ""),
			MaxMemory: int64(maxMemory),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func loadDotenv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
