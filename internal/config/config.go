// Package config assembles the gateway configuration from .env, flags and
// environment variables, in that order of discovery.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"contractreview/internal/prompt"
	"contractreview/internal/settings"
)

type Config struct {
	Port         string
	Env          string
	HistoryPath  string
	ContractsDir string
	MaxTokens    int
	Settings     settings.Settings
	Credentials  settings.Credentials
	Artifact     ArtifactConfig
}

type ArtifactConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8082", "server port")
	historyPath := flag.String("history", "", "history file path (JSON backend)")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	path := firstNonEmpty(strings.TrimSpace(*historyPath),
		strings.TrimSpace(os.Getenv("HISTORY_PATH")),
		filepath.Join("data", "history.json"))

	return &Config{
		Port:         *port,
		Env:          env,
		HistoryPath:  path,
		ContractsDir: firstNonEmpty(strings.TrimSpace(os.Getenv("CONTRACTS_DIR")), "."),
		MaxTokens:    loadMaxTokens(),
		Settings:     loadSettings(),
		Credentials:  settings.Credentials{APIKey: strings.TrimSpace(os.Getenv("REVIEW_API_KEY"))},
		Artifact:     loadArtifactConfig(env),
	}, nil
}

func loadSettings() settings.Settings {
	s := settings.Default()
	s.Language = prompt.Normalize(prompt.Language(strings.TrimSpace(os.Getenv("REVIEW_LANGUAGE"))))

	baseURL := strings.TrimSpace(os.Getenv("REVIEW_BASE_URL"))
	if baseURL != "" && baseURL != settings.DeepSeek.BaseURL {
		s.Provider = settings.Provider{
			Mode:          settings.ModeCustom,
			BaseURL:       baseURL,
			ChatModel:     firstNonEmpty(strings.TrimSpace(os.Getenv("REVIEW_CHAT_MODEL")), settings.DeepSeek.ChatModel),
			ReasonerModel: firstNonEmpty(strings.TrimSpace(os.Getenv("REVIEW_REASONER_MODEL")), settings.DeepSeek.ReasonerModel),
		}
	}
	return s
}

func loadMaxTokens() int {
	raw := strings.TrimSpace(os.Getenv("REVIEW_MAX_TOKENS"))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func loadArtifactConfig(env string) ArtifactConfig {
	endpoint := resolveArtifactEndpoint(env)
	return ArtifactConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_BUCKET")), "contractreview-artifacts"),
		UseSSL:    resolveArtifactUseSSL(env),
	}
}

func resolveArtifactEndpoint(env string) string {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return strings.TrimSpace(os.Getenv("ARTIFACT_MINIO_ENDPOINT"))
	}
	return strings.TrimSpace(os.Getenv("ARTIFACT_S3_ENDPOINT"))
}

func resolveArtifactUseSSL(env string) bool {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return false
	}
	raw := strings.TrimSpace(os.Getenv("ARTIFACT_S3_USE_SSL"))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
