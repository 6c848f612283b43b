package config

import (
	"testing"

	"contractreview/internal/prompt"
	"contractreview/internal/settings"
	"contractreview/internal/tester"
)

func clearReviewEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"REVIEW_LANGUAGE", "REVIEW_BASE_URL", "REVIEW_CHAT_MODEL",
		"REVIEW_REASONER_MODEL", "REVIEW_MAX_TOKENS",
		"ARTIFACT_MINIO_ENDPOINT", "ARTIFACT_S3_ENDPOINT", "ARTIFACT_S3_USE_SSL",
		"ARTIFACT_S3_BUCKET", "ARTIFACT_S3_ACCESS_KEY", "ARTIFACT_S3_SECRET_KEY",
		"MINIO_ROOT_USER", "MINIO_ROOT_PASSWORD", "ARTIFACT_S3_REGION",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	clearReviewEnv(t)
	s := loadSettings()
	tester.Eq(t, s.Language, prompt.Chinese)
	tester.Eq(t, s.Provider, settings.DeepSeek)
}

func TestLoadSettingsCustomProvider(t *testing.T) {
	clearReviewEnv(t)
	t.Setenv("REVIEW_LANGUAGE", "en")
	t.Setenv("REVIEW_BASE_URL", "https://llm.internal.example")
	t.Setenv("REVIEW_CHAT_MODEL", "custom-chat")

	s := loadSettings()
	tester.Eq(t, s.Language, prompt.English)
	tester.Eq(t, s.Provider.Mode, settings.ModeCustom)
	tester.Eq(t, s.Provider.BaseURL, "https://llm.internal.example")
	tester.Eq(t, s.Provider.ChatModel, "custom-chat")
	// Unset models keep the defaults.
	tester.Eq(t, s.Provider.ReasonerModel, settings.DeepSeek.ReasonerModel)
}

func TestLoadSettingsDeepSeekURLStaysDefault(t *testing.T) {
	clearReviewEnv(t)
	t.Setenv("REVIEW_BASE_URL", settings.DeepSeek.BaseURL)
	s := loadSettings()
	tester.Eq(t, s.Provider.Mode, settings.ModeDeepSeek)
}

func TestLoadMaxTokens(t *testing.T) {
	clearReviewEnv(t)
	tester.Eq(t, loadMaxTokens(), 0)

	t.Setenv("REVIEW_MAX_TOKENS", "50000")
	tester.Eq(t, loadMaxTokens(), 50000)

	t.Setenv("REVIEW_MAX_TOKENS", "not-a-number")
	tester.Eq(t, loadMaxTokens(), 0)

	t.Setenv("REVIEW_MAX_TOKENS", "-5")
	tester.Eq(t, loadMaxTokens(), 0)
}

func TestLoadArtifactConfigLocal(t *testing.T) {
	clearReviewEnv(t)
	t.Setenv("ARTIFACT_MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_ROOT_USER", "minio")
	t.Setenv("MINIO_ROOT_PASSWORD", "minio123")

	cfg := loadArtifactConfig("local")
	tester.True(t, cfg.Enabled)
	tester.Eq(t, cfg.Endpoint, "localhost:9000")
	tester.Eq(t, cfg.AccessKey, "minio")
	tester.Eq(t, cfg.SecretKey, "minio123")
	tester.False(t, cfg.UseSSL, "local minio runs without TLS")
	tester.Eq(t, cfg.Bucket, "contractreview-artifacts")
}

func TestLoadArtifactConfigProduction(t *testing.T) {
	clearReviewEnv(t)
	t.Setenv("ARTIFACT_S3_ENDPOINT", "s3.amazonaws.com")
	t.Setenv("ARTIFACT_S3_ACCESS_KEY", "AKIA")
	t.Setenv("ARTIFACT_S3_SECRET_KEY", "secret")
	t.Setenv("ARTIFACT_S3_BUCKET", "prod-artifacts")

	cfg := loadArtifactConfig("prod")
	tester.True(t, cfg.Enabled)
	tester.Eq(t, cfg.Endpoint, "s3.amazonaws.com")
	tester.Eq(t, cfg.Bucket, "prod-artifacts")
	tester.True(t, cfg.UseSSL)

	t.Setenv("ARTIFACT_S3_USE_SSL", "false")
	tester.False(t, loadArtifactConfig("prod").UseSSL)
}

func TestLoadArtifactConfigDisabledWithoutEndpoint(t *testing.T) {
	clearReviewEnv(t)
	tester.False(t, loadArtifactConfig("local").Enabled)
	tester.False(t, loadArtifactConfig("prod").Enabled)
}
