// Package settings holds the user-configurable provider settings and the
// credentials consumed read-only by the review pipeline on every request.
package settings

import (
	"strings"

	"contractreview/internal/prompt"
)

// ProviderMode selects the built-in provider or a custom endpoint.
type ProviderMode string

const (
	ModeDeepSeek ProviderMode = "deepseek"
	ModeCustom   ProviderMode = "custom"
)

// PlatformURL is where keys for the built-in provider are issued.
const PlatformURL = "https://platform.deepseek.com/"

// Provider describes one chat-completion endpoint and its two models: the
// chat model used by the staged review and the reasoner model used by
// conversations.
type Provider struct {
	Mode          ProviderMode `json:"mode"`
	BaseURL       string       `json:"base_url"`
	ChatModel     string       `json:"chat_model"`
	ReasonerModel string       `json:"reasoner_model"`
}

// DeepSeek is the built-in provider.
var DeepSeek = Provider{
	Mode:          ModeDeepSeek,
	BaseURL:       "https://api.deepseek.com",
	ChatModel:     "deepseek-chat",
	ReasonerModel: "deepseek-reasoner",
}

// Settings is the full user-configurable state.
type Settings struct {
	Language prompt.Language `json:"language"`
	Provider Provider        `json:"provider"`
}

// Default returns Chinese UI with the built-in provider.
func Default() Settings {
	return Settings{Language: prompt.Chinese, Provider: DeepSeek}
}

func (s Settings) IsCustomProvider() bool { return s.Provider.Mode == ModeCustom }

// Credentials carries the API key, kept apart from Settings so it never
// lands in plain-text settings files.
type Credentials struct {
	APIKey string
}

func (c Credentials) IsEmpty() bool {
	return strings.TrimSpace(c.APIKey) == ""
}
