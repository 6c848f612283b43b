package settings

import (
	"testing"

	"contractreview/internal/prompt"
	"contractreview/internal/tester"
)

func TestDefault(t *testing.T) {
	s := Default()
	tester.Eq(t, s.Language, prompt.Chinese)
	tester.Eq(t, s.Provider, DeepSeek)
	tester.False(t, s.IsCustomProvider())
}

func TestIsCustomProvider(t *testing.T) {
	s := Default()
	s.Provider = Provider{Mode: ModeCustom, BaseURL: "https://llm.example"}
	tester.True(t, s.IsCustomProvider())
}

func TestCredentialsIsEmpty(t *testing.T) {
	tester.True(t, Credentials{}.IsEmpty())
	tester.True(t, Credentials{APIKey: "   "}.IsEmpty())
	tester.False(t, Credentials{APIKey: "sk-x"}.IsEmpty())
}
