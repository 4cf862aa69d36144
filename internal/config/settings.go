package config

import (
	"os"
	"time"

	"fyne.io/fyne/v2"

	"github.com/kannangrocery/storefront/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage          = "app_language"
	KeyRecommendBaseURL  = "recommend_base_url"
	KeyRecommendModel    = "recommend_model"
	KeyRecommendAPIKey   = "recommend_api_key"
	KeyRequestTimeoutSec = "recommend_timeout_seconds"
	KeyProcessingDelayMS = "checkout_processing_delay_ms"
)

// APIKeyEnvVar is consulted when no key is stored in preferences
const APIKeyEnvVar = "RECOMMEND_API_KEY"

// Default values
const (
	DefaultLanguage          = model.LanguageEnglish
	DefaultRecommendBaseURL  = "https://generativelanguage.googleapis.com/v1beta/openai"
	DefaultRecommendModel    = "gemini-2.5-flash"
	DefaultRequestTimeoutSec = 30
	MinRequestTimeoutSec     = 5
	MaxRequestTimeoutSec     = 120
	DefaultProcessingDelayMS = 2500
	MaxProcessingDelayMS     = 10000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured storefront language
func (s *Settings) GetLanguage() model.Language {
	lang := model.Language(s.app.Preferences().String(KeyLanguage))
	switch lang {
	case model.LanguageEnglish, model.LanguageTamil:
		return lang
	}
	s.SetLanguage(DefaultLanguage)
	return DefaultLanguage
}

// SetLanguage sets the storefront language
func (s *Settings) SetLanguage(lang model.Language) {
	s.app.Preferences().SetString(KeyLanguage, lang.String())
}

// GetRecommendBaseURL returns the chat-completions endpoint base URL
func (s *Settings) GetRecommendBaseURL() string {
	url := s.app.Preferences().String(KeyRecommendBaseURL)
	if url == "" {
		s.SetRecommendBaseURL(DefaultRecommendBaseURL)
		return DefaultRecommendBaseURL
	}
	return url
}

// SetRecommendBaseURL sets the chat-completions endpoint base URL
func (s *Settings) SetRecommendBaseURL(url string) {
	if url == "" {
		url = DefaultRecommendBaseURL
	}
	s.app.Preferences().SetString(KeyRecommendBaseURL, url)
}

// GetRecommendModel returns the model name used for suggestions
func (s *Settings) GetRecommendModel() string {
	name := s.app.Preferences().String(KeyRecommendModel)
	if name == "" {
		s.SetRecommendModel(DefaultRecommendModel)
		return DefaultRecommendModel
	}
	return name
}

// SetRecommendModel sets the model name used for suggestions
func (s *Settings) SetRecommendModel(name string) {
	if name == "" {
		name = DefaultRecommendModel
	}
	s.app.Preferences().SetString(KeyRecommendModel, name)
}

// GetRecommendAPIKey returns the API key for the suggestion service.
// A key stored in preferences wins; otherwise the environment is consulted
// so the app works without opening the settings dialog.
func (s *Settings) GetRecommendAPIKey() string {
	key := s.app.Preferences().String(KeyRecommendAPIKey)
	if key != "" {
		return key
	}
	return os.Getenv(APIKeyEnvVar)
}

// SetRecommendAPIKey stores the API key for the suggestion service
func (s *Settings) SetRecommendAPIKey(key string) {
	s.app.Preferences().SetString(KeyRecommendAPIKey, key)
}

// GetRequestTimeout returns the per-request timeout for suggestion calls
func (s *Settings) GetRequestTimeout() time.Duration {
	seconds := s.app.Preferences().Int(KeyRequestTimeoutSec)
	if seconds <= 0 {
		s.SetRequestTimeoutSeconds(DefaultRequestTimeoutSec)
		return DefaultRequestTimeoutSec * time.Second
	}
	return time.Duration(seconds) * time.Second
}

// SetRequestTimeoutSeconds sets the suggestion request timeout in seconds
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds < MinRequestTimeoutSec {
		seconds = MinRequestTimeoutSec
	}
	if seconds > MaxRequestTimeoutSec {
		seconds = MaxRequestTimeoutSec
	}
	s.app.Preferences().SetInt(KeyRequestTimeoutSec, seconds)
}

// GetProcessingDelay returns the simulated payment processing delay
func (s *Settings) GetProcessingDelay() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyProcessingDelayMS, DefaultProcessingDelayMS)
	if ms < 0 {
		ms = 0
	}
	return time.Duration(ms) * time.Millisecond
}

// SetProcessingDelayMS sets the simulated payment processing delay in
// milliseconds
func (s *Settings) SetProcessingDelayMS(ms int) {
	if ms < 0 {
		ms = 0
	}
	if ms > MaxProcessingDelayMS {
		ms = MaxProcessingDelayMS
	}
	s.app.Preferences().SetInt(KeyProcessingDelayMS, ms)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[model.Language]string {
	return map[model.Language]string{
		model.LanguageEnglish: "English",
		model.LanguageTamil:   "தமிழ்",
	}
}
