package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/crimezones/internal/model"
)

const envPrefix = "CRIMEZONES"

// omitemptyKeys are dropped from the marshaled defaults but must still be
// known to viper for environment lookups.
var omitemptyKeys = map[string]any{
	"http.http_proxy":           "",
	"http.https_proxy":          "",
	"http.no_proxy":             "",
	"extraction.gazetteer_file": "",
	"output.format":             "",
	"output.year":               0,
	"llm.provider":              "",
	"llm.model":                 "",
	"llm.base_url":              "",
}

// registerDefaults seeds v with every config key so CRIMEZONES_* variables
// resolve even when no config file mentions the key.
func registerDefaults(v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	data, err := yaml.Marshal(model.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal defaults: %w", err)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("unmarshal defaults: %w", err)
	}
	setDefaults(v, "", tree)
	for key, val := range omitemptyKeys {
		v.SetDefault(key, val)
	}
	return nil
}

func setDefaults(v *viper.Viper, prefix string, tree map[string]any) {
	for key, val := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if sub, ok := val.(map[string]any); ok {
			setDefaults(v, full, sub)
			continue
		}
		v.SetDefault(full, val)
	}
}

// loadConfig resolves defaults, config file and environment into a Config.
// Secrets never live in the file: API keys come from the environment only.
func loadConfig(v *viper.Viper) (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	if base := os.Getenv("OLLAMA_BASE_URL"); base != "" && cfg.LLM.BaseURL == "" && strings.EqualFold(cfg.LLM.Provider, "ollama") {
		cfg.LLM.BaseURL = base
	}
	return cfg, nil
}
