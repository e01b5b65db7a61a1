package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configDirName is the per-user directory under $HOME.
const configDirName = ".learnquest"

// Load loads the game tuning.
// Search order: customPath -> ~/.learnquest/configs/quest.yaml -> ./configs/quest.yaml -> embedded default
func Load(customPath string) (QuestConfig, error) {
	cfg := DefaultQuestConfig()
	if err := load(customPath, "quest.yaml", defaultQuestYAML, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadQuestions loads the question bank.
// Search order: customPath -> ~/.learnquest/configs/questions.yaml -> ./configs/questions.yaml -> embedded default
func LoadQuestions(customPath string) (QuestionBankConfig, error) {
	var bank QuestionBankConfig
	if err := load(customPath, "questions.yaml", defaultQuestionsYAML, &bank); err != nil {
		return bank, err
	}
	if err := bank.Validate(); err != nil {
		return bank, err
	}
	return bank, nil
}

// load decodes the first readable source into out. Files are decoded over the
// values already in out, so a partial file only overrides what it names.
func load(customPath, filename string, embedded []byte, out any) error {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("failed to parse embedded %s: %w", filename, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
