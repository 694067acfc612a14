package configs

import (
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName    string
	LogLevel           string
	PropertiesFilePath string
	MessagesFilePath   string
}

var Env *EnvConfig

func init() {
	Env = LoadEnv()
}

// LoadEnv reads the process-level settings that must be known before properties are loaded.
func LoadEnv() *EnvConfig {
	viper.AutomaticEnv()

	return &EnvConfig{
		ApplicationName:    getStringOrDefault("APPLICATION_NAME", "todo-api"),
		LogLevel:           getStringOrDefault("LOG_LEVEL", "info"),
		PropertiesFilePath: viper.GetString("PROPERTIES_FILE_PATH"),
		MessagesFilePath:   viper.GetString("MESSAGES_FILE_PATH"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
