package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Upstream collaborators
	Gemini    GeminiConfig
	Firestore FirestoreConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig holds the Generative Language API settings.
// An empty APIKey is not a load error: the chat endpoint answers 500
// until a key is configured, while health endpoints keep working.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// FirestoreConfig holds the history store settings. CredentialsJSON is the
// raw service-account JSON (the FIREBASE_CONFIG convention from the
// serverless deployments this service replaces).
type FirestoreConfig struct {
	ProjectID       string
	DatabaseID      string
	CollectionName  string
	CredentialsJSON string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Firestore
	cfg.Firestore.ProjectID = viper.GetString("firestore.project_id")
	cfg.Firestore.DatabaseID = viper.GetString("firestore.database_id")
	cfg.Firestore.CollectionName = viper.GetString("firestore.collection_name")
	cfg.Firestore.CredentialsJSON = viper.GetString("firestore.credentials_json")
	if projectID := viper.GetString("firestore_project_id"); projectID != "" {
		cfg.Firestore.ProjectID = projectID
	}
	// FIREBASE_CONFIG carries the whole service-account JSON in one variable.
	if firebaseConfig := viper.GetString("firebase_config"); firebaseConfig != "" {
		cfg.Firestore.CredentialsJSON = firebaseConfig
	}

	if cfg.Firestore.CredentialsJSON == "" {
		return nil, fmt.Errorf("firestore credentials are not configured - set FIREBASE_CONFIG or firestore.credentials_json")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("firestore.database_id", "(default)")
	viper.SetDefault("firestore.collection_name", "chat_history")
}
