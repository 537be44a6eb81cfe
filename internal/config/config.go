package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	MongoURI    string
	MongoDBName string

	// Langflow endpoints. Empty URLs leave the AI surface unconfigured;
	// the handlers answer 503 in that case.
	AskAIURL           string
	CalculateMacrosURL string

	// Input slot identifiers of the deployed flows. They must match the
	// flow definitions exactly, so they are configuration, not code.
	AskAIQuestionKey string
	AskAIProfileKey  string
	MacrosGoalsKey   string
	MacrosGeneralKey string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	mongoURI, exists := os.LookupEnv("MONGO_URI")
	if !exists || mongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		MongoURI:           mongoURI,
		MongoDBName:        getEnv("MONGO_DB", "workout_helper"),
		AskAIURL:           getEnv("ASK_AI_URL", ""),
		CalculateMacrosURL: getEnv("CALCULATE_MACROS_URL", ""),
		AskAIQuestionKey:   getEnv("ASK_AI_QUESTION_KEY", "TextInput-nu5nz"),
		AskAIProfileKey:    getEnv("ASK_AI_PROFILE_KEY", "TextInput-F3NqN"),
		MacrosGoalsKey:     getEnv("MACROS_GOALS_KEY", "TextInput-bmWAZ"),
		MacrosGeneralKey:   getEnv("MACROS_GENERAL_KEY", "TextInput-SttRa"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
