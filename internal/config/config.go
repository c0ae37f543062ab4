package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceURL  = "http://localhost:5000"
	DefaultQuizType    = "mcq"
	DefaultQuestions   = 5
	DefaultHistorySize = 50
	DefaultLogFile     = "quizdeck.log"
)

type Config struct {
	ServiceURL  string
	QuizType    string
	Questions   int
	Timeout     time.Duration
	HistorySize int
	LogLevel    string
	LogFile     string
	Tracing     bool
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	return &Config{
		ServiceURL:  strings.TrimRight(getEnv("QUIZ_SERVICE_URL", DefaultServiceURL), "/"),
		QuizType:    getEnv("QUIZ_TYPE", DefaultQuizType),
		Questions:   getEnvInt("QUIZ_QUESTIONS", DefaultQuestions),
		Timeout:     getEnvDuration("QUIZ_TIMEOUT", 0),
		HistorySize: getEnvInt("QUIZ_HISTORY_SIZE", DefaultHistorySize),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", DefaultLogFile),
		Tracing:     getEnvBool("OTEL_ENABLED", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := getEnv(key, "")
	if v == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		logrus.WithError(err).Warnf("Invalid integer for %s, using %d", key, defaultValue)
		return defaultValue
	}
	return i
}

func getEnvBool(key string, defaultValue bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logrus.WithError(err).Warnf("Invalid boolean for %s, using %t", key, defaultValue)
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.WithError(err).Warnf("Invalid duration for %s, using %s", key, defaultValue)
		return defaultValue
	}
	return d
}
