package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	GeminiApiKey string
	GeminiModel  string
	Interview    Interview
	SeedFile     string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Interview holds the follow-up policy tunables and the oracle timeout.
// Thresholds are configuration, not constants baked into the algorithm.
type Interview struct {
	// AdvanceScore: overall score at or above which the spine advances.
	AdvanceScore int
	// ProbeScore: overall score at or below which a follow-up is issued.
	ProbeScore int
	// MinAnswerWords / MinAnswerChars: below either, the answer counts as "too short".
	MinAnswerWords int
	MinAnswerChars int
	// MaxFollowups: default per-question follow-up cap for new interviews.
	MaxFollowups int
	// OracleTimeout bounds each scoring/generation/summary call.
	OracleTimeout time.Duration
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("INTERVIEW_ADVANCE_SCORE", 4)
	viper.SetDefault("INTERVIEW_PROBE_SCORE", 3)
	viper.SetDefault("INTERVIEW_MIN_ANSWER_WORDS", 15)
	viper.SetDefault("INTERVIEW_MIN_ANSWER_CHARS", 60)
	viper.SetDefault("INTERVIEW_MAX_FOLLOWUPS", 2)
	viper.SetDefault("INTERVIEW_ORACLE_TIMEOUT_SECONDS", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.GeminiModel = viper.GetString("GEMINI_MODEL")
	config.SeedFile = viper.GetString("SEED_FILE")

	config.Interview.AdvanceScore = viper.GetInt("INTERVIEW_ADVANCE_SCORE")
	config.Interview.ProbeScore = viper.GetInt("INTERVIEW_PROBE_SCORE")
	config.Interview.MinAnswerWords = viper.GetInt("INTERVIEW_MIN_ANSWER_WORDS")
	config.Interview.MinAnswerChars = viper.GetInt("INTERVIEW_MIN_ANSWER_CHARS")
	config.Interview.MaxFollowups = viper.GetInt("INTERVIEW_MAX_FOLLOWUPS")
	config.Interview.OracleTimeout = time.Duration(viper.GetInt("INTERVIEW_ORACLE_TIMEOUT_SECONDS")) * time.Second

	log.Info().Str("port", config.Server.Port).Str("database", config.Database.Name).Msg("Config loaded")
	return &config, nil
}
