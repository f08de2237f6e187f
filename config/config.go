package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Room       RoomConfig       `mapstructure:"room"`
	Question   QuestionConfig   `mapstructure:"question"`
	Websocket  WebsocketConfig  `mapstructure:"websocket"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Relay      RelayConfig      `mapstructure:"relay"`
	Postgres   PostgresConfig   `mapstructure:"postgres"`
	Moderation ModerationConfig `mapstructure:"moderation"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type ServerConfig struct {
	Port              string        `mapstructure:"port"`
	Host              string        `mapstructure:"host"`
	AllowOrigins      string        `mapstructure:"allow_origins"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	Burst             int           `mapstructure:"burst"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type RoomConfig struct {
	CodeAlphabet      string `mapstructure:"code_alphabet"`
	CodeLength        int    `mapstructure:"code_length"`
	Award             int    `mapstructure:"award"`
	DefaultHostName   string `mapstructure:"default_host_name"`
	DefaultPlayerName string `mapstructure:"default_player_name"`
	MaxNameLength     int    `mapstructure:"max_name_length"`
}

type QuestionConfig struct {
	// Source is one of static, bank or postgres.
	Source          string           `mapstructure:"source"`
	DefaultDuration int              `mapstructure:"default_duration"`
	ProviderTimeout time.Duration    `mapstructure:"provider_timeout"`
	Bank            []QuestionRecord `mapstructure:"bank"`
}

type QuestionRecord struct {
	Text         string   `mapstructure:"text"`
	Choices      []string `mapstructure:"choices"`
	CorrectIndex int      `mapstructure:"correct_index"`
	Duration     int      `mapstructure:"duration"`
}

type WebsocketConfig struct {
	SendBuffer       int           `mapstructure:"send_buffer"`
	IntentsPerSecond float64       `mapstructure:"intents_per_second"`
	Burst            int           `mapstructure:"burst"`
	PongWait         time.Duration `mapstructure:"pong_wait"`
	MaxMessageSize   int64         `mapstructure:"max_message_size"`
}

type RedisConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Host          string `mapstructure:"host"`
	Port          string `mapstructure:"port"`
	Password      string `mapstructure:"password"`
	DB            int    `mapstructure:"db"`
	ChannelPrefix string `mapstructure:"channel_prefix"`
}

type KafkaConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Brokers      []string      `mapstructure:"brokers"`
	Topic        string        `mapstructure:"topic"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type PostgresConfig struct {
	Port     string `mapstructure:"port"`
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

type ModerationConfig struct {
	Enabled     bool     `mapstructure:"enabled"`
	Words       []string `mapstructure:"words"`
	Replacement string   `mapstructure:"replacement"`
}

// RelayConfig sizes the per-relay queues shared by redis and kafka.
type RelayConfig struct {
	Queue   int           `mapstructure:"queue"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func Read() Config {
	if err := godotenv.Load(); err == nil {
		zap.L().Info("Loaded environment from .env")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/app")

	setDefaults(v)

	// ENV overrides with prefix QUIZ_ and dot-to-underscore replacement
	v.SetEnvPrefix("QUIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		zap.L().Warn("Failed to read configuration file", zap.Error(err))
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		zap.L().Error("Configuration could not be parsed", zap.Error(err))
	}

	return config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "quiz-service")
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.allow_origins", "*")
	v.SetDefault("server.idle_timeout", 5*time.Second)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.requests_per_minute", 600)
	v.SetDefault("server.burst", 50)

	v.SetDefault("log.level", "info")

	v.SetDefault("room.code_alphabet", "ABCDEFGHJKLMNPQRSTUVWXYZ23456789")
	v.SetDefault("room.code_length", 6)
	v.SetDefault("room.award", 100)
	v.SetDefault("room.default_host_name", "Host")
	v.SetDefault("room.default_player_name", "Player")
	v.SetDefault("room.max_name_length", 32)

	v.SetDefault("question.source", "static")
	v.SetDefault("question.default_duration", 10)
	v.SetDefault("question.provider_timeout", 2*time.Second)

	v.SetDefault("websocket.send_buffer", 256)
	v.SetDefault("websocket.intents_per_second", 20)
	v.SetDefault("websocket.burst", 40)
	v.SetDefault("websocket.pong_wait", 60*time.Second)
	v.SetDefault("websocket.max_message_size", 4096)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.channel_prefix", "room:")

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "quiz-room-events")
	v.SetDefault("kafka.write_timeout", 5*time.Second)

	v.SetDefault("relay.queue", 1024)
	v.SetDefault("relay.timeout", 5*time.Second)

	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.user", "myuser")
	v.SetDefault("postgres.password", "mypassword")
	v.SetDefault("postgres.db", "quizdb")

	v.SetDefault("moderation.enabled", false)
	v.SetDefault("moderation.replacement", "*")
}
