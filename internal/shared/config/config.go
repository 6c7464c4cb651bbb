package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	ctopics "github.com/Priyanshu0707/prediction-service/pkg/contracts/topics"
)

// Config centraliza variáveis de ambiente e parâmetros de execução do serviço
// Inclui conexões, tópicos, portas e limites
type Config struct {
	Env         string // "local", "dev", "prod"
	ServiceName string

	PostgresDSN  string
	RedisAddr    string
	KafkaBrokers string // "a:9092,b:9092"; vazio desliga a emissão de eventos

	// Tópicos
	TopicPredictionCreated string
	TopicOpinionPlaced     string

	// Portas do serviço
	HTTPPort    string // Porta pública da API REST
	MetricsPort string // Porta exclusiva para /metrics e /healthz

	// Rate limit global da API pública
	RateLimitRPS   int
	RateLimitBurst int
}

// Load carrega variáveis de ambiente e define defaults
// Lê .env.public antes, quando o arquivo existe
func Load() Config {
	_ = godotenv.Load(".env.public")

	return Config{
		Env:         getEnv("ENV", "local"),
		ServiceName: getEnv("SERVICE_NAME", "prediction-service"),

		PostgresDSN:  postgresDSN(),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),

		TopicPredictionCreated: getEnv("KAFKA_TOPIC_PREDICTION_CREATED", ctopics.PredictionCreated),
		TopicOpinionPlaced:     getEnv("KAFKA_TOPIC_OPINION_PLACED", ctopics.OpinionPlaced),

		HTTPPort:    getEnv("PORT", "3000"),
		MetricsPort: getEnv("METRICS_PORT", "9095"),

		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 100),
	}
}

// postgresDSN monta a DSN a partir dos campos discretos de credencial;
// POSTGRES_DSN completa tem precedência quando definida
func postgresDSN() string {
	if dsn, ok := os.LookupEnv("POSTGRES_DSN"); ok {
		return dsn
	}

	user := getEnv("POSTGRES_USER", "predict")
	pass := getEnv("POSTGRES_PASSWORD", "predictpassword")
	host := getEnv("POSTGRES_HOST", "localhost")
	port := getEnv("POSTGRES_PORT", "5432")
	name := getEnv("POSTGRES_DB", "predictions")
	ssl := getEnv("POSTGRES_SSLMODE", "disable")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, name, ssl)
}

// getEnv retorna o valor da variável de ambiente ou o default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
