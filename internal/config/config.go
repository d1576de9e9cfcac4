package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config regroupe tous les réglages du serveur, lus depuis l'environnement
type Config struct {
	Port   string
	AppEnv string

	// Session
	SessionSecret string
	SessionMaxAge int // secondes
	SecureCookies bool

	// Redis (optionnel : sans REDIS_HOST on reste en mémoire)
	RedisHost     string
	RedisPassword string

	// Limites
	CartRateLimit    int
	LoginMaxAttempts int
	LoginCooldown    time.Duration

	AdminUsernames []string
	CORSOrigins    []string
	StaticDir      string

	// SMTP
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	OrdersEmail  string
	ContactEmail string

	// MinIO (optionnel)
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool
	MinIORegion    string
}

// Load charge le .env s'il existe puis lit les variables d'environnement
func Load() Config {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé, on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	return Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "dev"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionMaxAge: getEnvInt("SESSION_MAX_AGE", 86400*30),
		SecureCookies: getEnvBool("SECURE_COOKIES", false),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		CartRateLimit:    getEnvInt("CART_RATE_LIMIT", 20),
		LoginMaxAttempts: getEnvInt("LOGIN_MAX_ATTEMPTS", 5),
		LoginCooldown:    time.Duration(getEnvInt("LOGIN_COOLDOWN_MINUTES", 15)) * time.Minute,

		AdminUsernames: getEnvList("ADMIN_USERNAMES"),
		CORSOrigins:    getEnvList("CORS_ORIGINS"),
		StaticDir:      os.Getenv("STATIC_DIR"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     getEnv("MAIL_FROM", "noreply@pickles.shop"),
		OrdersEmail:  os.Getenv("ORDERS_EMAIL"),
		ContactEmail: os.Getenv("CONTACT_EMAIL"),

		MinIOEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinIOAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinIOSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinIOBucket:    getEnv("MINIO_BUCKET", "pickles-images"),
		MinIOUseSSL:    getEnvBool("MINIO_USE_SSL", false),
		MinIORegion:    getEnv("MINIO_REGION", "us-east-1"),
	}
}

// SessionTTL durée de vie d'une session (et donc du panier)
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionMaxAge) * time.Second
}

func (c Config) MailEnabled() bool {
	return c.SMTPHost != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ %s invalide (%q), valeur par défaut %d", key, v, def)
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return def
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// getEnvList découpe une liste séparée par des virgules
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
