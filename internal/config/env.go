package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Store modes select the itinerary data source implementation.
const (
	StoreModeMySQL   = "mysql"
	StoreModeFixture = "fixture"
)

type Env struct {
	AppAddr        string
	GinMode        string
	DBDSN          string
	StoreMode      string
	JWTSecret      string
	AllowedOrigins []string
}

func LoadEnv() Env {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/travel_planner?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	storeMode := strings.ToLower(strings.TrimSpace(os.Getenv("STORE_MODE")))
	if storeMode != StoreModeFixture {
		storeMode = StoreModeMySQL
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	origins := []string{
		"http://localhost:4200",
		"http://127.0.0.1:4200",
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		origins = origins[:0]
		for _, o := range strings.Split(env, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Env{
		AppAddr:        appAddr,
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:          dsn,
		StoreMode:      storeMode,
		JWTSecret:      secret,
		AllowedOrigins: origins,
	}
}
