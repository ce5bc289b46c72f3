package config

import "os"

type Config struct {
	HTTPAddr    string
	DatabaseDSN string
	DBMaxConns  int
	JWTSecret   string
	AdminEmail  string
	AdminPass   string
	GelfAddr    string
	StorageDir  string
	PublicBase  string
}

func Load() *Config {
	return &Config{
		HTTPAddr:    getEnv("PETITION_ADDR", ":8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=127.0.0.1 port=5432 user=petition password=petition dbname=petition sslmode=disable"),
		DBMaxConns:  getEnvInt("DB_MAX_CONNS", 10),
		JWTSecret:   getEnv("PETITION_JWT_SECRET", "petition-dev-secret-change-me"),
		AdminEmail:  getEnv("PETITION_ADMIN_EMAIL", "admin@petition.local"),
		AdminPass:   getEnv("PETITION_ADMIN_PASS", "admin123"),
		GelfAddr:    getEnv("PETITION_GELF_ADDR", ""),
		StorageDir:  getEnv("PETITION_STORAGE_DIR", "uploads"),
		PublicBase:  getEnv("PETITION_PUBLIC_BASE", "http://localhost:8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return fallback
		}
		n = n*10 + int(c-'0')
	}
	return n
}
