package config

import "os"

// Config holds the server's environment configuration
type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	HTTPPort  string
}

// Load reads configuration from the environment with local defaults
func Load() *Config {
	return &Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "movies"),
		RedisAddr: getEnv("REDIS_URI", "localhost:6379"),
		HTTPPort:  getEnv("PORT", "5000"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
