package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL         string
	RedisAddress  string
	ServerAddress string
}
