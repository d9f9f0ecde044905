package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Share    ShareConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// ShareConfig signs public gallery share links.
type ShareConfig struct {
	Secret      string
	ExpiryHours int
}

// BookingConfig seeds business settings when none exist yet.
type BookingConfig struct {
	DefaultDurationMin int
	TravelSpeedKmh     float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SHARE_EXPIRY_HOURS", 168)
	viper.SetDefault("DEFAULT_DURATION_MIN", 60)
	viper.SetDefault("TRAVEL_SPEED_KMH", 50)
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Share: ShareConfig{
			Secret:      viper.GetString("SHARE_SECRET"),
			ExpiryHours: viper.GetInt("SHARE_EXPIRY_HOURS"),
		},
		Booking: BookingConfig{
			DefaultDurationMin: viper.GetInt("DEFAULT_DURATION_MIN"),
			TravelSpeedKmh:     viper.GetFloat64("TRAVEL_SPEED_KMH"),
		},
	}

	return config, nil
}
