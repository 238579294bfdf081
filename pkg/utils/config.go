package utils

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
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

type BookingConfig struct {
	SlotMinutes int
	WeekendDays string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SLOT_MINUTES", 15)
	viper.SetDefault("WEEKEND_DAYS", "Saturday,Sunday")

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
		Booking: BookingConfig{
			SlotMinutes: viper.GetInt("SLOT_MINUTES"),
			WeekendDays: viper.GetString("WEEKEND_DAYS"),
		},
	}

	return config, nil
}

// WeekendSet parses the comma-separated weekend day names into a lookup set.
// Unknown names are ignored; an empty result falls back to Saturday/Sunday.
func (c BookingConfig) WeekendSet() map[time.Weekday]bool {
	names := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}

	set := make(map[time.Weekday]bool)
	for _, part := range strings.Split(c.WeekendDays, ",") {
		if day, ok := names[strings.ToLower(strings.TrimSpace(part))]; ok {
			set[day] = true
		}
	}

	if len(set) == 0 {
		set[time.Saturday] = true
		set[time.Sunday] = true
	}

	return set
}
