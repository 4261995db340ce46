package configs

import (
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	WeatherAPIKey   string
	WeatherBaseURL  string
}

var Env *EnvConfig

func init() {
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "go-weather"),
		WeatherAPIKey:   viper.GetString("WEATHER_API_KEY"),
		WeatherBaseURL:  getStringOrDefault("WEATHER_BASE_URL", "https://api.weatherapi.com/v1"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
