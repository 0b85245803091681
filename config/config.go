package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		DBName   string `yaml:"dbname"`
	} `yaml:"database"`
	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`
	Server struct {
		Port    int    `yaml:"port"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"server"`
	SMTP    SMTPConfig `yaml:"smtp"`
	Sweeper struct {
		// Cron spec for the completion sweep, e.g. "@every 5m".
		Schedule string `yaml:"schedule"`
	} `yaml:"sweeper"`
}

// SMTPConfig is the outgoing-mail endpoint for notifications.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

func LoadConfig(path string) (*Config, error) {
	config := &Config{}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Sweeper.Schedule == "" {
		config.Sweeper.Schedule = "@every 5m"
	}
	// Secrets may come from the environment instead of the file.
	if env := os.Getenv("JWT_SECRET"); env != "" {
		config.JWT.Secret = env
	}
	if env := os.Getenv("DB_PASSWORD"); env != "" {
		config.Database.Password = env
	}
	if env := os.Getenv("SMTP_PASSWORD"); env != "" {
		config.SMTP.Password = env
	}
	return config, nil
}
