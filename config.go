package focustimer

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultCSVPath = "logs/focus_sessions.csv"
	defaultDBPath  = "logs/focus_sessions.db"
)

type Config struct {
	CSVPath string
	DBPath  string
}

// LoadConfig reads data-file locations from the environment, falling back to
// the defaults under logs/. A .env file is honored when present.
func LoadConfig() Config {
	_ = godotenv.Load()

	config := Config{
		CSVPath: os.Getenv("FOCUSTIMER_LOG_PATH"),
		DBPath:  os.Getenv("FOCUSTIMER_DB_PATH"),
	}

	if config.CSVPath == "" {
		config.CSVPath = defaultCSVPath
	}
	if config.DBPath == "" {
		config.DBPath = defaultDBPath
	}
	return config
}
