package update

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DBPath      string
	ListHeight  int
	ListWidth   int
	EventBuffer int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:      defaultDBPath(),
		ListHeight:  12,
		ListWidth:   56,
		EventBuffer: 64,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TICKLIST_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v, ok := getEnvInt("TICKLIST_LIST_HEIGHT"); ok && v > 0 {
		cfg.ListHeight = v
	}
	if v, ok := getEnvInt("TICKLIST_LIST_WIDTH"); ok && v > 0 {
		cfg.ListWidth = v
	}
	if v, ok := getEnvInt("TICKLIST_EVENT_BUFFER"); ok && v > 0 {
		cfg.EventBuffer = v
	}
	return cfg
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ticklist.db"
	}
	return filepath.Join(home, ".ticklist", "ticklist.db")
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
