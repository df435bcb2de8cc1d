package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port                string
	Timezone            string
	DBPath              string
	RecordSourceURL     string // empty: serve records from the local store
	FetchTimeout        time.Duration
	GridSize            int
	GuideAllowedDomains []string
	GuideMaxBytes       int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}
	cfg := FromEnv()
	log.Printf("[cfg] %+v", cfg)
	return cfg
}

// FromEnv reads the process environment only.
func FromEnv() AppConfig {
	get := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		v := get(k, "")
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Printf("[cfg] %s=%q is not a positive integer, using %d", k, v, def)
			return def
		}
		return n
	}

	var domains []string
	for _, d := range strings.Split(get("GUIDE_ALLOWED_DOMAINS", ""), ",") {
		if d = strings.TrimSpace(d); d != "" {
			domains = append(domains, strings.ToLower(d))
		}
	}
	return AppConfig{
		Port:                get("PORT", "8080"),
		Timezone:            get("TZ", "Asia/Seoul"),
		DBPath:              get("DB_PATH", "cropcare.db"),
		RecordSourceURL:     get("RECORD_SOURCE_URL", ""),
		FetchTimeout:        time.Duration(getInt("FETCH_TIMEOUT_SEC", 15)) * time.Second,
		GridSize:            getInt("GRID_SIZE", 35),
		GuideAllowedDomains: domains,
		GuideMaxBytes:       getInt("GUIDE_MAX_BYTES_PER_PAGE", 1500000),
	}
}

// Location resolves Timezone, falling back to UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("[cfg] timezone %q: %v, using UTC", c.Timezone, err)
		return time.UTC
	}
	return loc
}
