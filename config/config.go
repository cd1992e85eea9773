package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Currency rates config
const EXCHANGE_RATE_ENDPOINT_BASE_V6 = "https://open.er-api.com/v6"
const EXCHANGE_RATE_BASE_CURRENCY = "USD"
const CURRENCY_CACHE_TTL_HOURS = 24
const RATES_REFRESHER_SCHEDULE_MINUTES = 60

// Package builder config
const MAX_STAY_ACTIVITIES = 5

// Activity selection modes for stay sections.
// "head" takes the first MAX_STAY_ACTIVITIES scored activities,
// "daypart" picks the best activity per time-of-day bucket.
const ACTIVITY_SELECTION_HEAD = "head"
const ACTIVITY_SELECTION_DAYPART = "daypart"
const ACTIVITY_SELECTION_MODE = ACTIVITY_SELECTION_HEAD

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const TRIP_RESPONSE_RESOURCE = "trip_response.json"
const EXCHANGE_RATES_RESPONSE_RESOURCE = "exchange_rates_response.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
