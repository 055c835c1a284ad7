package variables

import (
	"log"
	"os"
	"strconv"
)

const (
	HTTP_PORT_DEFAULT = "8080"
	HTTP_PORT_NAME    = "HTTP_PORT"

	ROOMS_CONFIG_PATH_DEFAULT = "config/rooms.yaml"
	ROOMS_CONFIG_PATH_NAME    = "ROOMS_CONFIG_PATH"

	// Fixed origin joined with a room url to build the navigation target.
	NAVIGATE_ORIGIN_DEFAULT = "//meet.example.org"
	NAVIGATE_ORIGIN_NAME    = "NAVIGATE_ORIGIN"

	DEFAULT_LANGUAGE_DEFAULT = "en-GB"
	DEFAULT_LANGUAGE_NAME    = "DEFAULT_LANGUAGE"
)

func Env(variableName, defaultValue string) string {
	if variable := os.Getenv(variableName); variable != "" {
		log.Printf("[%s]: %s", variableName, variable)
		return variable
	}
	log.Printf("[%s_DEFAULT]: %s", variableName, defaultValue)
	return defaultValue
}

// Bool parses a query or env flag. Anything unparsable falls back to def.
func Bool(value string, def bool) bool {
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return parsed
}
