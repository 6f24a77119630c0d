package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS  = "" // e.g. "example.com,example2.com"
	MYSQL_DSN    = "" // MySQL will be used if this is set
	SQLITE_FILE  = "" // SQLite will be used if MYSQL_DSN is not configured and this is set
	BIND_ADDRESS = "0.0.0.0:8080"
	DEBUG_MODE   = true

	// JWT_SECRET signs all issued tokens
	JWT_SECRET             = "this is a long key" // TODO: require env variable in production
	ACCESS_TOKEN_LIFETIME  = 3600                 // seconds
	REFRESH_TOKEN_LIFETIME = 30 * 86400           // seconds

	// PAGE_SIZE is the default post list window when no limit is given
	PAGE_SIZE = 10

	// Media storage. Local disk is used unless S3_BUCKET is configured
	MEDIA_DIR     = "media"
	TMP_DIR       = "/tmp" // Used for temporary thumbnail work in case of S3
	S3_BUCKET     = ""
	S3_REGION     = ""
	S3_ENDPOINT   = "" // Optional, for S3-compatible services
	S3_ACCESS_KEY = ""
	S3_SECRET_KEY = ""
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("JWT_SECRET", &JWT_SECRET)
	readEnvInt("ACCESS_TOKEN_LIFETIME", &ACCESS_TOKEN_LIFETIME)
	readEnvInt("REFRESH_TOKEN_LIFETIME", &REFRESH_TOKEN_LIFETIME)
	readEnvInt("PAGE_SIZE", &PAGE_SIZE)
	readEnvString("MEDIA_DIR", &MEDIA_DIR)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_ACCESS_KEY", &S3_ACCESS_KEY)
	readEnvString("S3_SECRET_KEY", &S3_SECRET_KEY)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
