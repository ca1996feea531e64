// Package config loads the exploit service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults used when the environment does not provide a value.
const (
	DefaultFlag         = "flag{IN_FRONT_OF_FOUNTAIN}"
	DefaultTargetDigest = "458f27e0d23c8113c52ab652dff24e6e"
	DefaultPort         = "3000"
	DefaultMaxBodyBytes = 1 << 20
)

// Config holds service configuration. It is read once at startup and never
// mutated afterwards.
type Config struct {
	Server    ServerConfig
	Challenge ChallengeConfig
	Receipt   ReceiptConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	StaticDir    string // empty disables static file serving
	MaxBodyBytes int64
}

type ChallengeConfig struct {
	Flag         string // RewardToken
	TargetDigest string // lowercase hex
	FlagSet      bool   // FLAG came from the environment
	HashSet      bool   // MD5_XOR_HASH came from the environment
}

type ReceiptConfig struct {
	SigningKey string // empty disables receipts
	Issuer     string
	TTL        time.Duration
}

// Load returns configuration from environment variables.
// PORT (Cloud Run standard) is checked first, then EXPLOIT_PORT.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = getEnv("EXPLOIT_PORT", DefaultPort)
	}
	return &Config{
		Server: ServerConfig{
			Port:         port,
			Env:          getEnv("ENV", "development"),
			StaticDir:    getEnv("STATIC_DIR", ""),
			MaxBodyBytes: int64(getEnvInt("MAX_BODY_BYTES", DefaultMaxBodyBytes)),
		},
		Challenge: ChallengeConfig{
			Flag:         getEnv("FLAG", DefaultFlag),
			TargetDigest: strings.ToLower(strings.TrimSpace(getEnv("MD5_XOR_HASH", DefaultTargetDigest))),
			FlagSet:      os.Getenv("FLAG") != "",
			HashSet:      os.Getenv("MD5_XOR_HASH") != "",
		},
		Receipt: ReceiptConfig{
			SigningKey: getEnv("RECEIPT_SIGNING_KEY", ""),
			Issuer:     getEnv("RECEIPT_ISSUER", "mission-exploit"),
			TTL:        time.Duration(getEnvInt("RECEIPT_TTL_HOURS", 24)) * time.Hour,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
