package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Settings holds the values that change between deployments. Everything
// else stays in the constants above.
type Settings struct {
	IsProd        bool
	ListenAddr    string
	SecureCookies bool

	LegalAPIBaseURL string
	// HostOverrides maps an endpoint name to a different base url.
	// The upstream is spread over several hosts in practice.
	HostOverrides map[string]string

	RedisAddr     string
	RedisPassword string

	StaticEmail    string
	StaticPassword string
	StaticName     string

	GeminiAPIKey string
	GeminiModel  string
}

// Load reads the environment, optionally seeded from a .env file.
func Load(envFile string) Settings {
	if envFile != "" {
		//missing .env is fine, real env wins anyway
		_ = godotenv.Load(envFile)
	}

	return Settings{
		IsProd:          envBool("LEXGATE_PROD", false),
		ListenAddr:      envString("LEXGATE_LISTEN_ADDR", ServerListenAddr),
		SecureCookies:   envBool("LEXGATE_SECURE_COOKIES", false),
		LegalAPIBaseURL: strings.TrimRight(envString("LEGAL_API_BASE_URL", LegalAPIBaseURL), "/"),
		HostOverrides:   ParseHostOverrides(os.Getenv("LEGAL_API_HOST_OVERRIDES")),
		RedisAddr:       envString("REDIS_ADDR", RedisAddr),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		StaticEmail:     envString("LEXGATE_STATIC_EMAIL", StaticUserEmail),
		StaticPassword:  envString("LEXGATE_STATIC_PASSWORD", StaticUserPassword),
		StaticName:      envString("LEXGATE_STATIC_NAME", StaticUserName),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     envString("GEMINI_MODEL", GeminiModelName),
	}
}

// ParseHostOverrides reads "name=url,name2=url2". Malformed pairs are skipped.
func ParseHostOverrides(raw string) map[string]string {
	overrides := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		name, url, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || name == "" || url == "" {
			continue
		}
		overrides[strings.TrimSpace(name)] = strings.TrimRight(strings.TrimSpace(url), "/")
	}
	return overrides
}

func envString(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
