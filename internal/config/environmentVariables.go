package config

import (
	"log/slog"
	"time"
)

const (
	LOG_LEVEL_PROD              = slog.LevelInfo
	TRACE_ID_KEY                = "traceId"
	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute
	ConversionJobTimeout            = 60 * time.Second

	//serverTimeouts
	ReadTimeout            = 30 * time.Second
	WriteTimeout           = 120 * time.Second //upstream calls can be slow
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//conversion job buffer limit
	BufferLimit = 100

	//uploads
	MaxUploadSize      = 32 << 20 //32mb
	TempUploadDir      = "temporary_data"
	PDFPageTimeout     = 10 * time.Second
	PreviewRoutePrefix = "/api/previews/"
	StatusRoutePrefix  = "/api/status/"

	//auth
	AuthCookieName   = "auth-token"
	AuthCookieMaxAge = 7 * 24 * time.Hour
	LoginPath        = "/login"
	SignupPath       = "/signup"
	DashboardPath    = "/dashboard"
	BcryptCost       = 10

	//static credentials, overridable by env
	StaticUserEmail    = "steve@iicl.in"
	StaticUserPassword = "12345"
	StaticUserName     = "Steve Anthony"
	StaticUserID       = 1

	//external legal api
	LegalAPIBaseURL        = "http://44.211.157.24:8000"
	UpstreamRequestTimeout = 90 * time.Second

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//fallback summariser
	GeminiModelName                 = "gemini-2.5-flash-lite-preview-09-2025"
	ModelTemperature        float32 = 0.3
	SummariserContext               = "You are a legal assistant. Summarise the contract or case document you are given for a lawyer. Use ### headings for sections and **bold** for key terms. If the text is empty, say you could not read the document."
	MaxSummariserInputChars         = 60000

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	//redis has 16 DB we can use
	RedisJobStore      = 0
	RedisChatStore     = 1
	RedisDocumentStore = 2
	RedisUserStore     = 3

	//redis timeouts
	RedisJobStoreTTL          = 24 * time.Hour
	RedisChatStoreTTL         = 24 * time.Hour
	RedisDocumentStoreTTL     = 12 * time.Hour
	RedisUsersKey             = "lexgate:users"
	UserStoreMaxTxRetries     = 25
	DocumentStoreMaxTxRetries = 5
)
