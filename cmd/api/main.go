// @title           LexGate API
// @version         1.0
// @description     Legal workspace gateway in front of the legal api
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akolanti/lexgate/internal/assistant"
	"github.com/akolanti/lexgate/internal/auth"
	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/data/redisStore"
	"github.com/akolanti/lexgate/internal/data/store"
	"github.com/akolanti/lexgate/internal/domain/chatModel"
	"github.com/akolanti/lexgate/internal/domain/documentModel"
	"github.com/akolanti/lexgate/internal/domain/jobModel"
	"github.com/akolanti/lexgate/internal/domain/userModel"
	"github.com/akolanti/lexgate/internal/handlers"
	"github.com/akolanti/lexgate/internal/job"
	"github.com/akolanti/lexgate/internal/llm/gemini"
	"github.com/akolanti/lexgate/internal/server"
	"github.com/akolanti/lexgate/internal/upstream"
	"github.com/akolanti/lexgate/internal/worker"
	"github.com/akolanti/lexgate/pkg/logger_i"
)

var (
	listenAddr        string
	envFile           string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

type stores struct {
	jobs      jobModel.JobStore
	documents documentModel.DocumentStore
	chats     chatModel.ChatStore
	users     userModel.UserStore
}

func main() {
	//config
	flag.StringVar(&envFile, "env-file", ".env", "optional .env file")
	flag.StringVar(&listenAddr, "listen-addr", "", "server listen address, overrides LEXGATE_LISTEN_ADDR")
	flag.Parse()

	settings := config.Load(envFile)
	if listenAddr == "" {
		listenAddr = settings.ListenAddr
	}

	logger_i.Init(settings.IsProd)
	var logger = logger_i.NewLogger("main")

	//init buffered job channel
	jobChannel := make(chan jobModel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	s := openStores(serviceContext, redisStore.Options{Addr: settings.RedisAddr, Password: settings.RedisPassword}, logger)

	//init job service
	service := job.InitJobService(job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
		JobStore:          s.jobs,
		DocumentStore:     s.documents,
	})
	logger.Info("Starting job service")

	legalAPI := upstream.NewClient(settings.LegalAPIBaseURL, settings.HostOverrides)
	logger.Info("Legal api configured", "baseURL", settings.LegalAPIBaseURL, "overrides", len(settings.HostOverrides))

	summariser := gemini.GetGeminiClient(serviceContext, settings.GeminiAPIKey, settings.GeminiModel)

	assistantService := assistant.NewService(assistant.ServiceConfig{
		API:        legalAPI,
		Chats:      s.chats,
		Documents:  s.documents,
		Summariser: summariser,
	})
	authService := auth.NewService(auth.StaticUser{
		Id:       config.StaticUserID,
		Name:     settings.StaticName,
		Email:    settings.StaticEmail,
		Password: settings.StaticPassword,
	}, s.users)

	handlers.InitHandlers(handlers.Dependencies{
		Jobs:          service,
		Documents:     s.documents,
		Chats:         s.chats,
		Assistant:     assistantService,
		Auth:          authService,
		Files:         legalAPI,
		SecureCookies: settings.SecureCookies,
		UploadDir:     config.TempUploadDir,
	})

	//init worker pool
	worker.InitServices(service, service)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

// openStores prefers redis and falls back to memory per store when redis is offline.
func openStores(ctx context.Context, opts redisStore.Options, logger *logger_i.Logger) stores {
	var s stores

	if jobs := store.GetRedisJobStore(ctx, opts); jobs != nil {
		s.jobs = jobs
	} else {
		s.jobs = store.InitInMemoryJobStore()
	}
	if docs := store.GetRedisDocumentStore(ctx, opts); docs != nil {
		s.documents = docs
	} else {
		s.documents = store.InitInMemoryDocumentStore()
	}
	if chats := store.GetRedisChatStore(ctx, opts); chats != nil {
		s.chats = chats
	} else {
		s.chats = store.InitInMemoryChatStore()
	}
	if users := store.GetRedisUserStore(ctx, opts); users != nil {
		s.users = users
	} else {
		logger.Warn("Redis is offline, accounts created now are lost on restart")
		s.users = store.InitInMemoryUserStore()
	}
	return s
}
