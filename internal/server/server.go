package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"

	"github.com/akolanti/lexgate/internal/adapter/utils"
	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/handlers"
	"github.com/akolanti/lexgate/internal/middleware"
	"github.com/akolanti/lexgate/internal/navigation"
	"github.com/akolanti/lexgate/pkg/logger_i"
	"github.com/go-chi/chi/v5"
)

var (
	server     *http.Server
	_logger    = logger_i.NewLogger("Server")
	routesOnce sync.Once
)

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	WorkerStop       chan bool
	Group            *sync.WaitGroup
	CloseServices    context.CancelFunc
}

// Routes registers every LexGate route on the shared router, once.
func Routes() http.Handler {
	r := utils.GetRouter()
	routesOnce.Do(func() { registerRoutes(r.Router) })
	return r.Router
}

func registerRoutes(router *chi.Mux) {
	router.Get("/healthz", middleware.Wrap(handlers.HealthHandler))

	router.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", middleware.Limited(handlers.LoginHandler))
		api.Post("/auth/signup", middleware.Limited(handlers.SignupHandler))
		api.Post("/auth/logout", middleware.Wrap(handlers.LogoutHandler))
		api.Get("/auth/check", middleware.Wrap(handlers.CheckHandler))

		api.Get("/menu", middleware.Authenticated(handlers.MenuHandler))
		api.Post("/workspaces", middleware.Authenticated(handlers.CreateWorkspaceHandler))
		api.Route("/workspaces/{workspaceId}", func(ws chi.Router) {
			ws.Delete("/", middleware.Authenticated(handlers.DeleteWorkspaceHandler))
			ws.Post("/documents", middleware.Authenticated(handlers.PostDocumentsHandler))
			ws.Get("/documents", middleware.Authenticated(handlers.ListDocumentsHandler))
			ws.Get("/documents/{documentId}", middleware.Authenticated(handlers.GetDocumentHandler))
			ws.Delete("/documents/{documentId}", middleware.Authenticated(handlers.DeleteDocumentHandler))
			ws.Get("/messages", middleware.Authenticated(handlers.GetMessagesHandler))
			ws.Post("/assist/{operation}", middleware.AuthenticatedLimited(handlers.AssistHandler))
			ws.Post("/continue", middleware.AuthenticatedLimited(handlers.ContinueHandler))
			ws.Post("/draft/{kind}", middleware.AuthenticatedLimited(handlers.DraftHandler))
		})
		api.Get("/previews/{token}", middleware.Authenticated(handlers.GetPreviewHandler))
		api.Get("/status/{id}", middleware.Authenticated(handlers.GetStatusHandler))
		api.Get("/recent-files/{folder}", middleware.AuthenticatedLimited(handlers.RecentFilesHandler))
		api.Get("/download-document/{documentId}", middleware.AuthenticatedLimited(handlers.DownloadDocumentHandler))
		api.Post("/format", middleware.Authenticated(handlers.FormatHandler))
		api.Post("/proofread", middleware.Authenticated(handlers.ProofreadHandler))
	})

	//unregistered paths still go through the gate so nested protected paths redirect
	router.NotFound(middleware.PageGate(http.NotFoundHandler()).ServeHTTP)

	router.Group(func(pages chi.Router) {
		pages.Use(middleware.PageGate)
		pages.Get("/", handlers.RootHandler)
		pages.Get(config.LoginPath, handlers.PageHandler(navigation.Item{Label: "Login", Route: config.LoginPath}, false))
		pages.Get(config.SignupPath, handlers.PageHandler(navigation.Item{Label: "Sign Up", Route: config.SignupPath}, false))
		for _, page := range navigation.Pages() {
			pages.Get(page.Route, handlers.PageHandler(page, true))
		}
	})
}

func CreateServer(listenAddr string) {
	server = &http.Server{
		Addr:         listenAddr,
		Handler:      Routes(),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	_logger.Info("Server is listening at", "address", listenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_logger.Error("Server crashed", "error", err.Error(), "addr", listenAddr)
	}
}

func ShutDownHandler(shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	_logger.Info("Server is shutting down", "signal", state.String())

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		if server != nil {
			server.SetKeepAlivesEnabled(false)
			if err := server.Shutdown(ctx); err != nil {
				_logger.Error("Could not shutdown gracefully", "error", err)
			}
		}

		//close workers
		close(shutdownParams.WorkerStop)
		shutdownParams.Group.Wait()
		shutdownParams.CloseServices()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		_logger.Info("Graceful shutdown complete")
	case <-ctx.Done():
		_logger.Info("Force Shut down")
		os.Exit(1)
	}
}
