package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bookmarkd/internal/config"
	"bookmarkd/internal/core"
	"bookmarkd/internal/db"
	"bookmarkd/internal/http/handler"
	"bookmarkd/internal/http/handler/middleware"
	"bookmarkd/internal/http/payload"
	"bookmarkd/internal/http/server"
	"bookmarkd/internal/repository"
	"bookmarkd/pkg/jwt"
	"bookmarkd/pkg/log"

	_ "bookmarkd/docs" // swagger docs

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("bookmarkd", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewUserRepository(dbConn)

	err = repo.Migrate()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// bookmarker
	bookmarker := core.NewBookmarker(
		logger,
		repo,
		jwtService)

	// handler
	bookmarkHlr := handler.NewBookmarkHandler(
		logger,
		payload.Decoder{},
		bookmarker)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = middleware.NewCORSMiddleware().CORS(hdlr)

	// register routes
	mux.HandleFunc(handler.Banner, bookmarkHlr.HandleBanner)
	mux.HandleFunc(handler.ListUsers, bookmarkHlr.HandleListUsers)
	mux.HandleFunc(handler.Signup, bookmarkHlr.HandleSignup)
	mux.HandleFunc(handler.Login, bookmarkHlr.HandleLogin)
	mux.HandleFunc(handler.UpdateBookmarks, bookmarkHlr.HandleUpdateBookmarks)
	mux.HandleFunc(handler.Docs, bookmarkHlr.HandleDocs)
	mux.HandleFunc(handler.DocsJSON, bookmarkHlr.HandleDocsJSON)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
