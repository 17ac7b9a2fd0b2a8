package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/campuscare/maya/backend/internal/config"
	"github.com/campuscare/maya/backend/internal/handler"
	bookingmodel "github.com/campuscare/maya/backend/internal/model/booking"
	challengemodel "github.com/campuscare/maya/backend/internal/model/challenge"
	resourcemodel "github.com/campuscare/maya/backend/internal/model/resource"
	bookingservice "github.com/campuscare/maya/backend/internal/service/booking"
	challengeservice "github.com/campuscare/maya/backend/internal/service/challenge"
	chatservice "github.com/campuscare/maya/backend/internal/service/chat"
	forumservice "github.com/campuscare/maya/backend/internal/service/forum"
	moodservice "github.com/campuscare/maya/backend/internal/service/mood"
	navservice "github.com/campuscare/maya/backend/internal/service/nav"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	chatCfg := chatservice.DefaultConfig()
	chatCfg.ReplyDelay = cfg.Chat.ReplyDelay
	if len(cfg.Chat.CrisisPhrases) > 0 {
		chatCfg.CrisisPhrases = cfg.Chat.CrisisPhrases
	}
	if len(cfg.Chat.Hotlines) > 0 {
		chatCfg.Hotlines = cfg.Chat.Hotlines
	}

	svcs := handler.Services{
		Chat:      chatservice.NewService(chatCfg),
		Nav:       navservice.NewService(),
		Mood:      moodservice.NewService(moodservice.Seed()),
		Forum:     forumservice.NewService(forumservice.Seed()),
		Booking:   bookingservice.NewService(bookingmodel.Seed()),
		Challenge: challengeservice.NewService(challengemodel.Seed(), 280, 5, 14),
		Resources: resourcemodel.NewMemoryStore(resourcemodel.Seed()),
	}

	router := handler.NewRouter(svcs)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("CampusCare backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
