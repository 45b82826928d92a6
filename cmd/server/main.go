package main

import (
    "context"
    "errors"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/getsentry/sentry-go"
    "go.uber.org/zap"

    "github.com/d60-Lab/social-graph/config"
    _ "github.com/d60-Lab/social-graph/docs"
    "github.com/d60-Lab/social-graph/internal/api"
    "github.com/d60-Lab/social-graph/internal/api/handler"
    "github.com/d60-Lab/social-graph/internal/cache"
    "github.com/d60-Lab/social-graph/internal/repository"
    "github.com/d60-Lab/social-graph/internal/service"
    "github.com/d60-Lab/social-graph/pkg/database"
    "github.com/d60-Lab/social-graph/pkg/logger"
    "github.com/d60-Lab/social-graph/pkg/tracing"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

// @title social-graph API
// @version 1.0
// @description 联系人关系链与互动计数服务
// @BasePath /api/v1
func main() {
    cfg := must(config.Load())
    if err := logger.Init(cfg.Log.Level); err != nil {
        panic(err)
    }
    defer logger.Sync()

    if cfg.Sentry.DSN != "" {
        if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
            logger.Warn("sentry init failed", zap.Error(err))
        } else {
            defer sentry.Flush(2 * time.Second)
        }
    }

    ctx := context.Background()
    shutdownTracer := must(tracing.Init(ctx, cfg))
    defer func() { _ = shutdownTracer(ctx) }()

    db := must(database.InitDB(cfg))

    contactsCache := cache.NewContactsCache(nil, cfg.Cache.ContactsTTL)
    if rdb, err := database.InitRedis(cfg); err != nil {
        logger.Warn("redis unavailable, contacts cache disabled", zap.Error(err))
    } else {
        contactsCache = cache.NewContactsCache(rdb, cfg.Cache.ContactsTTL)
    }

    // repositories & services
    userRepo := repository.NewUserRepository(db)
    requestRepo := repository.NewFriendRequestRepository(db)
    contactRepo := repository.NewContactRepository(db)
    postRepo := repository.NewPostRepository(db)
    commentRepo := repository.NewCommentRepository(db)
    likeRepo := repository.NewLikeRepository(db)

    contactSvc := service.NewContactService(db, userRepo, requestRepo, contactRepo, contactsCache)
    likeSvc := service.NewLikeService(likeRepo, postRepo, commentRepo)
    feedSvc := service.NewFeedService(contactSvc, postRepo)
    commentSvc := service.NewCommentService(db, commentRepo)
    publisher := service.NewPublisher(userRepo, postRepo)

    h := handler.New(contactSvc, likeSvc, feedSvc, commentSvc, publisher)
    router := api.NewRouter(cfg, h)

    srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}
    go func() {
        logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            logger.Fatal("server failed", zap.Error(err))
        }
    }()

    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit

    logger.Info("shutting down")
    shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
    defer cancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        logger.Error("graceful shutdown failed", zap.Error(err))
    }
}
