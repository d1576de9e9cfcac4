package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"pickles_back_end/internal/cache"
	"pickles_back_end/internal/cart"
	"pickles_back_end/internal/catalog"
	"pickles_back_end/internal/checkout"
	"pickles_back_end/internal/config"
	"pickles_back_end/internal/database"
	"pickles_back_end/internal/middleware"
	"pickles_back_end/internal/routes"
	"pickles_back_end/internal/services"
	"pickles_back_end/internal/users"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	rdb, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	minioClient, err := database.ConnectMinIO(ctx, cfg)
	if err != nil {
		log.Printf("⚠️ MinIO indisponible, images statiques: %v", err)
	}
	cancel()

	store, broker, counter := backends(rdb, cfg)

	cat := catalog.Default()
	carts := cart.NewService(cat, store, broker)

	notifiers := []checkout.Notifier{services.LogNotifier{}, services.NewOrderPublisher(broker)}
	deps := routes.Deps{
		Config:   cfg,
		Sessions: middleware.NewCookieStore(cfg),
		Catalog:  cat,
		Carts:    carts,
		Users:    users.NewStore(cfg.AdminUsernames),
		Counter:  counter,
		Images:   services.StaticImages{Prefix: "/static/"},
	}

	if minioClient != nil {
		deps.Images = services.MinioImages{
			Client:   minioClient,
			Bucket:   cfg.MinIOBucket,
			Fallback: services.StaticImages{Prefix: "/static/"},
		}
	}

	if cfg.MailEnabled() {
		mailer, err := services.NewMailer(cfg)
		if err != nil {
			log.Printf("⚠️ Mailer désactivé: %v", err)
		} else {
			notifiers = append(notifiers, mailer)
			deps.Contact = mailer
			log.Println("✅ Mailer SMTP configuré :", cfg.SMTPHost)
		}
	}
	deps.Checkout = checkout.NewFlow(carts, notifiers...)

	r := gin.Default()
	if err := routes.RegisterRoutes(r, deps); err != nil {
		log.Fatalf("❌ %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Println("🚀 Serveur Pickles lancé sur le port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Erreur serveur: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Arrêt du serveur...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Arrêt forcé: %v", err)
	}
	for _, b := range []any{store, counter} {
		if closer, ok := b.(io.Closer); ok {
			closer.Close()
		}
	}
	if rdb != nil {
		rdb.Close()
	}
	log.Println("✅ Serveur arrêté")
}

// backends Redis si configuré, sinon implémentations en mémoire
func backends(rdb *redis.Client, cfg config.Config) (cache.CartStore, cache.Broker, cache.Counter) {
	if rdb == nil {
		return cache.NewMemoryCartStore(cfg.SessionTTL()), cache.NewMemoryBroker(), cache.NewMemoryCounter()
	}
	return cache.NewRedisCartStore(rdb, cfg.SessionTTL()), cache.NewRedisBroker(rdb), cache.NewRedisCounter(rdb)
}
