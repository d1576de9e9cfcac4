package database

import (
	"context"
	"fmt"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"

	"pickles_back_end/internal/config"
)

// =============================================
// REDIS (panier, pub/sub, rate limiting)
// =============================================

// ConnectRedis renvoie nil, nil si REDIS_HOST est vide : le serveur reste en mémoire
func ConnectRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	if cfg.RedisHost == "" {
		log.Println("⚠️ REDIS_HOST absent, panier et compteurs en mémoire")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connexion Redis %s: %w", cfg.RedisHost, err)
	}
	log.Println("✅ Connecté à Redis :", cfg.RedisHost)
	return client, nil
}

// =============================================
// MINIO (images produits)
// =============================================

// NewMinIOClient ne contacte pas le serveur ; la région évite la requête GetBucketLocation
func NewMinIOClient(cfg config.Config) (*minio.Client, error) {
	return minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
		Region: cfg.MinIORegion,
	})
}

// ConnectMinIO renvoie nil, nil si MINIO_ENDPOINT est vide. Le bucket doit exister.
func ConnectMinIO(ctx context.Context, cfg config.Config) (*minio.Client, error) {
	if cfg.MinIOEndpoint == "" {
		log.Println("⚠️ MINIO_ENDPOINT absent, images servies depuis /static")
		return nil, nil
	}

	client, err := NewMinIOClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("client MinIO: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, fmt.Errorf("vérification bucket %s: %w", cfg.MinIOBucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket MinIO %s introuvable", cfg.MinIOBucket)
	}

	log.Println("🪣 Bucket MinIO présent :", cfg.MinIOBucket)
	log.Println("✅ Connecté à MinIO :", cfg.MinIOEndpoint)
	return client, nil
}
