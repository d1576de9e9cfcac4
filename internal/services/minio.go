package services

import (
	"context"
	"log"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// ImageResolver transforme le chemin d'image du catalogue en URL affichable
type ImageResolver interface {
	URL(ctx context.Context, image string) string
}

// StaticImages sert les images depuis le dossier statique
type StaticImages struct {
	Prefix string
}

func (s StaticImages) URL(_ context.Context, image string) string {
	prefix := s.Prefix
	if prefix == "" {
		prefix = "/static/"
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(image, "/")
}

// MinioImages génère des URLs signées ; en cas d'erreur on retombe sur Fallback
type MinioImages struct {
	Client   *minio.Client
	Bucket   string
	Expiry   time.Duration
	Fallback ImageResolver
}

const defaultSignedURLExpiry = time.Hour

func (m MinioImages) URL(ctx context.Context, image string) string {
	expiry := m.Expiry
	if expiry <= 0 {
		expiry = defaultSignedURLExpiry
	}

	// "images/lemon.jpg" => objet "lemon.jpg" dans le bucket
	key := path.Base(image)

	signed, err := m.Client.PresignedGetObject(ctx, m.Bucket, key, expiry, make(url.Values))
	if err != nil {
		log.Printf("⚠️ URL signée impossible pour %s: %v", key, err)
		if m.Fallback != nil {
			return m.Fallback.URL(ctx, image)
		}
		return image
	}
	return signed.String()
}
