// Package cart regroupe les opérations sur le panier d'une session.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"pickles_back_end/internal/cache"
	"pickles_back_end/internal/catalog"
	"pickles_back_end/internal/models"
)

var ErrItemNotFound = errors.New("article introuvable dans le catalogue")

// Add ajoute une copie de l'article id à la fin du panier.
// Le panier d'entrée n'est jamais modifié ; si l'id est inconnu il est renvoyé tel quel.
func Add(c models.Cart, cat *catalog.Catalog, id int) (models.Cart, models.Item, error) {
	item, ok := cat.Find(id)
	if !ok {
		return c, models.Item{}, fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}

	items := make([]models.Item, len(c.Items), len(c.Items)+1)
	copy(items, c.Items)
	c.Items = append(items, item)
	return c, item, nil
}

// Service relie le catalogue, le stockage des paniers et le pub/sub
type Service struct {
	catalog *catalog.Catalog
	store   cache.CartStore
	broker  cache.Broker
	now     func() time.Time
}

func NewService(cat *catalog.Catalog, store cache.CartStore, broker cache.Broker) *Service {
	return &Service{
		catalog: cat,
		store:   store,
		broker:  broker,
		now:     time.Now,
	}
}

// View renvoie le panier courant sans le modifier
func (s *Service) View(ctx context.Context, sessionID string) (models.Cart, error) {
	return s.store.Load(ctx, sessionID)
}

// Add ajoute l'article au panier de la session. ErrItemNotFound laisse le panier intact.
func (s *Service) Add(ctx context.Context, sessionID string, id int) (models.Cart, models.Item, error) {
	current, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return models.Cart{}, models.Item{}, err
	}

	next, item, err := Add(current, s.catalog, id)
	if err != nil {
		return current, models.Item{}, err
	}
	next.UpdatedAt = s.now()

	if err := s.store.Save(ctx, sessionID, next); err != nil {
		return current, models.Item{}, err
	}
	s.publish(ctx, sessionID, cache.CartUpdated)

	log.Printf("🛒 %s ajouté au panier %s (%d articles)", item.Name, sessionID, next.Len())
	return next, item, nil
}

// Clear vide le panier et renvoie son contenu précédent
func (s *Service) Clear(ctx context.Context, sessionID string) (models.Cart, error) {
	previous, err := s.store.Take(ctx, sessionID)
	if err != nil {
		return models.Cart{}, err
	}
	s.publish(ctx, sessionID, cache.CartCleared)
	return previous, nil
}

// Transfer déplace le panier de from vers to (rotation de l'identifiant de session au login)
func (s *Service) Transfer(ctx context.Context, from, to string) (models.Cart, error) {
	previous, err := s.store.Take(ctx, from)
	if err != nil {
		return models.Cart{}, err
	}
	if previous.Len() == 0 {
		return s.store.Load(ctx, to)
	}

	moved := models.Cart{SessionID: to, Items: previous.Items, UpdatedAt: s.now()}
	if err := s.store.Save(ctx, to, moved); err != nil {
		return models.Cart{}, err
	}
	s.publish(ctx, from, cache.CartCleared)
	s.publish(ctx, to, cache.CartUpdated)
	return moved, nil
}

// Subscribe suit les changements du panier d'une session
func (s *Service) Subscribe(ctx context.Context, sessionID string) (cache.Subscription, error) {
	return s.broker.Subscribe(ctx, cache.CartChannel(sessionID))
}

func (s *Service) publish(ctx context.Context, sessionID, event string) {
	if s.broker == nil {
		return
	}
	if err := s.broker.Publish(ctx, cache.CartChannel(sessionID), event); err != nil {
		log.Printf("⚠️ Publication %s pour %s échouée: %v", event, sessionID, err)
	}
}
