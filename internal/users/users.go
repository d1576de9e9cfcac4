package users

import (
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"pickles_back_end/internal/models"
	"pickles_back_end/internal/utils"
)

var (
	ErrUsernameTaken      = errors.New("nom d'utilisateur déjà pris")
	ErrInvalidCredentials = errors.New("identifiants invalides")
	ErrMissingFields      = errors.New("nom d'utilisateur et mot de passe requis")
)

// Store comptes en mémoire, perdus au redémarrage
type Store struct {
	mu     sync.RWMutex
	users  map[string]models.User
	admins map[string]bool
	now    func() time.Time
}

// NewStore les noms listés dans admins obtiennent le rôle admin à l'inscription
func NewStore(admins []string) *Store {
	set := make(map[string]bool, len(admins))
	for _, a := range admins {
		set[a] = true
	}
	return &Store{
		users:  make(map[string]models.User),
		admins: set,
		now:    time.Now,
	}
}

func (s *Store) Register(username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, ErrMissingFields
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return models.User{}, ErrUsernameTaken
	}

	role := models.RoleCustomer
	if s.admins[username] {
		role = models.RoleAdmin
	}

	u := models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.now(),
	}
	s.users[username] = u

	log.Printf("✅ Utilisateur %s inscrit (rôle %s)", username, role)
	return u, nil
}

// Authenticate ne distingue pas utilisateur inconnu et mauvais mot de passe
func (s *Store) Authenticate(username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, ErrMissingFields
	}

	s.mu.RLock()
	u, ok := s.users[username]
	s.mu.RUnlock()
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}

	match, err := utils.VerifyPassword(password, u.PasswordHash)
	if err != nil {
		log.Printf("❌ Hash illisible pour %s: %v", username, err)
		return models.User{}, ErrInvalidCredentials
	}
	if !match {
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// List triée par date d'inscription puis par nom
func (s *Store) List() []models.User {
	s.mu.RLock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Username < out[j].Username
	})
	return out
}
