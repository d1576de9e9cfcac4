package users

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"pickles_back_end/internal/models"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	s := NewStore([]string{"santhi"})

	u, err := s.Register("ravi", "secret")
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if u.Role != models.RoleCustomer || u.PasswordHash == "secret" {
		t.Fatalf("unexpected user %+v", u)
	}

	admin, err := s.Register("santhi", "pw")
	if err != nil || !admin.IsAdmin() {
		t.Fatalf("santhi should be admin, got %+v, %v", admin, err)
	}

	got, err := s.Authenticate("ravi", "secret")
	if err != nil || got.Username != "ravi" {
		t.Fatalf("Authenticate() = %+v, %v", got, err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	s := NewStore(nil)
	s.Register("ravi", "first")

	if _, err := s.Register("ravi", "second"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}
	// le premier mot de passe reste valide
	if _, err := s.Authenticate("ravi", "first"); err != nil {
		t.Fatalf("original credentials should still work: %v", err)
	}
	if _, err := s.Authenticate("ravi", "second"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("duplicate registration must not overwrite the password")
	}
}

func TestAuthenticateFailures(t *testing.T) {
	s := NewStore(nil)
	s.Register("ravi", "secret")

	tests := []struct {
		name, user, pass string
		want             error
	}{
		{"wrong password", "ravi", "nope", ErrInvalidCredentials},
		{"unknown user", "ghost", "secret", ErrInvalidCredentials},
		{"blank username", "  ", "secret", ErrMissingFields},
		{"blank password", "ravi", "", ErrMissingFields},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Authenticate(tt.user, tt.pass); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRegisterMissingFields(t *testing.T) {
	s := NewStore(nil)
	if _, err := s.Register("", "x"); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("err = %v", err)
	}
	if len(s.List()) != 0 {
		t.Fatal("nothing should be stored")
	}
}

func TestList(t *testing.T) {
	s := NewStore(nil)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.Register("zoe", "x")
	s.Register("anil", "x")
	now = now.Add(time.Second)
	s.Register("bala", "x")

	var names []string
	for _, u := range s.List() {
		names = append(names, u.Username)
	}
	if diff := cmp.Diff([]string{"anil", "zoe", "bala"}, names); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestConcurrentRegisterSameName(t *testing.T) {
	s := NewStore(nil)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Register("ravi", "pw")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
		}
	}
	if ok != 1 {
		t.Fatalf("%d registrations succeeded, want exactly 1", ok)
	}
}
