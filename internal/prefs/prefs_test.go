package prefs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// storeFactories builds each Store implementation for the shared tests.
var storeFactories = map[string]func(t *testing.T) Store{
	"memory": func(t *testing.T) Store {
		return NewMemory()
	},
	"bolt": func(t *testing.T) Store {
		s, err := OpenBolt(filepath.Join(t.TempDir(), "state", "prefs.db"))
		if err != nil {
			t.Fatalf("OpenBolt() error = %v", err)
		}
		return s
	},
}

func TestStoreRoundTrip(t *testing.T) {
	for name, open := range storeFactories {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			if _, err := s.Get(KeyMode); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
			}

			values := map[string]string{
				KeyMode:   "ueb1",
				KeyLayout: "  odd value\n",
			}
			for k, v := range values {
				if err := s.Set(k, v); err != nil {
					t.Fatalf("Set(%q) error = %v", k, err)
				}
			}
			for k, want := range values {
				got, err := s.Get(k)
				if err != nil {
					t.Fatalf("Get(%q) error = %v", k, err)
				}
				if got != want {
					t.Errorf("Get(%q) = %q, want %q", k, got, want)
				}
			}

			if err := s.Set(KeyMode, "other"); err != nil {
				t.Fatalf("overwrite error = %v", err)
			}
			if got, _ := s.Get(KeyMode); got != "other" {
				t.Errorf("overwritten value = %q", got)
			}
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for name, open := range storeFactories {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			if err := s.Delete(KeyLayout); err != nil {
				t.Errorf("Delete(missing) error = %v", err)
			}
			s.Set(KeyLayout, "sixkey")
			if err := s.Delete(KeyLayout); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, err := s.Get(KeyLayout); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get after Delete error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreClosed(t *testing.T) {
	for name, open := range storeFactories {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			if err := s.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}
			if _, err := s.Get(KeyMode); !errors.Is(err, ErrClosed) {
				t.Errorf("Get on closed store error = %v, want ErrClosed", err)
			}
			if err := s.Set(KeyMode, "x"); !errors.Is(err, ErrClosed) {
				t.Errorf("Set on closed store error = %v, want ErrClosed", err)
			}
		})
	}
}

func TestBoltPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("OpenBolt() error = %v", err)
	}
	if s.Path() != path {
		t.Errorf("Path() = %q, want %q", s.Path(), path)
	}
	if err := s.Set(KeyMode, "ueb1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	s.Close()

	reopened, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	if got, err := reopened.Get(KeyMode); err != nil || got != "ueb1" {
		t.Errorf("Get() after reopen = %q, %v", got, err)
	}
}

func TestMemoryKeys(t *testing.T) {
	m := NewMemory()
	m.Set("b", "2")
	m.Set("a", "1")

	if diff := cmp.Diff([]string{"a", "b"}, m.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}
