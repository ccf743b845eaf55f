package kv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Requirement: both media honor the same get/set/remove contract, with
// ErrKeyNotFound for absent keys.
func TestStoreContract(t *testing.T) {
	stores := []struct {
		name string
		make func(t *testing.T) Store
	}{
		{
			name: "memory",
			make: func(t *testing.T) Store { return NewMemoryStore() },
		},
		{
			name: "file",
			make: func(t *testing.T) Store {
				s, err := NewFileStore(filepath.Join(t.TempDir(), "store.json"))
				if err != nil {
					t.Fatalf("NewFileStore() error = %v", err)
				}
				return s
			},
		},
	}

	for _, impl := range stores {
		impl := impl
		t.Run(impl.name, func(t *testing.T) {
			store := impl.make(t)

			if _, err := store.Get("missing"); !errors.Is(err, ErrKeyNotFound) {
				t.Errorf("Get(missing) error = %v, want %v", err, ErrKeyNotFound)
			}

			if err := store.Set("users", `[]`); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			value, err := store.Get("users")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if value != `[]` {
				t.Errorf("Get() = %q, want %q", value, `[]`)
			}

			if err := store.Set("users", `[{"id":1}]`); err != nil {
				t.Fatalf("Set() overwrite error = %v", err)
			}
			if value, _ := store.Get("users"); value != `[{"id":1}]` {
				t.Errorf("Get() after overwrite = %q", value)
			}

			if err := store.Delete("users"); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, err := store.Get("users"); !errors.Is(err, ErrKeyNotFound) {
				t.Errorf("Get() after delete error = %v, want %v", err, ErrKeyNotFound)
			}

			// Deleting an absent key is not an error.
			if err := store.Delete("users"); err != nil {
				t.Errorf("Delete(absent) error = %v", err)
			}
		})
	}
}

// Requirement: file-backed values survive a close and reopen.
func TestFileStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	first, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	if err := first.Set("currentSession", `{"activeUserId":42}`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	second, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() reopen error = %v", err)
	}
	value, err := second.Get("currentSession")
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if value != `{"activeUserId":42}` {
		t.Errorf("Get() after reopen = %q", value)
	}
}

// Requirement: an unreadable file degrades to an empty store instead
// of failing construction.
func TestFileStore_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	if _, err := store.Get("users"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() on recovered store error = %v, want %v", err, ErrKeyNotFound)
	}
	if err := store.Set("users", `[]`); err != nil {
		t.Errorf("Set() on recovered store error = %v", err)
	}
}

// Requirement: Len reflects the number of stored keys.
func TestMemoryStore_Len(t *testing.T) {
	store := NewMemoryStore()

	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
	_ = store.Set("a", "1")
	_ = store.Set("b", "2")
	if store.Len() != 2 {
		t.Errorf("Len() = %d, want 2", store.Len())
	}
	_ = store.Delete("a")
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}
