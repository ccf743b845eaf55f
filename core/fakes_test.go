package core

import "sync"

// FakeAccountStorage is a test-only fake implementing AccountStorage.
// It keeps records in insertion order and exposes error fields for
// behavior injection.
type FakeAccountStorage struct {
	mu      sync.RWMutex
	users   []User
	session *Session

	listErr       error
	appendErr     error
	updateErr     error
	getSessionErr error
	setSessionErr error
	clearErr      error
}

func NewFakeAccountStorage() *FakeAccountStorage {
	return &FakeAccountStorage{}
}

func (f *FakeAccountStorage) ListUsers() ([]User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	users := make([]User, len(f.users))
	copy(users, f.users)
	return users, nil
}

func (f *FakeAccountStorage) GetUserByEmail(email string) (*User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for i := range f.users {
		if f.users[i].EmailAddress == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *FakeAccountStorage) GetUserByCredentials(email, password string) (*User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for i := range f.users {
		if f.users[i].EmailAddress == email && f.users[i].Password == password {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *FakeAccountStorage) AppendUser(u *User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	f.users = append(f.users, *u)
	return nil
}

func (f *FakeAccountStorage) UpdateUserByID(id int64, update UserUpdate) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.users {
		if f.users[i].ID != id {
			continue
		}
		if update.ProfilePicture != nil {
			f.users[i].ProfilePicture = *update.ProfilePicture
		}
		u := f.users[i]
		return &u, nil
	}
	return nil, ErrUserNotFound
}

func (f *FakeAccountStorage) GetSession() (*Session, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getSessionErr != nil {
		return nil, f.getSessionErr
	}
	if f.session == nil {
		return nil, ErrNoSession
	}
	s := *f.session
	return &s, nil
}

func (f *FakeAccountStorage) SetSession(userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setSessionErr != nil {
		return f.setSessionErr
	}
	f.session = &Session{ActiveUserID: userID}
	return nil
}

func (f *FakeAccountStorage) ClearSession() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clearErr != nil {
		return f.clearErr
	}
	f.session = nil
	return nil
}
