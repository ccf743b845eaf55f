package localstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/adelacruz/popx/core"
	"github.com/adelacruz/popx/pkg/kv"
)

func (a *Adapter) loadUsers() ([]core.User, error) {
	raw, err := a.store.Get(usersKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return []core.User{}, nil
		}
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	var users []core.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		// Malformed stored state degrades to an empty collection.
		a.logger.Warn("malformed users value, treating as empty", zap.Error(err))
		return []core.User{}, nil
	}
	return users, nil
}

func (a *Adapter) saveUsers(users []core.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return a.store.Set(usersKey, string(data))
}

func (a *Adapter) ListUsers() ([]core.User, error) {
	return a.loadUsers()
}

func (a *Adapter) GetUserByEmail(email string) (*core.User, error) {
	users, err := a.loadUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].EmailAddress == email {
			u := users[i]
			return &u, nil
		}
	}
	return nil, core.ErrUserNotFound
}

func (a *Adapter) GetUserByCredentials(email, password string) (*core.User, error) {
	users, err := a.loadUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].EmailAddress == email && users[i].Password == password {
			u := users[i]
			return &u, nil
		}
	}
	return nil, core.ErrUserNotFound
}

func (a *Adapter) AppendUser(u *core.User) error {
	users, err := a.loadUsers()
	if err != nil {
		return err
	}
	users = append(users, *u)
	return a.saveUsers(users)
}

func (a *Adapter) UpdateUserByID(id int64, update core.UserUpdate) (*core.User, error) {
	users, err := a.loadUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID != id {
			continue
		}
		if update.ProfilePicture != nil {
			users[i].ProfilePicture = *update.ProfilePicture
		}
		if err := a.saveUsers(users); err != nil {
			return nil, err
		}
		u := users[i]
		return &u, nil
	}
	return nil, core.ErrUserNotFound
}
