// Package store holds the account collection served by the simulated
// backend. The in-memory slice is the source of truth; after every mutation
// the whole collection is written back to its slot.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/slot"
	"github.com/dmitrijs2005/gophaccounts/internal/models"
)

// Store is the ordered account collection.
type Store struct {
	mu       sync.Mutex
	slot     slot.Slot
	accounts []models.Account
}

// Open loads the collection from s once. An absent or null slot value yields
// an empty store.
func Open(ctx context.Context, s slot.Slot) (*Store, error) {
	data, err := s.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	var accounts []models.Account
	if len(data) > 0 {
		if err := json.Unmarshal(data, &accounts); err != nil {
			return nil, fmt.Errorf("decode accounts: %w", err)
		}
	}

	return &Store{slot: s, accounts: accounts}, nil
}

// List returns a copy of all accounts in insertion order.
func (s *Store) List() []models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Get returns the account with the given id, or false.
func (s *Store) Get(id int) (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Account{}, false
	}
	return s.accounts[i], true
}

// FindByExternalID returns the first account linked to the given identity.
func (s *Store) FindByExternalID(externalID string) (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.ExternalID == externalID {
			return a, true
		}
	}
	return models.Account{}, false
}

// Create assigns the next id to a, appends it and persists the collection.
// Any id or token carried by a is ignored.
func (s *Store) Create(ctx context.Context, a models.Account) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextID()
	a.Token = ""

	next := append(cloneAccounts(s.accounts), a)
	if err := s.persist(ctx, next); err != nil {
		return models.Account{}, err
	}
	s.accounts = next
	return a, nil
}

// Update merges p onto the account with the given id and persists. It
// reports false, leaving the store untouched, when no such account exists.
func (s *Store) Update(ctx context.Context, id int, p models.AccountParams) (models.Account, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Account{}, false, nil
	}

	next := cloneAccounts(s.accounts)
	next[i] = next[i].Merge(p)
	if err := s.persist(ctx, next); err != nil {
		return models.Account{}, true, err
	}
	s.accounts = next
	return next[i], true, nil
}

// Delete removes the account with the given id and persists. Deleting a
// missing id still rewrites the slot with the unchanged collection.
func (s *Store) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		if a.ID != id {
			next = append(next, a)
		}
	}
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.accounts = next
	return nil
}

func (s *Store) indexOf(id int) int {
	for i, a := range s.accounts {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) nextID() int {
	maxID := 0
	for _, a := range s.accounts {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	return maxID + 1
}

func (s *Store) persist(ctx context.Context, accounts []models.Account) error {
	if accounts == nil {
		accounts = []models.Account{}
	}
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := s.slot.Save(ctx, data); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}
	return nil
}

func cloneAccounts(in []models.Account) []models.Account {
	out := make([]models.Account, len(in), len(in)+1)
	copy(out, in)
	return out
}
