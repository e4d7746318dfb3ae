package services_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/cashclaim/internal/apperrors"
	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// memStore is an in-memory ledger, project and user store with transactional staging:
// writes made inside a memTx become visible to others only on Commit. Reads inside a
// memTx see everything committed at the moment of the read, like READ COMMITTED.
type memStore struct {
	mu          sync.Mutex
	nextID      int64
	users       map[string]domain.User
	projects    []domain.Project
	entries     []domain.LedgerEntry
	walletLocks map[string]*sync.Mutex

	// failSaveEntryOn makes the n-th SaveEntryInTx call (1-based) fail.
	failSaveEntryOn int
	saveEntryCalls  int
}

type memTx struct {
	pgx.Tx
	entries  []domain.LedgerEntry
	projects []domain.Project
	users    []domain.User
	held     []*sync.Mutex
	done     bool
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[string]domain.User{},
		walletLocks: map[string]*sync.Mutex{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

// --- seeding helpers ---

func (s *memStore) seedUser(name string) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := domain.User{UserID: s.id(), Name: name, CreatedAt: time.Now()}
	s.users[name] = u
	s.projects = append(s.projects, domain.Project{ProjectID: s.id(), UserName: name, Name: domain.DefaultProjectName})
	return u
}

// seedLegacyUser adds a user without the default project, as rows created before it existed.
func (s *memStore) seedLegacyUser(name string) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := domain.User{UserID: s.id(), Name: name, CreatedAt: time.Now()}
	s.users[name] = u
	return u
}

func (s *memStore) seedProject(userName, name string) domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := domain.Project{ProjectID: s.id(), UserName: userName, Name: name}
	s.projects = append(s.projects, p)
	return p
}

func (s *memStore) seedEntry(userName, projectName string, t domain.EntryType, amount int64) int64 {
	p, err := s.FindProjectByName(context.Background(), userName, projectName)
	if err != nil {
		panic(err)
	}
	id, err := s.SaveEntry(context.Background(), domain.LedgerEntry{
		Date: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), Description: "seed",
		Amount: amount, Type: t, UserName: userName, ProjectID: p.ProjectID,
	})
	if err != nil {
		panic(err)
	}
	return id
}

func (s *memStore) entryCount(userName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.entries {
		if e.UserName == userName {
			n++
		}
	}
	return n
}

func (s *memStore) balance(userName, projectName string) int64 {
	filter := domain.LedgerFilter{UserName: &userName}
	if projectName != "" {
		p, err := s.FindProjectByName(context.Background(), userName, projectName)
		if err != nil {
			panic(err)
		}
		filter.ProjectID = &p.ProjectID
	}
	t, _ := s.SumTotals(context.Background(), filter)
	return t.Net()
}

// --- transactions ---

func (s *memStore) Begin(ctx context.Context) (pgx.Tx, error) { return &memTx{}, nil }

func (s *memStore) BeginReadCommitted(ctx context.Context) (pgx.Tx, error) { return &memTx{}, nil }

func (s *memStore) Commit(ctx context.Context, tx pgx.Tx) error {
	mt := tx.(*memTx)
	if mt.done {
		return pgx.ErrTxClosed
	}
	s.mu.Lock()
	s.entries = append(s.entries, mt.entries...)
	s.projects = append(s.projects, mt.projects...)
	for _, u := range mt.users {
		s.users[u.Name] = u
	}
	s.mu.Unlock()
	mt.finish()
	return nil
}

func (s *memStore) Rollback(ctx context.Context, tx pgx.Tx) error {
	mt := tx.(*memTx)
	if mt.done {
		return nil
	}
	mt.finish()
	return nil
}

func (t *memTx) finish() {
	t.done = true
	for _, l := range t.held {
		l.Unlock()
	}
	t.held = nil
}

// --- ledger ---

func matches(e domain.LedgerEntry, f domain.LedgerFilter) bool {
	if f.UserName != nil && e.UserName != *f.UserName {
		return false
	}
	if f.ProjectID != nil && e.ProjectID != *f.ProjectID {
		return false
	}
	if f.Type != nil && e.Type != *f.Type {
		return false
	}
	if f.Month != nil {
		start, end := f.Month.Range()
		if e.Date.Before(start) || !e.Date.Before(end) {
			return false
		}
	}
	return true
}

func sum(entries []domain.LedgerEntry, f domain.LedgerFilter) domain.Totals {
	var t domain.Totals
	for _, e := range entries {
		if !matches(e, f) {
			continue
		}
		if e.Type == domain.Income {
			t.Income += e.Amount
		} else {
			t.Expense += e.Amount
		}
	}
	return t
}

func (s *memStore) FindEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.EntryID == entryID {
			found := e
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memStore) SumTotals(ctx context.Context, filter domain.LedgerFilter) (domain.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sum(s.entries, filter), nil
}

func (s *memStore) ListEntries(ctx context.Context, filter domain.LedgerFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.LedgerEntry
	for _, e := range s.entries {
		if matches(e, filter) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].EntryID > out[j].EntryID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil, nil
}

func (s *memStore) SaveEntry(ctx context.Context, entry domain.LedgerEntry) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.EntryID = s.id()
	entry.CreatedAt = time.Now()
	s.entries = append(s.entries, entry)
	return entry.EntryID, nil
}

func (s *memStore) DeleteEntry(ctx context.Context, entryID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.EntryID == entryID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *memStore) LockWalletInTx(ctx context.Context, tx pgx.Tx, userName string) error {
	s.mu.Lock()
	l, ok := s.walletLocks[userName]
	if !ok {
		l = &sync.Mutex{}
		s.walletLocks[userName] = l
	}
	s.mu.Unlock()

	l.Lock()
	mt := tx.(*memTx)
	mt.held = append(mt.held, l)
	return nil
}

func (s *memStore) SumTotalsInTx(ctx context.Context, tx pgx.Tx, filter domain.LedgerFilter) (domain.Totals, error) {
	mt := tx.(*memTx)
	s.mu.Lock()
	defer s.mu.Unlock()
	committed := sum(s.entries, filter)
	staged := sum(mt.entries, filter)
	return domain.Totals{Income: committed.Income + staged.Income, Expense: committed.Expense + staged.Expense}, nil
}

func (s *memStore) SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (int64, error) {
	mt := tx.(*memTx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveEntryCalls++
	if s.failSaveEntryOn > 0 && s.saveEntryCalls == s.failSaveEntryOn {
		return 0, apperrors.NewAppError(500, "failed to insert entry", errors.New("disk full"))
	}
	entry.EntryID = s.id()
	entry.CreatedAt = time.Now()
	mt.entries = append(mt.entries, entry)
	return entry.EntryID, nil
}

// --- projects ---

func findProject(projects []domain.Project, userName, name string) *domain.Project {
	for _, p := range projects {
		if p.UserName == userName && p.Name == name {
			found := p
			return &found
		}
	}
	return nil
}

func (s *memStore) FindProjectByName(ctx context.Context, userName, name string) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p := findProject(s.projects, userName, name); p != nil {
		return p, nil
	}
	return nil, apperrors.ErrNotFound
}

func (s *memStore) ListProjectsByUser(ctx context.Context, userName string) ([]domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Project
	for _, p := range s.projects {
		if p.UserName == userName {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memStore) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if findProject(s.projects, project.UserName, project.Name) != nil {
		return nil, apperrors.ErrDuplicate
	}
	project.ProjectID = s.id()
	s.projects = append(s.projects, project)
	return &project, nil
}

func (s *memStore) EnsureProject(ctx context.Context, userName, name, description string) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p := findProject(s.projects, userName, name); p != nil {
		return p, nil
	}
	p := domain.Project{ProjectID: s.id(), UserName: userName, Name: name, Description: description}
	s.projects = append(s.projects, p)
	return &p, nil
}

func (s *memStore) FindProjectByNameInTx(ctx context.Context, tx pgx.Tx, userName, name string) (*domain.Project, error) {
	mt := tx.(*memTx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if p := findProject(s.projects, userName, name); p != nil {
		return p, nil
	}
	if p := findProject(mt.projects, userName, name); p != nil {
		return p, nil
	}
	return nil, apperrors.ErrNotFound
}

func (s *memStore) EnsureProjectInTx(ctx context.Context, tx pgx.Tx, userName, name, description string) (*domain.Project, error) {
	if p, err := s.FindProjectByNameInTx(ctx, tx, userName, name); err == nil {
		return p, nil
	}
	mt := tx.(*memTx)
	s.mu.Lock()
	defer s.mu.Unlock()
	p := domain.Project{ProjectID: s.id(), UserName: userName, Name: name, Description: description}
	mt.projects = append(mt.projects, p)
	return &p, nil
}

// --- users ---

func (s *memStore) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.UserID == userID {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memStore) FindUserByName(ctx context.Context, name string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[name]; ok {
		return &u, nil
	}
	return nil, apperrors.ErrNotFound
}

func (s *memStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) UpdateAccessCode(ctx context.Context, userID int64, accessCodeHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, u := range s.users {
		if u.UserID == userID {
			u.AccessCodeHash = accessCodeHash
			s.users[name] = u
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *memStore) DeleteUser(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, u := range s.users {
		if u.UserID == userID {
			delete(s.users, name)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *memStore) SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.User) (*domain.User, error) {
	mt := tx.(*memTx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Name]; ok {
		return nil, apperrors.ErrDuplicate
	}
	for _, u := range mt.users {
		if u.Name == user.Name {
			return nil, apperrors.ErrDuplicate
		}
	}
	user.UserID = s.id()
	user.CreatedAt = time.Now()
	mt.users = append(mt.users, user)
	return &user, nil
}

func (s *memStore) FindUserByNameInTx(ctx context.Context, tx pgx.Tx, name string) (*domain.User, error) {
	mt := tx.(*memTx)
	if u, err := s.FindUserByName(ctx, name); err == nil {
		return u, nil
	}
	for _, u := range mt.users {
		if u.Name == name {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}
