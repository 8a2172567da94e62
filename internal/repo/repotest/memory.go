// Package repotest 提供内存版仓储，条件写语义与 SQL 实现一致，供 service / router 测试使用
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"vacation-api/internal/domain"
)

type Store struct {
	mu        sync.Mutex
	now       func() time.Time
	nextUser  int64
	nextVac   int64
	users     map[int64]domain.User
	vacations map[int64]domain.VacationRequest
}

func NewStore() *Store {
	return &Store{
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Second) },
		users:     map[int64]domain.User{},
		vacations: map[int64]domain.VacationRequest{},
	}
}

func (s *Store) Users() *Users         { return &Users{s: s} }
func (s *Store) Vacations() *Vacations { return &Vacations{s: s} }

type Users struct{ s *Store }

func (r *Users) Create(_ context.Context, u *domain.User) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, x := range s.users {
		if x.Email == u.Email || x.EmployeeCode == u.EmployeeCode {
			return domain.ErrDuplicateUser
		}
	}
	s.nextUser++
	u.ID = s.nextUser
	u.CreatedAt, u.UpdatedAt = s.now(), s.now()
	s.users[u.ID] = *u
	return nil
}

func (r *Users) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *Users) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *Users) List(_ context.Context) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Users) Update(_ context.Context, u *domain.User) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.users[u.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	for id, x := range s.users {
		if id != u.ID && x.Email == u.Email {
			return domain.ErrDuplicateUser
		}
	}
	cur.Email, cur.Name, cur.Role = u.Email, u.Name, u.Role
	if u.PasswordHash != "" {
		cur.PasswordHash = u.PasswordHash
	}
	cur.UpdatedAt = s.now()
	s.users[u.ID] = cur
	return nil
}

func (r *Users) Delete(_ context.Context, id int64) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, id)
	for vid, v := range s.vacations {
		switch {
		case v.UserID == id:
			delete(s.vacations, vid)
		case v.AuthorizedBy != nil && *v.AuthorizedBy == id:
			v.AuthorizedBy = nil
			s.vacations[vid] = v
		}
	}
	return nil
}

type Vacations struct{ s *Store }

func (r *Vacations) FindByID(_ context.Context, id int64) (*domain.VacationRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.vacations[id]
	if !ok {
		return nil, domain.ErrVacationNotFound
	}
	return &v, nil
}

func (r *Vacations) Insert(_ context.Context, v *domain.VacationRequest) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextVac++
	v.ID = s.nextVac
	v.CreatedAt, v.UpdatedAt = s.now(), s.now()
	cp := *v
	cp.User = nil
	s.vacations[v.ID] = cp
	return nil
}

func (r *Vacations) UpdateStatusIf(_ context.Context, id int64, expected, next domain.Status, authorizerID int64) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vacations[id]
	if !ok || v.Status != expected {
		return 0, nil
	}
	v.Status = next
	v.AuthorizedBy = &authorizerID
	v.UpdatedAt = s.now()
	s.vacations[id] = v
	return 1, nil
}

func (r *Vacations) DeleteIfStatus(_ context.Context, id int64, expected domain.Status) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vacations[id]
	if !ok || v.Status != expected {
		return 0, nil
	}
	delete(s.vacations, id)
	return 1, nil
}

func (r *Vacations) ListByStatus(_ context.Context, status domain.Status) ([]domain.VacationRequest, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.VacationRequest
	for _, v := range s.vacations {
		if v.Status != status {
			continue
		}
		if u, ok := s.users[v.UserID]; ok {
			u.PasswordHash = ""
			v.User = &u
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From.Equal(out[j].From) {
			return out[i].ID < out[j].ID
		}
		return out[i].From.Before(out[j].From)
	})
	return out, nil
}

func (r *Vacations) ListByOwner(_ context.Context, userID int64) ([]domain.VacationRequest, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.VacationRequest
	for _, v := range s.vacations {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From.Equal(out[j].From) {
			return out[i].ID > out[j].ID
		}
		return out[i].From.After(out[j].From)
	})
	return out, nil
}

var (
	_ domain.UserRepository     = (*Users)(nil)
	_ domain.VacationRepository = (*Vacations)(nil)
)
