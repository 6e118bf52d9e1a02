package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/cmlabs-hris/employee-manager-go/internal/domain/branch"
)

type branchRepositoryImpl struct {
	store *Store
}

func NewBranchRepository(store *Store) branch.BranchRepository {
	return store.Branches()
}

// List implements branch.BranchRepository.
func (r *branchRepositoryImpl) List(ctx context.Context) ([]branch.Branch, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, s.failure
	}

	branches := make([]branch.Branch, 0, len(s.branches))
	for _, b := range s.branches {
		branches = append(branches, b)
	}
	sort.Slice(branches, func(i, j int) bool {
		if a, b := strings.ToLower(branches[i].Name), strings.ToLower(branches[j].Name); a != b {
			return a < b
		}
		return branches[i].ID < branches[j].ID
	})
	return branches, nil
}

// GetByID implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetByID(ctx context.Context, id int64) (branch.Branch, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return branch.Branch{}, s.failure
	}
	b, ok := s.branches[id]
	if !ok {
		return branch.Branch{}, branch.ErrBranchNotFound
	}
	return b, nil
}

// Create implements branch.BranchRepository.
func (r *branchRepositoryImpl) Create(ctx context.Context, b branch.Branch) (branch.Branch, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failure != nil {
		return branch.Branch{}, s.failure
	}
	if s.branchNameTaken(b.Name, 0) {
		return branch.Branch{}, branch.ErrBranchNameExists
	}

	s.nextBranchID++
	now := s.now()
	b.ID = s.nextBranchID
	b.CreatedAt = now
	b.UpdatedAt = now
	s.branches[b.ID] = b
	return b, nil
}

// Update implements branch.BranchRepository.
func (r *branchRepositoryImpl) Update(ctx context.Context, req branch.UpdateBranchRequest) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failure != nil {
		return s.failure
	}
	b, ok := s.branches[req.ID]
	if !ok {
		return branch.ErrBranchNotFound
	}

	if req.Name != nil {
		if s.branchNameTaken(*req.Name, req.ID) {
			return branch.ErrBranchNameExists
		}
		b.Name = *req.Name
	}
	b.UpdatedAt = s.now()
	s.branches[req.ID] = b
	return nil
}

// Delete implements branch.BranchRepository.
func (r *branchRepositoryImpl) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failure != nil {
		return s.failure
	}
	if _, ok := s.branches[id]; !ok {
		return branch.ErrBranchNotFound
	}

	now := s.now()
	for eid, e := range s.employees {
		if e.BranchID != nil && *e.BranchID == id {
			e.BranchID = nil
			e.UpdatedAt = now
			s.employees[eid] = e
		}
	}
	delete(s.branches, id)
	return nil
}

func (s *Store) branchNameTaken(name string, exceptID int64) bool {
	for id, b := range s.branches {
		if id != exceptID && strings.EqualFold(b.Name, name) {
			return true
		}
	}
	return false
}
