package services

import (
	"magnetlog/internal/domain"
	"magnetlog/internal/repos"

	"github.com/google/uuid"
)

type CatchService struct {
	Catches *repos.CatchRepo
}

func NewCatchService(r *repos.CatchRepo) *CatchService { return &CatchService{Catches: r} }

func (s *CatchService) List() ([]domain.Catch, error) {
	return s.Catches.All()
}

func (s *CatchService) Get(id string) (*domain.Catch, error) {
	return s.Catches.ByID(id)
}

func (s *CatchService) Add(date, country, city, createdBy string) (*domain.Catch, error) {
	ct := &domain.Catch{
		ID:        uuid.NewString(),
		Date:      date,
		Country:   country,
		City:      city,
		CreatedBy: createdBy,
	}
	if err := s.Catches.Insert(ct); err != nil {
		return nil, err
	}
	return ct, nil
}

// Replace performs a whole-document overwrite keyed by id. Attribution is
// rewritten to editedBy; replacing a missing id is a no-op.
func (s *CatchService) Replace(id, date, country, city, editedBy string) error {
	return s.Catches.Replace(&domain.Catch{
		ID:        id,
		Date:      date,
		Country:   country,
		City:      city,
		CreatedBy: editedBy,
	})
}
