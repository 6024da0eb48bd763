package repos

import (
	"magnetlog/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CountryRepo struct{ DB *sqlx.DB }

func NewCountryRepo(db *sqlx.DB) *CountryRepo { return &CountryRepo{DB: db} }

func (r *CountryRepo) All() ([]domain.Country, error) {
	countries := []domain.Country{}
	err := r.DB.Select(&countries, `SELECT code,name FROM countries ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return countries, nil
}
