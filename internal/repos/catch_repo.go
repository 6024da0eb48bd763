package repos

import (
	"magnetlog/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CatchRepo struct{ DB *sqlx.DB }

func NewCatchRepo(db *sqlx.DB) *CatchRepo { return &CatchRepo{DB: db} }

func (r *CatchRepo) Insert(ct *domain.Catch) error {
	_, err := r.DB.Exec(`INSERT INTO catches(id,date,country,city,created_by) VALUES(?,?,?,?,?)`,
		ct.ID, ct.Date, ct.Country, ct.City, ct.CreatedBy)
	return err
}

// All returns every catch in insertion order.
func (r *CatchRepo) All() ([]domain.Catch, error) {
	catches := []domain.Catch{}
	err := r.DB.Select(&catches, `SELECT id,date,country,city,created_by,created_at FROM catches ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	return catches, nil
}

func (r *CatchRepo) ByID(id string) (*domain.Catch, error) {
	var ct domain.Catch
	err := r.DB.Get(&ct, `SELECT id,date,country,city,created_by,created_at FROM catches WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

// Replace overwrites every mutable field of the catch keyed by id, including
// created_by. A replace against an id that no longer exists updates zero rows
// and reports no error.
func (r *CatchRepo) Replace(ct *domain.Catch) error {
	_, err := r.DB.Exec(`UPDATE catches SET date=?,country=?,city=?,created_by=? WHERE id=?`,
		ct.Date, ct.Country, ct.City, ct.CreatedBy, ct.ID)
	return err
}
