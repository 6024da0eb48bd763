package repos

import (
	"magnetlog/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

// ByEmail matches the stored email exactly, byte for byte.
func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,created_at FROM users WHERE email=?`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ByEmailFold matches case-insensitively; used for the duplicate check at
// registration and for session lookups.
func (r *UserRepo) ByEmailFold(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,created_at FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u *domain.User) error {
	_, err := r.DB.Exec(`INSERT INTO users(id,email,name,password_hash) VALUES(?,?,?,?)`,
		u.ID, u.Email, u.Name, u.Hash)
	return err
}

// BindSession attaches an email to a sid, creating the session row if needed.
func (r *UserRepo) BindSession(sid, email string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,email,last_seen)
                          VALUES(?,?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET email=excluded.email,last_seen=CURRENT_TIMESTAMP`, sid, email)
	return err
}

// SessionEmail returns the email bound to a sid, or "" for anonymous or
// unknown sessions.
func (r *UserRepo) SessionEmail(sid string) (string, error) {
	var email *string
	err := r.DB.Get(&email, `SELECT email FROM sessions WHERE id=?`, sid)
	if err != nil {
		return "", err
	}
	if email == nil {
		return "", nil
	}
	return *email, nil
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET email=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
