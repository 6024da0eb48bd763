package handlers

import (
	"magnetlog/internal/repos"
	"magnetlog/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	HomeHandler    *HomeHandler
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	CatchHandler   *CatchHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService) *Deps {
	catchRepo := repos.NewCatchRepo(db)
	countryRepo := repos.NewCountryRepo(db)

	catchSvc := services.NewCatchService(catchRepo)

	return &Deps{
		HomeHandler:    &HomeHandler{Countries: countryRepo},
		AuthHandler:    &AuthHandler{Auth: auth},
		ProfileHandler: &ProfileHandler{Auth: auth},
		CatchHandler:   &CatchHandler{Catches: catchSvc, Countries: countryRepo},
	}
}
