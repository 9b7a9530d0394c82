package handler

import (
	"net/http"

	"github.com/vfg2006/outreach-crm-api/internal/domain"
	"github.com/vfg2006/outreach-crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/outreach-crm-api/pkg/log"
)

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser()
		if err != nil {
			handleAuthError(w, r, err, "Erro ao listar usuários")
			return
		}

		if users == nil {
			users = []*domain.User{}
		}

		writeJSON(w, r, http.StatusOK, users)
	}
}

// CreateUser cadastra um novo usuário. Rota restrita a administradores.
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateUserRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := service.CreateUser(&req)
		if err != nil {
			handleAuthError(w, r, err, "Erro ao criar usuário")
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"user_id":    user.ID,
			"user_email": user.Email,
		}).Info("Usuário criado")

		writeJSON(w, r, http.StatusCreated, user)
	}
}
