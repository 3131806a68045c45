// Package user provides HTTP handlers for listing users and fetching a user
// by username.
package user

import (
	"net/http"

	"news-api/internal/domain/entity"
	"news-api/internal/handler/http/httperr"
	"news-api/internal/handler/http/respond"
	userUC "news-api/internal/usecase/user"
)

// DTO represents the JSON structure for user data transfer.
type DTO struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

func toDTO(u *entity.User) DTO {
	return DTO{Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL}
}

// Register registers all user HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *userUC.Service) {
	mux.Handle("GET /api/users", ListHandler{Svc: svc})
	mux.Handle("GET /api/users/{username}", GetHandler{Svc: svc})
}

// ListHandler serves all users.
type ListHandler struct{ Svc *userUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.List(r.Context())
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	dtos := make([]DTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toDTO(u))
	}

	respond.JSON(w, http.StatusOK, map[string][]DTO{"users": dtos})
}

// GetHandler serves a single user by username.
type GetHandler struct{ Svc *userUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, err := h.Svc.Get(r.Context(), r.PathValue("username"))
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]DTO{"user": toDTO(user)})
}
