// Package topic provides HTTP handlers for listing and creating topics.
package topic

import (
	"encoding/json"
	"net/http"

	"news-api/internal/domain/entity"
	"news-api/internal/handler/http/httperr"
	"news-api/internal/handler/http/respond"
	topicUC "news-api/internal/usecase/topic"
)

// DTO represents the JSON structure for topic data transfer.
type DTO struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func toDTO(t *entity.Topic) DTO {
	return DTO{Slug: t.Slug, Description: t.Description}
}

// Register registers all topic HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *topicUC.Service) {
	mux.Handle("GET /api/topics", ListHandler{Svc: svc})
	mux.Handle("POST /api/topics", CreateHandler{Svc: svc})
}

// ListHandler serves all topics.
type ListHandler struct{ Svc *topicUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	topics, err := h.Svc.List(r.Context())
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	dtos := make([]DTO, 0, len(topics))
	for _, t := range topics {
		dtos = append(dtos, toDTO(t))
	}

	respond.JSON(w, http.StatusOK, map[string][]DTO{"topics": dtos})
}

// CreateHandler inserts a new topic. A duplicate slug is rejected as a bad
// request by the error classifier.
type CreateHandler struct{ Svc *topicUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Msg(w, http.StatusBadRequest, httperr.MsgBadRequest)
		return
	}

	created, err := h.Svc.Create(r.Context(), topicUC.CreateInput{
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]DTO{"topic": toDTO(created)})
}
