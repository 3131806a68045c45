package article

import (
	"encoding/json"
	"net/http"

	"news-api/internal/handler/http/httperr"
	"news-api/internal/handler/http/respond"
	artUC "news-api/internal/usecase/article"
)

// CreateHandler inserts a new article.
type CreateHandler struct{ Svc *artUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Author   string `json:"author"`
		Title    string `json:"title"`
		Body     string `json:"body"`
		Topic    string `json:"topic"`
		ImageURL string `json:"article_img_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Msg(w, http.StatusBadRequest, httperr.MsgBadRequest)
		return
	}

	created, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Author:   req.Author,
		Title:    req.Title,
		Body:     req.Body,
		Topic:    req.Topic,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]DTO{"article": toDTO(created, true)})
}
