package comment

import (
	"encoding/json"
	"net/http"

	"news-api/internal/handler/http/httperr"
	"news-api/internal/handler/http/pathutil"
	"news-api/internal/handler/http/respond"
	comUC "news-api/internal/usecase/comment"
)

// CreateHandler adds a comment to an article. An unknown article or username
// surfaces as the store's foreign-key violation and is reported as 404.
type CreateHandler struct{ Svc *comUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.ParseID(r.PathValue("article_id"))
	if err != nil {
		respond.Msg(w, http.StatusBadRequest, httperr.MsgBadRequest)
		return
	}

	var req struct {
		Username string `json:"username"`
		Body     string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Msg(w, http.StatusBadRequest, httperr.MsgBadRequest)
		return
	}

	created, err := h.Svc.Create(r.Context(), comUC.CreateInput{
		ArticleID: articleID,
		Author:    req.Username,
		Body:      req.Body,
	})
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]DTO{"comment": toDTO(created)})
}
