package article

import (
	"net/http"

	"news-api/internal/handler/http/httperr"
	"news-api/internal/handler/http/pathutil"
	"news-api/internal/handler/http/respond"
	artUC "news-api/internal/usecase/article"
)

// GetHandler serves a single article with its comment count.
type GetHandler struct{ Svc *artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("article_id"))
	if err != nil {
		respond.Msg(w, http.StatusBadRequest, httperr.MsgBadRequest)
		return
	}

	article, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]DTO{"article": toDTO(article, true)})
}
