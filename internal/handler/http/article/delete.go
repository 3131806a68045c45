package article

import (
	"net/http"

	"news-api/internal/handler/http/httperr"
	"news-api/internal/handler/http/pathutil"
	"news-api/internal/handler/http/respond"
	artUC "news-api/internal/usecase/article"
)

// DeleteHandler removes an article. The store's cascade removes its comments.
// Deleting an absent article still yields 204.
type DeleteHandler struct{ Svc *artUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("article_id"))
	if err != nil {
		respond.Msg(w, http.StatusBadRequest, httperr.MsgBadRequest)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		httperr.Write(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
