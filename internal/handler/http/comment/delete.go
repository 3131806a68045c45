package comment

import (
	"net/http"

	"news-api/internal/handler/http/httperr"
	"news-api/internal/handler/http/pathutil"
	"news-api/internal/handler/http/respond"
	comUC "news-api/internal/usecase/comment"
)

// DeleteHandler removes a comment. Deleting a missing comment yields 404.
type DeleteHandler struct{ Svc *comUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("comment_id"))
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
