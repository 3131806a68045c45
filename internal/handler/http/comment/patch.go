package comment

import (
	"encoding/json"
	"net/http"

	"news-api/internal/handler/http/httperr"
	"news-api/internal/handler/http/pathutil"
	"news-api/internal/handler/http/respond"
	comUC "news-api/internal/usecase/comment"
)

// PatchHandler applies a vote delta to a comment. Unlike articles, comment
// votes may go negative.
type PatchHandler struct{ Svc *comUC.Service }

func (h PatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("comment_id"))
	if err != nil {
		respond.Msg(w, http.StatusBadRequest, httperr.MsgBadRequest)
		return
	}

	var req struct {
		IncVotes *int `json:"inc_votes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IncVotes == nil {
		respond.Msg(w, http.StatusBadRequest, httperr.MsgBadRequest)
		return
	}

	updated, err := h.Svc.UpdateVotes(r.Context(), id, *req.IncVotes)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]DTO{"comment": toDTO(updated)})
}
