package comment

import (
	"net/http"

	"news-api/internal/common/pagination"
	"news-api/internal/handler/http/httperr"
	"news-api/internal/handler/http/pathutil"
	"news-api/internal/handler/http/respond"
	artUC "news-api/internal/usecase/article"
	comUC "news-api/internal/usecase/comment"
)

// ListHandler serves an article's comments, newest first, paginated. The
// article is fetched first so a missing article yields 404 while an existing
// article with no comments yields an empty collection.
type ListHandler struct {
	Svc           *comUC.Service
	Articles      *artUC.Service
	PaginationCfg pagination.Config
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.ParseID(r.PathValue("article_id"))
	if err != nil {
		respond.Msg(w, http.StatusBadRequest, httperr.MsgBadRequest)
		return
	}

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.Msg(w, http.StatusBadRequest, httperr.MsgBadRequest)
		return
	}

	if _, err := h.Articles.Get(r.Context(), articleID); err != nil {
		httperr.Write(w, r, err)
		return
	}

	comments, err := h.Svc.ListByArticle(r.Context(), articleID, params.Page, params.Limit)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	dtos := make([]DTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toDTO(c))
	}

	respond.JSON(w, http.StatusOK, map[string][]DTO{"comments": dtos})
}
