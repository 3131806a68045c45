package comment

import (
	"net/http"

	"news-api/internal/common/pagination"
	artUC "news-api/internal/usecase/article"
	comUC "news-api/internal/usecase/comment"
)

// Register registers all comment HTTP handlers with the given mux. The
// article service backs the existence check on the nested collection routes.
func Register(mux *http.ServeMux, svc *comUC.Service, articles *artUC.Service, paginationCfg pagination.Config) {
	mux.Handle("GET /api/articles/{article_id}/comments", ListHandler{
		Svc:           svc,
		Articles:      articles,
		PaginationCfg: paginationCfg,
	})
	mux.Handle("POST /api/articles/{article_id}/comments", CreateHandler{Svc: svc})
	mux.Handle("PATCH /api/comments/{comment_id}", PatchHandler{Svc: svc})
	mux.Handle("DELETE /api/comments/{comment_id}", DeleteHandler{Svc: svc})
}
