package article

import (
	"log/slog"
	"net/http"

	"news-api/internal/common/pagination"
	artUC "news-api/internal/usecase/article"
)

// Register registers all article HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /api/articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("POST /api/articles", CreateHandler{Svc: svc})
	mux.Handle("GET /api/articles/{article_id}", GetHandler{Svc: svc})
	mux.Handle("PATCH /api/articles/{article_id}", PatchHandler{Svc: svc})
	mux.Handle("DELETE /api/articles/{article_id}", DeleteHandler{Svc: svc})
}
