package article

import (
	"log/slog"
	"net/http"

	"news-api/internal/common/pagination"
	"news-api/internal/handler/http/httperr"
	"news-api/internal/handler/http/requestid"
	"news-api/internal/handler/http/respond"
	artUC "news-api/internal/usecase/article"
)

// ListHandler serves the sorted, filtered, paginated article collection.
type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// listResponse pairs the page of articles with the count of all rows
// matching the topic filter, so clients can build pagination controls.
type listResponse struct {
	Articles   []DTO `json:"articles"`
	TotalCount int64 `json:"total_count"`
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("invalid pagination parameters",
				slog.String("request_id", requestid.FromContext(ctx)),
				slog.String("error", err.Error()))
		}
		respond.Msg(w, http.StatusBadRequest, httperr.MsgBadRequest)
		return
	}

	query := r.URL.Query()
	result, err := h.Svc.List(ctx, artUC.ListInput{
		SortBy: query.Get("sort_by"),
		Order:  query.Get("order"),
		Topic:  query.Get("topic"),
		Page:   params.Page,
		Limit:  params.Limit,
	})
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Articles))
	for i := range result.Articles {
		dtos = append(dtos, toDTO(&result.Articles[i], false))
	}

	respond.JSON(w, http.StatusOK, listResponse{
		Articles:   dtos,
		TotalCount: result.TotalCount,
	})
}
