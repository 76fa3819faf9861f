package handlers

import (
	"net/http"
	"strings"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/delivery/http/dto/request"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/delivery/http/dto/response"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase"
	reportdto "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/dto/report"
)

type OrderHandler struct {
	orders    usecase.OrderUsecase
	validator *requestValidator
}

func NewOrderHandler(orders usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orders: orders, validator: newRequestValidator()}
}

func (h *OrderHandler) handleList(w http.ResponseWriter, r *http.Request) {
	locationID, err := optionalUint(r, "location")
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	page, err := optionalInt(r, "page")
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	limit, err := optionalInt(r, "limit")
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	query := reportdto.OrdersQuery{
		LocationID: locationID,
		Statuses:   statusesParam(r),
		Month:      strings.TrimSpace(r.URL.Query().Get("month")),
	}
	if page != nil {
		query.Page = *page
	}
	if limit != nil {
		query.Limit = *limit
	}

	orders, total, err := h.orders.List(r.Context(), currentUser(r), query)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, response.Page[response.OrderResponse]{
		Items: response.FromOrders(orders),
		Total: total,
		Page:  max(query.Page, 1),
		Limit: query.Limit,
	})
}

func (h *OrderHandler) handleBulkDelete(w http.ResponseWriter, r *http.Request) {
	var req request.BulkDeleteOrdersRequest
	if !h.validator.decode(w, r, &req) {
		return
	}

	deleted, err := h.orders.BulkDelete(r.Context(), req.IDs)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, response.DeletedResponse{Deleted: deleted})
}
