package handlers

import (
	"net/http"
	"strings"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/delivery/http/dto/response"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase"
	reportdto "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/dto/report"
)

type ReportHandler struct {
	reports usecase.ReportUsecase
}

func NewReportHandler(reports usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) handleSummary(w http.ResponseWriter, r *http.Request) {
	locationID, err := optionalUint(r, "location")
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	q := r.URL.Query()
	summary, err := h.reports.GetSummary(r.Context(), currentUser(r), reportdto.SummaryQuery{
		LocationID: locationID,
		StartMonth: strings.TrimSpace(q.Get("startMonth")),
		EndMonth:   strings.TrimSpace(q.Get("endMonth")),
	})
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, summary)
}

func (h *ReportHandler) handleMonthlyBreakdown(w http.ResponseWriter, r *http.Request) {
	locationID, err := optionalUint(r, "location")
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	year, err := optionalInt(r, "year")
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	groups, err := h.reports.GetMonthlyBreakdown(r.Context(), currentUser(r), reportdto.BreakdownQuery{
		Year:       year,
		LocationID: locationID,
		Statuses:   statusesParam(r),
	})
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, response.FromMonthGroups(groups))
}
