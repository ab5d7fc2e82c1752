// internal/controller/campaign_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/campaigntrack/internal/service"
)

type CampaignController struct {
	CampaignService *service.CampaignService
}

// ListCampaigns returns the campaign collection as a bare JSON array.
// Optional query parameters: search (case-insensitive substring of
// name or client) and status (exact match). Without them the full
// sequence comes back in insertion order.
func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("status")

	campaigns, err := c.CampaignService.ListCampaigns(r.Context(), search, status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, campaigns)
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name      string `json:"name"`
		Client    string `json:"client"`
		StartDate string `json:"startDate"`
		Status    string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	campaign, err := c.CampaignService.CreateCampaign(r.Context(), body.Name, body.Client, body.StartDate, body.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Campaign added successfully",
		"campaign": campaign,
	})
}

func (c *CampaignController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Campaign not found")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	// A missing or malformed body reads as an absent status; the
	// service still reports an unknown id before the missing status.
	_ = json.NewDecoder(r.Body).Decode(&body)

	campaign, err := c.CampaignService.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Campaign status updated",
		"campaign": campaign,
	})
}

func (c *CampaignController) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Campaign not found")
		return
	}

	if err := c.CampaignService.DeleteCampaign(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Campaign deleted successfully",
	})
}

func (c *CampaignController) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := c.CampaignService.Summarize(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// campaignID parses the {id} path parameter. A non-numeric id can
// never match a record, so callers treat a parse failure as not found.
func campaignID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
