package server

import (
	"net/http"

	"distrohub/logger"
)

// Read side of the dashboard content tables. The admin dashboard owns the
// write side; this service only serves the public pages.

func (h *APIHandler) respondContent(w http.ResponseWriter, data interface{}, err error) {
	if err != nil {
		logger.Error("failed to load content", logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "failed to load content")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// GetPricingHandler returns pricing categories with their plans.
func (h *APIHandler) GetPricingHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.contentRepo.GetPricingCategories()
	h.respondContent(w, data, err)
}

// GetServicesHandler returns the core services.
func (h *APIHandler) GetServicesHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.contentRepo.GetServices()
	h.respondContent(w, data, err)
}

// GetAdditionalServicesHandler returns the priced add-on offerings.
func (h *APIHandler) GetAdditionalServicesHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.contentRepo.GetAdditionalServices()
	h.respondContent(w, data, err)
}

// GetStorePartnersHandler returns the distribution store partners.
func (h *APIHandler) GetStorePartnersHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.contentRepo.GetStorePartners()
	h.respondContent(w, data, err)
}

// GetDistributionStepsHandler returns the "how it works" steps.
func (h *APIHandler) GetDistributionStepsHandler(w http.ResponseWriter, r *http.Request) {
	data, err := h.contentRepo.GetDistributionSteps()
	h.respondContent(w, data, err)
}
