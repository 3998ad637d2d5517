package handler

import (
	"net/http"

	"leadgen_backend/internal/pricing/service"
	"leadgen_backend/internal/pricing/transport"
	"leadgen_backend/platform/httpkit"
	"leadgen_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterPublicRoutes mounts the valuation endpoint.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/valuation", h.Estimate)
}

// RegisterAdminRoutes mounts the ZIP override endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/ppsf", h.ListRates)
	rg.GET("/ppsf/:zip", h.GetRate)
	rg.POST("/ppsf", h.SetRate)
	rg.POST("/ppsf/bulk", h.SetRatesBulk)
}

func (h *Handler) Estimate(c *gin.Context) {
	var req transport.ValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.Estimate(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ValuationResponse{Valuation: result})
}

func (h *Handler) ListRates(c *gin.Context) {
	merged, err := h.svc.MergedSnapshot(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ZipRatesResponse{Ppsf: merged})
}

func (h *Handler) GetRate(c *gin.Context) {
	zip := c.Param("zip")

	rate, ok, err := h.svc.GetOverride(c.Request.Context(), zip)
	if httpkit.HandleError(c, err) {
		return
	}
	if !ok {
		httpkit.Error(c, http.StatusNotFound, "no override for zip", nil)
		return
	}

	httpkit.OK(c, transport.ZipRateResponse{Zip: zip, Ppsf: rate})
}

func (h *Handler) SetRate(c *gin.Context) {
	var req transport.SetZipRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	if err := h.svc.SetOverride(c.Request.Context(), req.Zip, req.Ppsf); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"zip": req.Zip, "ppsf": req.Ppsf})
}

func (h *Handler) SetRatesBulk(c *gin.Context) {
	var entries []transport.BulkZipRateEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	count, err := h.svc.SetOverridesBulk(c.Request.Context(), entries)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.BulkZipRatesResponse{Count: count})
}
