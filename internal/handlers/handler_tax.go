package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/tax_liability_app/internal/apperrors"
	portssvc "github.com/SscSPs/tax_liability_app/internal/core/ports/services"
	"github.com/SscSPs/tax_liability_app/internal/dto"
	"github.com/SscSPs/tax_liability_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taxHandler handles HTTP requests related to tax computation.
type taxHandler struct {
	taxService portssvc.TaxSvcFacade
}

func newTaxHandler(ts portssvc.TaxSvcFacade) *taxHandler {
	return &taxHandler{taxService: ts}
}

// RegisterTaxRoutes registers the tax routes on an authenticated group.
func RegisterTaxRoutes(rg *gin.RouterGroup, taxService portssvc.TaxSvcFacade) {
	h := newTaxHandler(taxService)

	tax := rg.Group("/tax")
	{
		tax.POST("/calculate", h.calculateTax)
		tax.GET("/form", h.getTaxForm)
		tax.GET("/records", h.listTaxRecords)
		tax.GET("/records/latest", h.getLatestTaxRecord)
		tax.GET("/policy", h.getTaxPolicy)
	}
}

// writeTaxError maps service errors onto HTTP responses.
func writeTaxError(c *gin.Context, logger *slog.Logger, err error, failure string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid tax request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Tax request target not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPersistence):
		logger.Error("Tax record was not saved", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tax computed but the record was not saved", "details": err.Error()})
	default:
		logger.Error(failure, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failure, "details": err.Error()})
	}
}

// calculateTax godoc
// @Summary Calculate tax liability
// @Description Computes the tax liability for one of the user's bank accounts and appends a tax record. Every call appends a new record.
// @Tags tax
// @Produce json
// @Param bankAccountId query string true "Bank account ID"
// @Success 200 {object} dto.TaxCalculationResponse
// @Failure 400 {object} map[string]string "Bank account ID is required"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Error calculating tax"
// @Security BearerAuth
// @Router /tax/calculate [post]
func (h *taxHandler) calculateTax(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var query dto.BankAccountQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Missing bank account ID", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bank account ID is required"})
		return
	}

	result, err := h.taxService.ComputeTax(c.Request.Context(), userID, query.BankAccountID)
	if err != nil {
		writeTaxError(c, logger, err, "Error calculating tax")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxCalculationResponse(result))
}

// getTaxForm godoc
// @Summary Generate a pre-filled tax form
// @Description Builds a tax form for one of the user's bank accounts. Nothing is persisted.
// @Tags tax
// @Produce json
// @Param bankAccountId query string true "Bank account ID"
// @Success 200 {object} dto.TaxFormResponse
// @Failure 400 {object} map[string]string "Bank account ID is required"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User or bank account not found"
// @Failure 500 {object} map[string]string "Error generating tax form"
// @Security BearerAuth
// @Router /tax/form [get]
func (h *taxHandler) getTaxForm(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var query dto.BankAccountQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bank account ID is required"})
		return
	}

	form, err := h.taxService.BuildForm(c.Request.Context(), userID, query.BankAccountID)
	if err != nil {
		writeTaxError(c, logger, err, "Error generating tax form")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxFormResponse(form))
}

// listTaxRecords godoc
// @Summary List tax records
// @Description Lists the user's tax records for a financial year, newest first.
// @Tags tax
// @Produce json
// @Param financialYear query string false "Financial year, e.g. 2024-25 (defaults to the configured year)"
// @Success 200 {array} dto.TaxRecordResponse
// @Failure 400 {object} map[string]string "Invalid financial year"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Error listing tax records"
// @Security BearerAuth
// @Router /tax/records [get]
func (h *taxHandler) listTaxRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var query dto.TaxRecordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	records, err := h.taxService.ListTaxRecords(c.Request.Context(), userID, query.FinancialYear)
	if err != nil {
		writeTaxError(c, logger, err, "Error listing tax records")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTaxRecordResponse(records))
}

// getLatestTaxRecord godoc
// @Summary Get the latest tax record
// @Description Returns the most recently appended tax record for a financial year.
// @Tags tax
// @Produce json
// @Param financialYear query string false "Financial year, e.g. 2024-25 (defaults to the configured year)"
// @Success 200 {object} dto.TaxRecordResponse
// @Failure 400 {object} map[string]string "Invalid financial year"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No tax record"
// @Failure 500 {object} map[string]string "Error fetching tax record"
// @Security BearerAuth
// @Router /tax/records/latest [get]
func (h *taxHandler) getLatestTaxRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var query dto.TaxRecordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	record, err := h.taxService.GetLatestTaxRecord(c.Request.Context(), userID, query.FinancialYear)
	if err != nil {
		writeTaxError(c, logger, err, "Error fetching tax record")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxRecordResponse(record))
}

// getTaxPolicy godoc
// @Summary Show the tax policy
// @Description Returns the configured slab table with derived base taxes, rates and caps.
// @Tags tax
// @Produce json
// @Success 200 {object} dto.TaxPolicyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /tax/policy [get]
func (h *taxHandler) getTaxPolicy(c *gin.Context) {
	res, err := dto.ToTaxPolicyResponse(h.taxService.Policy())
	if err != nil {
		writeTaxError(c, middleware.GetLoggerFromContext(c), err, "Invalid tax policy")
		return
	}
	c.JSON(http.StatusOK, res)
}
