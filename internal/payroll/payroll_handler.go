package payroll

import (
	"encoding/json"
	"net/http"
	"time"

	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyResponseTTL = 24 * time.Hour

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Generate(c *gin.Context) {
	var req GeneratePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, err.Error())
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		h.releaseIdempotencyLock(c)
		h.writeServiceError(c, err)
		return
	}

	h.storeIdempotentResponse(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// GetSelf lists payrolls for the employee bound to the authenticated user.
func (h *Handler) GetSelf(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if employeeID == "" {
		httpErr := apperror.ToHTTP(apperror.ErrForbidden)
		response.Error(c, httpErr.Status, httpErr.Code, "no employee record linked to this account", nil)
		return
	}

	resp, err := h.service.GetAllByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) storeIdempotentResponse(c *gin.Context, resp PayrollResponse) {
	if h.rdb == nil {
		return
	}
	cacheKey := c.GetString("idempotency_cache_key")
	if cacheKey == "" {
		return
	}

	// The full envelope and the original status are cached so a replay is
	// byte-for-byte what the first request returned.
	body, err := json.Marshal(response.ApiEnvelope{Ok: true, Data: resp})
	if err == nil {
		record, _ := json.Marshal(middleware.IdempotentResponse{Status: http.StatusCreated, Body: body})
		h.rdb.Set(c.Request.Context(), cacheKey, string(record), idempotencyResponseTTL)
	}
	h.rdb.Del(c.Request.Context(), c.GetString("idempotency_lock_key"))
}

func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}
	lockKey := c.GetString("idempotency_lock_key")
	if lockKey != "" {
		h.rdb.Del(c.Request.Context(), lockKey)
	}
}
