package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/microfinance_backend/internal/core/ports/services"
	"github.com/SscSPs/microfinance_backend/internal/dto"
	"github.com/SscSPs/microfinance_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// loanHandler handles HTTP requests related to loans and their repayments.
type loanHandler struct {
	loanService      portssvc.LoanSvcFacade
	repaymentService portssvc.RepaymentSvcFacade
	isProduction     bool
}

// newLoanHandler creates a new loanHandler.
func newLoanHandler(loanService portssvc.LoanSvcFacade, repaymentService portssvc.RepaymentSvcFacade, isProduction bool) *loanHandler {
	return &loanHandler{
		loanService:      loanService,
		repaymentService: repaymentService,
		isProduction:     isProduction,
	}
}

// RegisterLoanRoutes registers routes related to loans. repaymentMiddleware wraps
// only the payment posting route, typically with a rate limiter.
func RegisterLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade, repaymentService portssvc.RepaymentSvcFacade, isProduction bool, repaymentMiddleware ...gin.HandlerFunc) {
	h := newLoanHandler(loanService, repaymentService, isProduction)

	loans := rg.Group("/loans")
	{
		loans.POST("/calculate", h.calculateLoan)
		loans.POST("", h.createLoan)
		loans.GET("/:loanID", h.getLoan)
		loans.PATCH("/:loanID/status", h.updateLoanStatus)
		loans.GET("/:loanID/repayments", h.listRepayments)
		loans.POST("/:loanID/repayments", append(repaymentMiddleware, h.postRepayment)...)
		loans.GET("/:loanID/transactions", h.listTransactions)
	}
}

// calculateLoan godoc
// @Summary Preview a loan
// @Description Computes principal, totals and the repayment schedule without saving anything
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   terms body dto.LoanTermsRequest true "Loan terms"
// @Success 200 {object} dto.LoanCalculationResponse
// @Failure 400 {object} APIErrorResponse "Invalid loan parameters"
// @Failure 401 {object} APIErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /loans/calculate [post]
func (h *loanHandler) calculateLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoanTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	calc, err := h.loanService.CalculateLoan(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, h.isProduction, "Failed to calculate loan")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanCalculationResponse(calc))
}

// createLoan godoc
// @Summary Originate a loan
// @Description Prices a loan and stores it in pending status together with its installments
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} APIErrorResponse "Invalid loan parameters"
// @Failure 401 {object} APIErrorResponse "Unauthorized"
// @Failure 404 {object} APIErrorResponse "Client not found"
// @Failure 500 {object} APIErrorResponse "Failed to create loan"
// @Security BearerAuth
// @Router /loans [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	logger.Info("Received request to create loan",
		slog.String("client_id", req.ClientID),
		slog.String("loan_type", string(req.LoanType)),
		slog.String("amount", req.LoanAmount.String()))

	loan, err := h.loanService.CreateLoan(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, h.isProduction, "Failed to create loan")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// getLoan godoc
// @Summary Get a loan by ID
// @Tags loans
// @Produce  json
// @Param   loanID path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 401 {object} APIErrorResponse "Unauthorized"
// @Failure 404 {object} APIErrorResponse "Loan not found"
// @Security BearerAuth
// @Router /loans/{loanID} [get]
func (h *loanHandler) getLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID := c.Param("loanID")

	loan, err := h.loanService.GetLoanByID(c.Request.Context(), loanID)
	if err != nil {
		respondError(c, logger.With(slog.String("loan_id", loanID)), err, h.isProduction, "Failed to retrieve loan")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// updateLoanStatus godoc
// @Summary Change a loan's status
// @Description Applies an explicit lifecycle transition, e.g. approved to disbursed
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loanID path string true "Loan ID"
// @Param   status body dto.UpdateLoanStatusRequest true "New status"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} APIErrorResponse "Unknown status"
// @Failure 404 {object} APIErrorResponse "Loan not found"
// @Failure 409 {object} APIErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /loans/{loanID}/status [patch]
func (h *loanHandler) updateLoanStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID := c.Param("loanID")

	var req dto.UpdateLoanStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateLoanStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	loan, err := h.loanService.UpdateLoanStatus(c.Request.Context(), loanID, req.Status, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("loan_id", loanID)), err, h.isProduction, "Failed to update loan status")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// listRepayments godoc
// @Summary List a loan's installments
// @Tags repayments
// @Produce  json
// @Param   loanID path string true "Loan ID"
// @Success 200 {array} dto.RepaymentResponse
// @Failure 404 {object} APIErrorResponse "Loan not found"
// @Security BearerAuth
// @Router /loans/{loanID}/repayments [get]
func (h *loanHandler) listRepayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID := c.Param("loanID")

	rows, err := h.loanService.ListRepayments(c.Request.Context(), loanID)
	if err != nil {
		respondError(c, logger.With(slog.String("loan_id", loanID)), err, h.isProduction, "Failed to list repayments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRepaymentResponse(rows))
}

// postRepayment godoc
// @Summary Post a repayment
// @Description Applies a payment to the earliest open installment and distributes its interest to savings accounts
// @Tags repayments
// @Accept  json
// @Produce  json
// @Param   loanID path string true "Loan ID"
// @Param   payment body dto.PostRepaymentRequest true "Payment"
// @Success 201 {object} dto.PostRepaymentResponse
// @Failure 400 {object} APIErrorResponse "Invalid payment amount"
// @Failure 404 {object} APIErrorResponse "Loan not found"
// @Failure 409 {object} APIErrorResponse "Loan not payable or nothing left to pay"
// @Failure 422 {object} APIErrorResponse "Payment exceeds outstanding balance"
// @Failure 429 {object} APIErrorResponse "Too many requests"
// @Security BearerAuth
// @Router /loans/{loanID}/repayments [post]
func (h *loanHandler) postRepayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID := c.Param("loanID")

	var req dto.PostRepaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostRepayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("loan_id", loanID))
	result, err := h.repaymentService.PostRepayment(c.Request.Context(), loanID, req, userID)
	if err != nil {
		respondError(c, logger, err, h.isProduction, "Failed to post repayment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostRepaymentResponse(result))
}

// listTransactions godoc
// @Summary List ledger rows for a loan
// @Tags repayments
// @Produce  json
// @Param   loanID path string true "Loan ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 404 {object} APIErrorResponse "Loan not found"
// @Security BearerAuth
// @Router /loans/{loanID}/transactions [get]
func (h *loanHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanID := c.Param("loanID")

	txns, err := h.repaymentService.ListLoanTransactions(c.Request.Context(), loanID)
	if err != nil {
		respondError(c, logger.With(slog.String("loan_id", loanID)), err, h.isProduction, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}
