package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"worksbill/internal/domain"
	"worksbill/internal/handler"
	"worksbill/internal/service"
	"worksbill/mocks"
)

func newReportRouter() (*gin.Engine, *mocks.MockReportService, *mocks.MockStatsService) {
	reports := new(mocks.MockReportService)
	stats := new(mocks.MockStatsService)
	rh := handler.NewReportHandler(reports)
	sh := handler.NewStatsHandler(stats)
	r := gin.New()
	r.GET("/reports/payment-register", rh.PaymentRegister)
	r.GET("/reports/contractor-payments", rh.ContractorPayments)
	r.GET("/reports/scheme-expenditure", rh.SchemeExpenditure)
	r.GET("/reports/deductions", rh.Deductions)
	r.GET("/stats", sh.GetStats)
	r.GET("/stats/expenditure-trend", sh.ExpenditureTrend)
	return r, reports, stats
}

func TestReportHandler_SchemeExpenditure(t *testing.T) {
	r, reports, _ := newReportRouter()
	reports.On("SchemeExpenditure", mock.Anything).Return([]domain.SchemeExpenditureRow{{
		Scheme: "JJM", Allocated: decimal.NewFromInt(1000), Utilized: decimal.NewFromInt(250),
		Balance: decimal.NewFromInt(750), UtilizationPercent: decimal.NewFromInt(25),
	}}, nil)

	w := serve(r, http.MethodGet, "/reports/scheme-expenditure?from=2024-04-01&to=2024-04-30", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"scheme":"JJM"`)
	reports.AssertExpectations(t)
}

func TestReportHandler_FiltersByDate(t *testing.T) {
	r, reports, _ := newReportRouter()
	reports.On("DeductionRegister", mock.Anything, mock.MatchedBy(func(f domain.ReportFilters) bool {
		return f.From != nil && f.To != nil && f.To.Format("2006-01-02") == "2024-04-30"
	})).Return([]domain.DeductionRegisterRow{}, nil)

	w := serve(r, http.MethodGet, "/reports/deductions?from=2024-04-01&to=2024-04-30", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	reports.AssertExpectations(t)
}

func TestReportHandler_InvalidDate(t *testing.T) {
	r, reports, _ := newReportRouter()

	for _, path := range []string{
		"/reports/payment-register?from=yesterday",
		"/reports/contractor-payments?to=2024-13-01",
		"/stats?from=2024/04/01",
	} {
		w := serve(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
	reports.AssertExpectations(t)
}

func TestReportHandler_ServiceError(t *testing.T) {
	r, reports, _ := newReportRouter()
	reports.On("ContractorPayments", mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	w := serve(r, http.MethodGet, "/reports/contractor-payments", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStatsHandler_GetStats(t *testing.T) {
	r, _, stats := newReportRouter()
	stats.On("GetStats", mock.Anything, domain.ReportFilters{}).
		Return(&domain.Stats{TotalContractors: 3, PendingBills: 2}, nil)

	w := serve(r, http.MethodGet, "/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode(t, w).Success)
	stats.AssertExpectations(t)
}

func TestStatsHandler_ExpenditureTrend(t *testing.T) {
	r, _, stats := newReportRouter()
	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	stats.On("ExpenditureTrend", mock.Anything, domain.ReportFilters{From: &from, To: &to}).
		Return(&domain.ExpenditureTrend{
			Days: []domain.DailyExpenditure{
				{Day: from, Bills: 2, BilledAmount: decimal.NewFromInt(150000)},
			},
			Total: decimal.NewFromInt(150000),
		}, nil)

	w := serve(r, http.MethodGet, "/stats/expenditure-trend?from=2024-04-01&to=2024-04-30", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Days  []map[string]interface{} `json:"days"`
			Total interface{}              `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Days, 1)
	assert.EqualValues(t, 2, body.Data.Days[0]["bills"])
	assert.NotNil(t, body.Data.Total)
	stats.AssertExpectations(t)
}

func TestStatsHandler_ExpenditureTrend_InvertedRange(t *testing.T) {
	r, _, stats := newReportRouter()
	stats.On("ExpenditureTrend", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidDateRange)

	w := serve(r, http.MethodGet, "/stats/expenditure-trend?from=2024-05-01&to=2024-04-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DATE_RANGE", errorCode(t, w))
}

func TestBackupHandler(t *testing.T) {
	svc := new(mocks.MockBackupService)
	h := handler.NewBackupHandler(svc)
	r := gin.New()
	r.POST("/backups", h.Create)
	r.DELETE("/backups", h.Delete)

	svc.On("Create", mock.Anything).Return(&service.BackupResult{Key: "backups/x.json"}, nil)
	svc.On("Remove", mock.Anything, "backups/x.json").Return(nil)

	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/backups", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodDelete, "/backups?key=backups/x.json", nil).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodDelete, "/backups", nil).Code)

	failing := new(mocks.MockBackupService)
	failing.On("Create", mock.Anything).Return(nil, domain.ErrBackupFailed)
	r2 := gin.New()
	r2.POST("/backups", handler.NewBackupHandler(failing).Create)
	assert.Equal(t, http.StatusBadGateway, serve(r2, http.MethodPost, "/backups", nil).Code)
}

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func TestHealthHandler(t *testing.T) {
	r := gin.New()
	r.GET("/healthz", handler.NewHealthHandler(fakePinger{}).Liveness)
	r.GET("/readyz", handler.NewHealthHandler(fakePinger{err: errors.New("down")}).Readiness)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/healthz", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(r, http.MethodGet, "/readyz", nil).Code)
}
