package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"worksbill/internal/budget"
	"worksbill/internal/domain"
	"worksbill/internal/handler"
	"worksbill/internal/service"
	"worksbill/mocks"
)

func TestBudgetHandler_Options(t *testing.T) {
	svc := new(mocks.MockBudgetService)
	h := handler.NewBudgetHandler(svc)
	r := gin.New()
	r.GET("/budget/options", h.Options)

	svc.On("Options", mock.Anything, domain.BillTypeNonPlan, "2215").Return(&service.BudgetOptions{
		Options: &budget.Options{BillType: domain.BillTypeNonPlan, SchemeLabel: "Detailed Head", MajorHeads: []string{"2215"}},
		Schemes: []string{"Office Expenses"},
	}, nil)

	w := serve(r, http.MethodGet, "/budget/options?bill_type=non-plan&major_head=2215", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"scheme_label":"Detailed Head"`)
	assert.Contains(t, w.Body.String(), `"schemes":["Office Expenses"]`)
	svc.AssertExpectations(t)
}

func TestBudgetHandler_Options_InvalidBillType(t *testing.T) {
	svc := new(mocks.MockBudgetService)
	h := handler.NewBudgetHandler(svc)
	r := gin.New()
	r.GET("/budget/options", h.Options)

	w := serve(r, http.MethodGet, "/budget/options?bill_type=capital", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_BILL_TYPE", errorCode(t, w))
}

func TestBudgetHandler_Create_RejectsUnknownBillType(t *testing.T) {
	svc := new(mocks.MockBudgetService)
	h := handler.NewBudgetHandler(svc)
	r := gin.New()
	r.POST("/budget", h.Create)

	w := serve(r, http.MethodPost, "/budget", `{"bill_type":"Capital","major_head":"4215","scheme":"JJM","amount":100}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWorkHandler_Options(t *testing.T) {
	svc := new(mocks.MockWorkService)
	h := handler.NewWorkHandler(svc)
	r := gin.New()
	r.GET("/works/options", h.Options)

	svc.On("Options", mock.Anything, service.WorkOptionsQuery{
		BillType: domain.BillTypePlan, MajorHead: "4215", Scheme: "JJM", Workcode: "W-101",
	}).Return(&service.WorkOptions{
		BillType:               domain.BillTypePlan,
		Workcodes:              []string{"W-101"},
		WorkcodesAvailable:     true,
		Nomenclatures:          []string{"Pipeline Phase II"},
		NomenclaturesAvailable: true,
	}, nil)

	w := serve(r, http.MethodGet, "/works/options?bill_type=Plan&major_head=4215&scheme=JJM&workcode=W-101", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestWorkHandler_Create_BadDate(t *testing.T) {
	svc := new(mocks.MockWorkService)
	h := handler.NewWorkHandler(svc)
	r := gin.New()
	r.POST("/works", h.Create)

	w := serve(r, http.MethodPost, "/works", `{
		"major_head":"4215","scheme":"JJM","workcode":"W-101","nomenclature":"Tank",
		"aaa_date":"01/04/2024"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWorkHandler_Create_ParsesDates(t *testing.T) {
	svc := new(mocks.MockWorkService)
	h := handler.NewWorkHandler(svc)
	r := gin.New()
	r.POST("/works", h.Create)

	svc.On("Create", mock.Anything, mock.MatchedBy(func(w *domain.Work) bool {
		return w.AAADate != nil && w.AAADate.Format("2006-01-02") == "2024-04-01" &&
			w.TSDate == nil && w.AllotAmount.String() == "250000"
	})).Return(&domain.Work{Workcode: "W-101"}, nil)

	w := serve(r, http.MethodPost, "/works", `{
		"major_head":"4215","scheme":"JJM","workcode":"W-101","nomenclature":"Tank",
		"aaa_date":"2024-04-01","allot_amount":250000
	}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}
