package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "worksbill/docs"
	"worksbill/internal/handler"
	"worksbill/internal/middleware"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health     *handler.HealthHandler
	Contractor *handler.ContractorHandler
	Work       *handler.WorkHandler
	Budget     *handler.BudgetHandler
	Bill       *handler.BillHandler
	Report     *handler.ReportHandler
	Stats      *handler.StatsHandler
	Backup     *handler.BackupHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, allowedOrigins []string) (*gin.Engine, error) {
	if err := handler.RegisterBindings(); err != nil {
		return nil, err
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	budget := v1.Group("/budget")
	budget.GET("/options", h.Budget.Options)
	budget.GET("", h.Budget.List)
	budget.POST("", h.Budget.Create)

	works := v1.Group("/works")
	works.GET("/options", h.Work.Options)
	works.GET("", h.Work.List)
	works.POST("", h.Work.Create)
	works.GET("/:id", h.Work.GetByID)

	contractors := v1.Group("/contractors")
	contractors.GET("", h.Contractor.List)
	contractors.POST("", h.Contractor.Create)
	contractors.GET("/:id", h.Contractor.GetByID)

	bills := v1.Group("/bills")
	bills.POST("/compute", h.Bill.Compute)
	bills.POST("/validate", h.Bill.Validate)
	bills.POST("", h.Bill.Create)
	bills.GET("", h.Bill.List)
	bills.GET("/:id", h.Bill.GetByID)

	v1.GET("/stats", h.Stats.GetStats)
	v1.GET("/stats/expenditure-trend", h.Stats.ExpenditureTrend)

	reports := v1.Group("/reports")
	reports.GET("/payment-register", h.Report.PaymentRegister)
	reports.GET("/contractor-payments", h.Report.ContractorPayments)
	reports.GET("/scheme-expenditure", h.Report.SchemeExpenditure)
	reports.GET("/deductions", h.Report.Deductions)

	if h.Backup != nil {
		v1.POST("/backups", h.Backup.Create)
		v1.DELETE("/backups", h.Backup.Delete)
	}

	return r, nil
}
