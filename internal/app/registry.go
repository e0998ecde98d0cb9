package app

import (
	"os"

	"hr-backoffice/internal/auth"
	"hr-backoffice/internal/employee"
	"hr-backoffice/internal/enquiry"
	"hr-backoffice/internal/leave"
	"hr-backoffice/internal/messaging/kafka"
	"hr-backoffice/internal/quotation"
	"hr-backoffice/internal/rbac"
	"hr-backoffice/internal/salaryslip"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	kafkaWriter *kafkago.Writer,
) error {
	degraded := gormDB == nil

	// --- Repositories ---
	// Each repository has a durable and an in-memory implementation behind
	// the same interface; degraded mode swaps the whole set at once.
	var (
		activityRepo  auth.ActivityRepository
		employeeRepo  employee.Repository
		enquiryRepo   enquiry.Repository
		leaveRepo     leave.Repository
		quotationRepo quotation.Repository
		slipRepo      salaryslip.Repository
	)
	if degraded {
		activityRepo = auth.NewMemoryActivityRepository()
		employeeRepo = employee.NewMemoryRepository()
		enquiryRepo = enquiry.NewMemoryRepository()
		leaveRepo = leave.NewMemoryRepository()
		quotationRepo = quotation.NewMemoryRepository()
		slipRepo = salaryslip.NewMemoryRepository()
	} else {
		activityRepo = auth.NewActivityRepository(gormDB)
		employeeRepo = employee.NewRepository(gormDB)
		enquiryRepo = enquiry.NewRepository(gormDB)
		leaveRepo = leave.NewRepository(gormDB)
		quotationRepo = quotation.NewRepository(gormDB)
		slipRepo = salaryslip.NewRepository(gormDB)
	}

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	notifier := kafka.NewNotifier(kafkaWriter)

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "uploads"
	}

	// --- Services ---
	authService := auth.NewService(activityRepo, employeeRepo)
	employeeService := employee.NewService(employeeRepo, rdb)
	enquiryService := enquiry.NewService(enquiryRepo)
	leaveService := leave.NewService(leaveRepo, notifier, leave.MonthlyQuotaFromEnv())
	quotationService := quotation.NewService(quotationRepo)
	slipService := salaryslip.NewService(slipRepo, uploadsDir, degraded)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	enquiryHandler := enquiry.NewHandler(enquiryService)
	leaveHandler := leave.NewHandler(leaveService, rdb)
	quotationHandler := quotation.NewHandler(quotationService)
	slipHandler := salaryslip.NewHandler(slipService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		enquiry.RegisterRoutes(api, enquiryHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
		quotation.RegisterRoutes(api, quotationHandler, rbacService)
		salaryslip.RegisterRoutes(api, slipHandler, rbacService, rdb)
	}

	return nil
}
