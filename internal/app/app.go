package app

import (
	"os"

	"hr-backoffice/internal/auth"
	"hr-backoffice/internal/employee"
	"hr-backoffice/internal/enquiry"
	"hr-backoffice/internal/leave"
	"hr-backoffice/internal/quotation"
	"hr-backoffice/internal/salaryslip"
	"hr-backoffice/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp wires infrastructure and modules onto the router. A missing or
// unreachable database is not fatal: the app degrades to in-memory
// repositories so the API stays usable for demos and local work.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	var gormDB *gorm.DB
	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err := connection.ConnectGORM(dsn, 5)
		if err != nil {
			logger.Warn("database unreachable, falling back to in-memory mode", zap.Error(err))
		} else {
			gormDB = db
		}
	}

	if gormDB != nil {
		if err := gormDB.AutoMigrate(
			&auth.LoginActivity{},
			&employee.Employee{},
			&enquiry.Enquiry{},
			&leave.LeaveRequest{},
			&quotation.Quotation{},
			&salaryslip.SalarySlip{},
		); err != nil {
			return err
		}
		logger.Info("database connection established")
	} else {
		logger.Warn("running with in-memory sample data, state is not persistent")
	}

	rdb := connection.ConnectRedis(os.Getenv("REDIS_ADDR"), 3)
	if rdb != nil {
		logger.Info("redis connection established")
	}

	kafkaWriter := connection.NewKafkaWriter(os.Getenv("KAFKA_BROKERS"))
	if kafkaWriter != nil {
		logger.Info("kafka writer configured")
	}

	return registerModules(router, gormDB, rdb, kafkaWriter)
}
