package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/caresync/clinic-system/internal/api/handler"
	"github.com/caresync/clinic-system/internal/api/middleware"
	"github.com/caresync/clinic-system/internal/core/domain"
	"github.com/caresync/clinic-system/internal/core/service"
	"github.com/caresync/clinic-system/internal/infrastructure/config"
	mongodb "github.com/caresync/clinic-system/internal/infrastructure/db/mongo"
	redisdb "github.com/caresync/clinic-system/internal/infrastructure/db/redis"
	"github.com/caresync/clinic-system/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. Every protected route declares its allowed-role set here;
// the sets are fixed per route, never derived from request data.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clinic"))

	// --- Dependencies ---
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	users := mongodb.NewUserRepository(db)
	patients := mongodb.NewPatientRepository(db)
	departments := mongodb.NewDepartmentRepository(db)
	appointments := mongodb.NewAppointmentRepository(db)
	revocation := redisdb.NewRevocationList(rdb)

	authService := service.NewAuthService(users, codec, revocation, log)
	refValidator := service.NewReferenceValidator(patients, departments, users)
	appointmentService := service.NewAppointmentService(appointments, refValidator, log)
	patientService := service.NewPatientService(patients, log)
	departmentService := service.NewDepartmentService(departments, log)
	staffService := service.NewStaffService(users, log)

	authHandler := handler.NewAuthHandler(authService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	patientHandler := handler.NewPatientHandler(patientService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	staffHandler := handler.NewStaffHandler(staffService)

	authn := middleware.Auth(codec, users, revocation)

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authn)

	// --- Appointments ---
	appt := e.Group("/appointments", authn, middleware.RBAC(domain.RoleAdmin, domain.RoleDoctor))
	appt.POST("", appointmentHandler.Create)
	appt.GET("", appointmentHandler.List)
	appt.GET("/:id", appointmentHandler.GetByID)
	appt.PUT("/:id", appointmentHandler.Update)

	// --- Patients ---
	pat := e.Group("/patients", authn)
	pat.POST("", patientHandler.Create, middleware.RBAC(domain.RoleAdmin, domain.RoleNurse))
	pat.GET("", patientHandler.List, middleware.RBAC(domain.RoleAdmin, domain.RoleDoctor, domain.RoleNurse))
	pat.PUT("/:id", patientHandler.Update, middleware.RBAC(domain.RoleAdmin, domain.RoleNurse))

	// --- Departments ---
	dept := e.Group("/departments", authn)
	dept.POST("", departmentHandler.Create, middleware.RBAC(domain.RoleAdmin))
	dept.GET("", departmentHandler.List, middleware.RBAC(domain.RoleAdmin, domain.RoleDoctor, domain.RoleNurse))
	dept.PUT("/:id", departmentHandler.Update, middleware.RBAC(domain.RoleAdmin))
	dept.DELETE("/:id", departmentHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// --- Staff administration ---
	doc := e.Group("/doctors", authn)
	doc.POST("", staffHandler.CreateDoctor, middleware.RBAC(domain.RoleAdmin))
	doc.GET("", staffHandler.ListDoctors, middleware.RBAC(domain.RoleAdmin))
	doc.PUT("/password", staffHandler.ChangePassword, middleware.RBAC(domain.RoleDoctor))
	doc.PUT("/:id", staffHandler.UpdateDoctor, middleware.RBAC(domain.RoleAdmin))

	e.POST("/nurses", staffHandler.CreateNurse, authn, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
