package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-app-web/internal/audit"
	"github.com/BruksfildServices01/barber-app-web/internal/branding"
	"github.com/BruksfildServices01/barber-app-web/internal/config"
	"github.com/BruksfildServices01/barber-app-web/internal/gateway"
	"github.com/BruksfildServices01/barber-app-web/internal/handlers"
	"github.com/BruksfildServices01/barber-app-web/internal/middleware"
	"github.com/BruksfildServices01/barber-app-web/internal/models"
	"github.com/BruksfildServices01/barber-app-web/internal/session"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, rdb *redis.Client) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	api := gateway.New(cfg)
	sessions := session.NewStore(rdb, cfg.SessionTTL)
	brandingStore := branding.NewStore(rdb)

	auditLogger := audit.New(rdb)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(api, sessions, cfg)
	schedulingHandler := handlers.NewSchedulingHandler(api, auditDispatcher, sessions, cfg)
	barberServiceHandler := handlers.NewBarberServiceHandler(api, auditDispatcher, sessions, cfg)
	userHandler := handlers.NewUserHandler(api, auditDispatcher, sessions, cfg)
	openingHoursHandler := handlers.NewOpeningHoursHandler(api, auditDispatcher, sessions, cfg)
	brandingHandler := handlers.NewBrandingHandler(brandingStore)

	// ======================================================
	// ROTAS PÚBLICAS
	// ======================================================
	r.GET("/branding", brandingHandler.Get)

	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/register", authHandler.Register)

	// ======================================================
	// ROTAS AUTENTICADAS
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.SessionMiddleware(sessions, cfg))
	{
		secured.GET("/auth/me", authHandler.Me)
		secured.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// AGENDAMENTOS
		// ------------------------------
		schedulings := secured.Group("/schedulings")
		{
			schedulings.GET("", middleware.RequireRole(models.RoleAdmin), schedulingHandler.List)
			schedulings.GET("/mine", schedulingHandler.ListMine)
			schedulings.GET("/barber", middleware.RequireRole(models.RoleBarber, models.RoleAdmin), schedulingHandler.ListForBarber)
			schedulings.GET("/day", middleware.RequireRole(models.RoleBarber, models.RoleAdmin), schedulingHandler.ListByDay)
			schedulings.GET("/available-times", schedulingHandler.AvailableTimes)
			schedulings.GET("/:id", schedulingHandler.Get)

			schedulings.POST("", schedulingHandler.Create)
			schedulings.PUT("/:id", schedulingHandler.Update)
			schedulings.DELETE("/:id", schedulingHandler.Delete)

			// atendimento (barbeiro)
			schedulings.POST("/:id/cancel", middleware.RequireRole(models.RoleBarber, models.RoleAdmin), schedulingHandler.Cancel)
			schedulings.PUT("/:id/finish", middleware.RequireRole(models.RoleBarber, models.RoleAdmin), schedulingHandler.Finish)
			schedulings.POST("/:id/services", middleware.RequireRole(models.RoleBarber, models.RoleAdmin), schedulingHandler.AddServices)
		}

		// ------------------------------
		// CATÁLOGO DE SERVIÇOS
		// ------------------------------
		services := secured.Group("/barber-services")
		{
			services.GET("", barberServiceHandler.List)
			services.GET("/:id", barberServiceHandler.Get)
			services.POST("", middleware.RequireRole(models.RoleAdmin), barberServiceHandler.Create)
			services.PUT("/:id", middleware.RequireRole(models.RoleAdmin), barberServiceHandler.Update)
			services.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), barberServiceHandler.Delete)
		}

		// ------------------------------
		// USUÁRIOS
		// ------------------------------
		users := secured.Group("/users")
		{
			users.GET("", middleware.RequireRole(models.RoleAdmin), userHandler.List)
			users.GET("/barbers", userHandler.ListBarbers)
			users.GET("/:id", middleware.RequireRole(models.RoleAdmin), userHandler.Get)
			users.POST("", middleware.RequireRole(models.RoleAdmin), userHandler.Create)
			users.PUT("/:id", middleware.RequireRole(models.RoleAdmin), userHandler.Update)
			users.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), userHandler.Delete)
			users.PATCH("/:id/role", middleware.RequireRole(models.RoleAdmin), userHandler.UpdateRole)
		}

		// ------------------------------
		// HORÁRIOS DE FUNCIONAMENTO
		// ------------------------------
		openingHours := secured.Group("/opening-hours")
		openingHours.Use(middleware.RequireRole(models.RoleAdmin))
		{
			openingHours.GET("/weekly-schedule", openingHoursHandler.GetWeekly)
			openingHours.PUT("/weekly-schedule", openingHoursHandler.SaveWeekly)

			openingHours.GET("/specific-date", openingHoursHandler.ListSpecificDates)
			openingHours.POST("/specific-date", openingHoursHandler.CreateSpecificDate)
			openingHours.PUT("/specific-date/:id", openingHoursHandler.UpdateSpecificDate)
			openingHours.DELETE("/specific-date/:id", openingHoursHandler.DeleteSpecificDate)
		}

		// ------------------------------
		// IDENTIDADE
		// ------------------------------
		secured.PUT("/branding", middleware.RequireRole(models.RoleAdmin), brandingHandler.Update)
	}
}
