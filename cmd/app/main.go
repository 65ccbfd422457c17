package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gymgate/cmd/fx/admin_fx"
	"gymgate/cmd/fx/bridge_fx"
	"gymgate/cmd/fx/config_fx"
	"gymgate/cmd/fx/controllers_fx"
	"gymgate/cmd/fx/db_fx"
	"gymgate/cmd/fx/device_fx"
	"gymgate/cmd/fx/member_fx"
	"gymgate/cmd/fx/memcache_fx"
	"gymgate/cmd/fx/report_fx"
	"gymgate/internal/api/controllers"
	"gymgate/internal/config"
	"gymgate/internal/infra"
	"gymgate/internal/repositories"
	"gymgate/internal/seed"
	"gymgate/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		device_fx.Module,
		member_fx.Module,
		admin_fx.Module,
		bridge_fx.Module,
		report_fx.Module,
		controllers_fx.Module,

		fx.Invoke(RunSetup),
		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func RunSetup(db *gorm.DB, store *config.Store, adminRepo repositories.AdminRepository, memberRepo repositories.MemberRepository) {
	if err := seed.Run(db, store, adminRepo, memberRepo); err != nil {
		log.Fatalf("Failed to run one-time setup: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.AppConfig, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.CloseSqlite(db)
			return nil
		},
	})
}

func ProvideRouter(
	bridgeController *controllers.BridgeController,
	memberController *controllers.MemberController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, bridgeController, memberController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	bridgeController *controllers.BridgeController,
	memberController *controllers.MemberController,
	adminController *controllers.AdminController) {

	// Device bridge resource, wire-compatible with the desktop app.
	r.GET("/api/user", bridgeController.Status)
	r.POST("/api/user", bridgeController.Post)
	r.DELETE("/api/user", bridgeController.Delete)

	adminOnly := []gin.HandlerFunc{
		middleware.JWTAuthMiddleware(),
		middleware.RoleMiddleware(config.RoleAdmin),
	}

	members := r.Group("/members")
	members.POST("", memberController.Enroll)
	members.GET("", memberController.List)
	members.GET("/:id", memberController.GetByID)
	members.PUT("/:id", append(adminOnly, memberController.Update)...)
	members.DELETE("/:id", append(adminOnly, memberController.Delete)...)

	r.GET("/reports/members", append(adminOnly, memberController.Report)...)

	admin := r.Group("/admin")
	admin.POST("/login", adminController.Login)
	admin.POST("/logout", adminController.Logout)
	admin.POST("/users", append(adminOnly, adminController.AddAdmin)...)
}
