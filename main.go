package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "bunkmeter-backend/docs"
	"bunkmeter-backend/internal/attendance"
	"bunkmeter-backend/internal/classes"
	"bunkmeter-backend/internal/platform/auth"
	"bunkmeter-backend/internal/platform/db"
	"bunkmeter-backend/internal/report"
	"bunkmeter-backend/internal/schedule"
)

// @title                      Bunkmeter API
// @version                    1.0
// @BasePath                   /api/v1
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	// config
	cfg, err := db.LoadConfig(db.DefaultConfigPath)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	log.Printf("[INFO] mode:%s storage:%s\n", cfg.Mode, cfg.Storage.Driver)

	st, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	defer st.Close()

	r := newRouter(cfg, st)

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		var err error
		if cfg.TLSEnabled() {
			certFile := fmt.Sprintf("config/tls/%s/%s", cfg.Mode, cfg.Certificate.Cert)
			keyFile := fmt.Sprintf("config/tls/%s/%s", cfg.Mode, cfg.Certificate.Key)
			log.Printf("[INFO] listening on https://%s", cfg.Listen)
			err = srv.ListenAndServeTLS(certFile, keyFile)
		} else {
			log.Printf("[INFO] listening on http://%s", cfg.Listen)
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}

func newRouter(cfg *db.Config, st *storage) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	if cfg.Mode == "dev" {
		// CORS is only needed in dev
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowOrigins,
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Location"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// health
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	admin := []gin.HandlerFunc{auth.RequireAuth(issuer.Secret()), auth.RequireClassAdmin("class_id")}

	classSvc := classes.NewService(st.classes, issuer)
	attendanceSvc := attendance.NewService(classSvc, st.attendance)
	sessions := schedule.NewRegistry(classSvc, attendanceSvc, cfg.Sessions.TTL)

	// /api/v1
	api := r.Group("/api/v1")
	classes.RegisterRoutes(api, classSvc, admin...)
	attendance.RegisterRoutes(api, attendanceSvc, admin...)
	schedule.RegisterRoutes(api, schedule.NewResolver(classSvc), sessions, admin...)
	report.RegisterRoutes(api, report.NewService(attendanceSvc), admin...)

	return r
}
