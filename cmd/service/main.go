// @title        Storefront API
// @version      1.0
// @description  Catalog, category, and contact backend with a cookie-based admin boundary.
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey AdminSession
// @in cookie
// @name adminToken
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"storefront/internal/cache"
	"storefront/internal/database"
	"storefront/internal/router"
	"storefront/internal/service"
	"storefront/internal/upload"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "storefront/docs" // swag generated docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newSink         = upload.NewSink
	ensureAdmin     = service.EnsureAdmin
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	// .env is a local-dev convenience; real deployments set the environment.
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is not set")
	}

	redisIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB: %v", err)
		}
		redisIndex = i
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	addr := ":8080"
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		addr = v
	}

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("migrations failed: %v", err)
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("redis connection failed: %v", err)
	}
	defer rdb.Close()

	if err := ensureAdmin(context.Background(), db, os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		return fmt.Errorf("admin bootstrap failed: %v", err)
	}

	sink, err := newSink(uploadDir)
	if err != nil {
		return fmt.Errorf("upload directory init failed: %v", err)
	}

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, rdb, sink)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, addr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
