package main

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zsherman2510/shop-themes-backend/internal/cart"
	"github.com/zsherman2510/shop-themes-backend/internal/category"
	"github.com/zsherman2510/shop-themes-backend/internal/checkout"
	"github.com/zsherman2510/shop-themes-backend/internal/config"
	"github.com/zsherman2510/shop-themes-backend/internal/customer"
	"github.com/zsherman2510/shop-themes-backend/internal/order"
	"github.com/zsherman2510/shop-themes-backend/internal/page"
	"github.com/zsherman2510/shop-themes-backend/internal/product"
	"github.com/zsherman2510/shop-themes-backend/internal/theme"
	"github.com/zsherman2510/shop-themes-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := mustBuildLogger(cfg.LogLevel)
	defer logger.Sync()

	db := mustOpenDB(cfg.DatabaseURL, logger)
	defer db.Close()

	if err := ensureSchema(db); err != nil {
		logger.Fatal("schema setup failed", zap.Error(err))
	}

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger(logger))

	// services double as the dependency seams between features: cart needs
	// product lookups, checkout composes orders and customers.
	productService := product.NewService(product.NewPostgresRepository(db))
	categoryService := category.NewService(category.NewPostgresRepository(db))
	pageService := page.NewService(page.NewPostgresRepository(db))
	customerService := customer.NewService(customer.NewPostgresRepository(db))
	userService := user.NewService(user.NewPostgresRepository(db))
	orderService := order.NewService(order.NewPostgresRepository(db))
	themeService := theme.NewService(theme.NewPostgresRepository(db))

	cartStore := cart.NewPostgresStore(db)

	productHandler := product.NewHandler(productService)
	categoryHandler := category.NewHandler(categoryService)
	pageHandler := page.NewHandler(pageService)
	customerHandler := customer.NewHandler(customerService)
	userHandler := user.NewHandler(userService, cfg.JWTSecret)
	orderHandler := order.NewHandler(orderService)
	themeHandler := theme.NewHandler(themeService)
	cartHandler := cart.NewHandler(cartStore, productService)

	checkoutService := checkout.NewService(
		orderService,
		customerService,
		checkout.NewHostedProvider(cfg.CheckoutBaseURL),
		cfg.CheckoutSuccessURL,
		cfg.CheckoutCancelURL,
	)
	checkoutHandler := checkout.NewHandler(checkoutService, cartStore)

	// storefront surface, no auth
	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	pageHandler.RegisterPublicRoutes(app)
	themeHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	checkoutHandler.RegisterPublicRoutes(app)

	// admin surface: valid token plus a staff role
	admin := app.Group("/api/v1/admin",
		jwtware.New(jwtware.Config{SigningKey: []byte(cfg.JWTSecret)}),
		user.RequireStaff(),
	)
	productHandler.RegisterAdminRoutes(admin)
	categoryHandler.RegisterAdminRoutes(admin)
	pageHandler.RegisterAdminRoutes(admin)
	customerHandler.RegisterAdminRoutes(admin)
	userHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)
	themeHandler.RegisterAdminRoutes(admin)

	logger.Info("starting server", zap.String("addr", cfg.Addr))
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func mustBuildLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func mustOpenDB(dsn string, logger *zap.Logger) *sql.DB {
	if dsn == "" {
		logger.Fatal("DATABASE_URL is not set")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	if err := db.Ping(); err != nil {
		logger.Fatal("ping database", zap.Error(err))
	}
	return db
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	}
}

// ensureSchema creates the tables on startup so a fresh database works
// without a separate migration step.
func ensureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			product_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			sku TEXT,
			description TEXT,
			price NUMERIC NOT NULL DEFAULT 0,
			images TEXT[] NOT NULL DEFAULT '{}',
			category_id TEXT,
			status TEXT NOT NULL DEFAULT 'ACTIVE',
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			category_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS pages (
			page_id TEXT PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			content TEXT,
			published BOOLEAN NOT NULL DEFAULT false,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			customer_id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			name TEXT,
			order_count INT NOT NULL DEFAULT 0,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			user_id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			first_name TEXT,
			last_name TEXT,
			role TEXT NOT NULL DEFAULT 'TEAM',
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id TEXT PRIMARY KEY,
			number TEXT NOT NULL,
			customer_id TEXT,
			customer_email TEXT NOT NULL,
			items JSONB NOT NULL DEFAULT '[]',
			item_count INT NOT NULL DEFAULT 0,
			subtotal NUMERIC NOT NULL DEFAULT 0,
			shipping_price NUMERIC NOT NULL DEFAULT 0,
			total_price NUMERIC NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'PENDING',
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS carts (
			session_id TEXT PRIMARY KEY,
			data JSONB NOT NULL DEFAULT '{}',
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS themes (
			theme_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			settings JSONB NOT NULL DEFAULT '{}',
			active BOOLEAN NOT NULL DEFAULT false,
			created_at TEXT,
			updated_at TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
