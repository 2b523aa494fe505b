package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resumebuilder/docs"
	"resumebuilder/internal/config"
	handlers "resumebuilder/internal/http/handler"
	"resumebuilder/internal/http/middleware"
	"resumebuilder/internal/llm"
	"resumebuilder/internal/logging"
	"resumebuilder/internal/otel"
	"resumebuilder/internal/render"
	"resumebuilder/internal/service"
	"resumebuilder/internal/session"
)

// @title Resume Builder API
// @version 1.0
// @description Generates resumes, cover letters and portfolio summaries and renders them as PDF.
// @BasePath /
func main() {
	// Configuration comes from the environment; .env is auto-loaded if present
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Error("tracing_init_failed", err, nil)
		os.Exit(1)
	}

	if !cfg.LLM.Configured() {
		logger.Warn("llm_not_configured", nil, map[string]any{"hint": "set CEREBRAS_API_KEY or CEREBRAS_API_KEY_FILE"})
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.Error("metrics_init_failed", err, nil)
		os.Exit(1)
	}
	docMetrics, err := service.NewMetrics(reg)
	if err != nil {
		logger.Error("metrics_init_failed", err, nil)
		os.Exit(1)
	}

	docSvc := service.NewDocumentService(llm.NewClient(cfg.LLM), render.NewRenderer(), docMetrics, logger)

	sessions := session.NewStore()
	go sweepSessions(ctx, sessions, cfg.Session.MaxIdle(), logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics"
	})))
	app.Use(middleware.LoggerWithWriter(os.Stdout, cfg.Location()))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host", cfg.AppHost)
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, docSvc, handlers.RouteConfig{
		Sessions:      sessions,
		SessionMaxAge: cfg.Session.MaxIdle(),
		LLMConfigured: cfg.LLM.Configured(),
	})

	go func() {
		<-ctx.Done()
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	addr := ":" + cfg.Port
	logger.Info("server_starting", map[string]any{"addr": addr})
	if err := app.Listen(addr); err != nil {
		logger.Error("server_failed", err, nil)
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Error("tracing_shutdown_failed", err, nil)
	}
}

func sweepSessions(ctx context.Context, store *session.Store, maxIdle time.Duration, logger *logging.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(maxIdle); n > 0 {
				logger.Info("sessions_evicted", map[string]any{"count": n, "live": store.Len()})
			}
		}
	}
}
