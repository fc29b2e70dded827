package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"helpdesk-backend/config"
	apiv1 "helpdesk-backend/controllers/v1"
	"helpdesk-backend/fiberlog"
	"helpdesk-backend/initializers"
	"helpdesk-backend/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimitMb * 1024 * 1024,
	})
	app.Use(fiberRecover.New())
	if config.Conf.ErrNotify.Addr != "" {
		app.Use(middleware.ErrNotify(config.Conf.ErrNotify.Addr))
	}

	if *config.Conf.App.SwaggerShown {
		swaggerCfg := swagger.Config{
			Path:     "/swagger",
			FilePath: config.Conf.App.SwaggerPath,
		}
		app.Use(swagger.New(swaggerCfg))
	}

	if *config.Conf.Metrics.Enabled {
		app.Get(config.Conf.Metrics.Path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	apiV1.Use(middleware.WithBodyLimit(int64(config.Conf.App.BodyLimitMb) * 1024 * 1024))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))

	//заявки и процесс найма
	requests := fiber.New()
	apiV1.Mount("/requests", requests)
	requests.Use(middleware.AuthorizationRequired())
	requests.Use(middleware.RbacMiddleware())
	apiv1.InitRequestApiRouters(requests)
	apiv1.InitHiringApiRouters(requests)
	apiv1.InitCandidateApiRouters(requests)
	apiv1.InitLoaApiRouters(requests)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
