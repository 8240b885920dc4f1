package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"codnect.io/chrono"
	"github.com/caarlos0/env/v6"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riandyrn/otelchi"
	"github.com/rs/zerolog/log"
	"github.com/woog-life/potsdam-booking-scraper/alert"
	"github.com/woog-life/potsdam-booking-scraper/api"
	"github.com/woog-life/potsdam-booking-scraper/config"
	"github.com/woog-life/potsdam-booking-scraper/health"
	"github.com/woog-life/potsdam-booking-scraper/job"
	"github.com/woog-life/potsdam-booking-scraper/logging"
	"github.com/woog-life/potsdam-booking-scraper/registry/setup"
	"github.com/woog-life/potsdam-booking-scraper/scrape"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"
	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/yaml"
)

const serviceName = "booking-scraper"

const defaultRunInterval = 30 * time.Minute

var envConfig = config.Configuration{}

func main() {
	if err := env.Parse(&envConfig); err != nil {
		log.Fatal().Msgf("Configuration loading failed: %+v", err)
	}

	appConfig := config.ApplicationConfiguration{}
	readConfig(envConfig.ApplicationConfigFileYmlPath, &appConfig)

	logging.Setup(os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	////////////////////////////////////////////

	sources, resolvers, err := setup.Init(ctx, envConfig, appConfig)
	if err != nil {
		log.Fatal().Stack().Err(err).Msg("Lake source init failed")
	}
	defer func() {
		for _, each := range sources {
			each.Close()
		}
	}()

	traceShutdown, e := setupTracing(ctx, appConfig)
	if e != nil {
		log.Fatal().Stack().Err(e).Msg("Trace setup failed")
	}
	defer traceShutdown()

	////////////////////////////////////////////

	runner := &job.Runner{
		Sources:   sources,
		Resolvers: resolvers,
		Fetcher: &scrape.Fetcher{
			URLTemplate: envConfig.BookingURL,
			Client:      httpClient(appConfig),
			MaxRetries:  appConfig.Scraper.MaxRetries,
		},
		Client: &api.Client{
			BaseURL:      envConfig.BackendURL,
			PathTemplate: envConfig.BackendPath,
			APIKey:       envConfig.APIKey,
			HTTPClient:   httpClient(appConfig),
			MaxRetries:   appConfig.Scraper.MaxRetries,
			EnableTrace:  appConfig.Tracing.Enabled,
		},
		DaysAhead: appConfig.Scraper.DaysAhead,
	}

	notifier := &alert.Notifier{
		Token:           envConfig.TelegramToken,
		Chatlist:        envConfig.TelegramChatlist,
		MessageTemplate: appConfig.Alerting.MessageTemplate,
	}

	if !appConfig.Scheduler.Enabled {
		// CronJob mode: one run, alert and a non-zero exit on failure
		if err := runner.Run(ctx); err != nil {
			log.Error().Stack().Err(err).Msg("Something went wrong")
			notifier.NotifyFailure(err.Error())
			os.Exit(1)
		}
		return
	}

	////////////////////////////////////////////

	scheduleRuns(runner, notifier, appConfig)

	router := setupRouter(appConfig)
	setupHealthCheck(router)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		if appConfig.Server.Port == 0 {
			appConfig.Server.Port = 80
		}
		port := fmt.Sprintf(":%d", appConfig.Server.Port)
		log.Info().Msgf("Listening on %s", port)
		if err := http.ListenAndServe(port, router); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Stack().Err(err).Msg("startup failed")
	}
}

func readConfig(filePath string, config *config.ApplicationConfiguration) {
	yamlFile, err := os.ReadFile(filePath)
	if err == nil {
		log.Debug().Msgf("Loading YAML config from %s", filePath)
		err = yaml.Unmarshal(yamlFile, config)
		if err != nil {
			log.Fatal().Stack().Err(err).Msg("Unmarshal")
		}
	} else {
		log.Printf("No config file found: %s", filePath)
	}
}

func httpClient(appConfig config.ApplicationConfiguration) *http.Client {
	timeout := 30 * time.Second
	if appConfig.Scraper.TimeoutMillis > 0 {
		timeout = time.Duration(appConfig.Scraper.TimeoutMillis) * time.Millisecond
	}
	return &http.Client{Timeout: timeout}
}

func scheduleRuns(runner *job.Runner, notifier *alert.Notifier, appConfig config.ApplicationConfiguration) {
	interval := defaultRunInterval
	if appConfig.Scheduler.IntervalMillis > 0 {
		interval = time.Duration(appConfig.Scheduler.IntervalMillis) * time.Millisecond
	}

	scheduler := chrono.NewDefaultTaskScheduler()
	log.Info().Msgf("Scheduling scrape run every %v", interval)

	_, err := scheduler.ScheduleAtFixedRate(func(taskCtx context.Context) {
		if err := runner.Run(taskCtx); err != nil {
			log.Error().Stack().Err(err).Msg("Scheduled run failed")
			notifier.NotifyFailure(err.Error())
		}
	}, interval)

	if err != nil {
		log.Fatal().Stack().Err(err).Msg("Scheduler setup failed")
	}
}

var emptyShutdown = func() {}

func setupTracing(ctx context.Context, config config.ApplicationConfiguration) (func(), error) {
	if !config.Tracing.Enabled {
		return emptyShutdown, nil
	}

	if config.Tracing.Endpoint == "" {
		return emptyShutdown, fmt.Errorf("missing tracing endpoint")
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		log.Fatal().Stack().Err(err).Msg("failed to create resource")
	}

	traceExporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpoint(config.Tracing.Endpoint),
	)
	if err != nil {
		return emptyShutdown, fmt.Errorf("failed to create trace exporter %v", err)
	}

	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(config.Tracing.SamplerFraction)),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	log.Info().Msgf("OpenTelemetry export is enabled, to: %s", config.Tracing.Endpoint)

	return func() {
		if err = tracerProvider.Shutdown(ctx); err != nil {
			log.Fatal().Stack().Err(err).Msg("failed to shutdown TracerProvider")
		}
	}, nil
}

func setupRouter(appConfig config.ApplicationConfiguration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.StripSlashes)

	httpLogger := httplog.NewLogger(serviceName, httplog.Options{JSON: true, Concise: true})
	router.Use(httplog.RequestLogger(httpLogger))

	if appConfig.Tracing.Enabled {
		router.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(router)))
		log.Info().Msgf("OpenTelemetry trace is enabled")
	}

	if len(appConfig.Prometheus.Path) > 0 {
		log.Info().Msgf("Registering metrics endpoint at: %s", appConfig.Prometheus.Path)
		router.Handle(appConfig.Prometheus.Path, promhttp.Handler())
	}

	return router
}

func setupHealthCheck(router *chi.Mux) {
	healthChk := health.New(health.WithChiMux(router))
	healthChk.StartListening()
}
