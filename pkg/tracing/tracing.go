package tracing

import (
	"fmt"
	"net/http"
	"strings"

	"contrib.go.opencensus.io/exporter/aws"
	"contrib.go.opencensus.io/exporter/jaeger"
	"contrib.go.opencensus.io/exporter/prometheus"
	"contrib.go.opencensus.io/exporter/stackdriver"
	"contrib.go.opencensus.io/exporter/zipkin"
	"contrib.go.opencensus.io/integrations/ocsql"
	datadog "github.com/DataDog/opencensus-go-exporter-datadog"
	zipkinhttp "github.com/openzipkin/zipkin-go/reporter/http"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/trace"

	"github.com/rllL1/portfolio/config"
	"github.com/rllL1/portfolio/pkg/logger"
)

// InitTracing configures OpenCensus sampling, the trace exporter and the metrics exporters.
// It is a no-op when tracing is disabled.
func InitTracing(cfg *config.TracingConfig, log logger.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	trace.ApplyConfig(trace.Config{
		DefaultSampler: trace.ProbabilitySampler(cfg.SamplingProbability),
	})

	if err := initTraceExporter(cfg, log); err != nil {
		return err
	}
	if err := initMetricsExporters(cfg, log); err != nil {
		return err
	}

	if err := RegisterHTTPServerViews(); err != nil {
		return fmt.Errorf("failed to register HTTP server views: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"trace_exporter":   cfg.TraceExporter,
		"metrics_exporter": cfg.MetricsExporter,
		"sampling":         cfg.SamplingProbability,
	}).Info("OpenCensus initialized")
	return nil
}

func initTraceExporter(cfg *config.TracingConfig, log logger.Logger) error {
	var (
		exporter trace.Exporter
		err      error
	)

	switch cfg.TraceExporter {
	case "jaeger":
		exporter, err = newJaegerExporter(cfg)
	case "zipkin":
		exporter, err = newZipkinExporter(cfg)
	case "stackdriver":
		exporter, err = newStackdriverExporter(cfg, log)
	case "datadog":
		exporter, err = newDatadogExporter(cfg, log)
	case "xray":
		exporter, err = newXRayExporter(cfg)
	case "none", "":
		return nil
	default:
		return fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}
	if err != nil {
		return err
	}

	trace.RegisterExporter(exporter)
	log.WithField("exporter", cfg.TraceExporter).Info("Trace exporter registered")
	return nil
}

// initMetricsExporters accepts a comma separated list, e.g. "prometheus,datadog"
func initMetricsExporters(cfg *config.TracingConfig, log logger.Logger) error {
	if cfg.MetricsExporter == "none" || cfg.MetricsExporter == "" {
		return nil
	}

	for _, name := range strings.Split(cfg.MetricsExporter, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		var (
			exporter view.Exporter
			err      error
		)
		switch name {
		case "prometheus":
			exporter, err = newPrometheusExporter(cfg, log)
		case "stackdriver":
			exporter, err = newStackdriverExporter(cfg, log)
		case "datadog":
			exporter, err = newDatadogExporter(cfg, log)
		default:
			return fmt.Errorf("unsupported metrics exporter: %s", name)
		}
		if err != nil {
			return fmt.Errorf("failed to initialize %s metrics exporter: %w", name, err)
		}

		view.RegisterExporter(exporter)
		log.WithField("exporter", name).Info("Metrics exporter registered")
	}

	return registerCustomViews()
}

// registerCustomViews registers the database views and the portfolio views
func registerCustomViews() error {
	if err := view.Register(ocsql.DefaultViews...); err != nil {
		return fmt.Errorf("failed to register database views: %w", err)
	}
	if err := view.Register(PortfolioViews...); err != nil {
		return fmt.Errorf("failed to register portfolio views: %w", err)
	}
	return nil
}

func newJaegerExporter(cfg *config.TracingConfig) (*jaeger.Exporter, error) {
	if cfg.JaegerEndpoint == "" {
		return nil, fmt.Errorf("jaeger endpoint is required for jaeger exporter")
	}

	je, err := jaeger.NewExporter(jaeger.Options{
		CollectorEndpoint: cfg.JaegerEndpoint,
		ServiceName:       cfg.ServiceName,
		Process: jaeger.Process{
			ServiceName: cfg.ServiceName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create jaeger exporter: %w", err)
	}
	return je, nil
}

func newZipkinExporter(cfg *config.TracingConfig) (*zipkin.Exporter, error) {
	if cfg.ZipkinEndpoint == "" {
		return nil, fmt.Errorf("zipkin endpoint is required for zipkin exporter")
	}

	reporter := zipkinhttp.NewReporter(cfg.ZipkinEndpoint)
	return zipkin.NewExporter(reporter, nil), nil
}

// newStackdriverExporter serves both traces and metrics
func newStackdriverExporter(cfg *config.TracingConfig, log logger.Logger) (*stackdriver.Exporter, error) {
	if cfg.StackdriverProjectID == "" {
		return nil, fmt.Errorf("stackdriver project ID is required for stackdriver exporter")
	}

	se, err := stackdriver.NewExporter(stackdriver.Options{
		ProjectID:    cfg.StackdriverProjectID,
		MetricPrefix: cfg.ServiceName,
		OnError: func(err error) {
			log.WithField("error", err.Error()).Warn("Stackdriver exporter error")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stackdriver exporter: %w", err)
	}
	return se, nil
}

// newDatadogExporter serves both traces and metrics; falls back to AgentEndpoint
func newDatadogExporter(cfg *config.TracingConfig, log logger.Logger) (*datadog.Exporter, error) {
	agentAddr := cfg.DatadogAgentAddress
	if agentAddr == "" {
		agentAddr = cfg.AgentEndpoint
	}
	if agentAddr == "" {
		return nil, fmt.Errorf("datadog agent address is required for datadog exporter")
	}

	options := datadog.Options{
		Service:   cfg.ServiceName,
		TraceAddr: agentAddr,
		StatsAddr: agentAddr,
		Tags:      []string{"service:" + cfg.ServiceName},
		OnError: func(err error) {
			log.WithField("error", err.Error()).Warn("Datadog exporter error")
		},
	}
	if cfg.DatadogAPIKey != "" {
		options.GlobalTags = map[string]interface{}{
			"api_key": cfg.DatadogAPIKey,
		}
	}

	exporter, err := datadog.NewExporter(options)
	if err != nil {
		return nil, fmt.Errorf("failed to create datadog exporter: %w", err)
	}
	return exporter, nil
}

func newXRayExporter(cfg *config.TracingConfig) (*aws.Exporter, error) {
	if cfg.XRayRegion == "" {
		return nil, fmt.Errorf("AWS region is required for X-Ray exporter")
	}

	exporter, err := aws.NewExporter(
		aws.WithRegion(cfg.XRayRegion),
		aws.WithVersion("latest"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS X-Ray exporter: %w", err)
	}
	return exporter, nil
}

// newPrometheusExporter starts a /metrics listener when PrometheusPort is set
func newPrometheusExporter(cfg *config.TracingConfig, log logger.Logger) (*prometheus.Exporter, error) {
	pe, err := prometheus.NewExporter(prometheus.Options{
		Namespace: strings.ReplaceAll(cfg.ServiceName, "-", "_"),
		OnError: func(err error) {
			log.WithField("error", err.Error()).Warn("Prometheus exporter error")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	if cfg.PrometheusPort > 0 {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", pe)

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", cfg.PrometheusPort),
				Handler: mux,
			}

			log.WithField("port", cfg.PrometheusPort).Info("Starting Prometheus metrics server")
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.WithField("error", err.Error()).Error("Prometheus metrics server stopped")
			}
		}()
	}

	return pe, nil
}

// GetHTTPOptions returns the ochttp transport used for outbound calls
func GetHTTPOptions() ochttp.Transport {
	return ochttp.Transport{
		FormatSpanName: func(req *http.Request) string {
			return fmt.Sprintf("%s %s%s", req.Method, req.URL.Host, req.URL.Path)
		},
	}
}

// RegisterHTTPServerViews registers views for HTTP server metrics
func RegisterHTTPServerViews() error {
	return view.Register(
		ochttp.ServerRequestCountView,
		ochttp.ServerLatencyView,
		ochttp.ServerRequestCountByMethod,
		ochttp.ServerResponseCountByStatusCode,
	)
}
