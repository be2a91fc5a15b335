package app

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"contrib.go.opencensus.io/integrations/ocsql"

	"github.com/rllL1/portfolio/config"
	"github.com/rllL1/portfolio/internal/database"
	"github.com/rllL1/portfolio/internal/domain"
	httpHandler "github.com/rllL1/portfolio/internal/http"
	"github.com/rllL1/portfolio/internal/http/middleware"
	"github.com/rllL1/portfolio/internal/migrations"
	"github.com/rllL1/portfolio/internal/repository"
	"github.com/rllL1/portfolio/internal/service"
	"github.com/rllL1/portfolio/internal/service/realtime"
	"github.com/rllL1/portfolio/pkg/cache"
	"github.com/rllL1/portfolio/pkg/logger"
	"github.com/rllL1/portfolio/pkg/mailer"
	"github.com/rllL1/portfolio/pkg/ratelimiter"
	"github.com/rllL1/portfolio/pkg/supabase"
	"github.com/rllL1/portfolio/pkg/tracing"
)

// Rate limit policies for the public endpoints; chat comes from config
const (
	liveChatRateLimit  = 20
	liveChatRateWindow = time.Minute
	contactRateLimit   = 5
	contactRateWindow  = time.Hour
	signInRateLimit    = 10
	signInRateWindow   = 15 * time.Minute

	portfolioCacheTTL = 10 * time.Minute
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error

	// Getters for app components accessed in tests
	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetMux() *http.ServeMux
	GetDB() *sql.DB
	GetMailer() mailer.Mailer
	GetHub() *realtime.Hub

	// Server status methods
	IsServerCreated() bool
	WaitForServerStart(ctx context.Context) bool

	// Methods for initialization steps
	InitDB() error
	InitMailer() error
	InitTracing() error
	InitRepositories() error
	InitServices() error
	InitHandlers() error

	// Graceful shutdown methods
	SetShutdownTimeout(timeout time.Duration)
	GetActiveRequestCount() int64
	GetShutdownContext() context.Context
}

// App encapsulates the application dependencies and configuration
type App struct {
	config      *config.Config
	logger      logger.Logger
	db          *sql.DB
	stopDBStats func()
	mailer      mailer.Mailer

	// Repositories
	projectRepo        domain.ProjectRepository
	skillRepo          domain.SkillRepository
	timelineRepo       domain.TimelineRepository
	siteRepo           domain.SiteRepository
	contactMessageRepo domain.ContactMessageRepository
	chatMessageRepo    domain.ChatMessageRepository

	// Services
	authProvider          domain.AuthProvider
	textGenerator         domain.TextGenerator
	adminAuthService      *service.AdminAuthService
	projectService        *service.ProjectService
	skillService          *service.SkillService
	timelineService       *service.TimelineService
	siteService           *service.SiteService
	contactMessageService *service.ContactMessageService
	dashboardService      *service.DashboardService
	assistantService      *service.AssistantService
	liveChatService       *service.LiveChatService
	mediaService          *service.MediaService
	portfolioService      *service.PortfolioService

	// Shared infrastructure
	presenceCache  *cache.InMemoryCache[time.Time]
	snapshotCache  *cache.InMemoryCache[*domain.Portfolio]
	pageCache      *cache.InMemoryCache[string]
	rateLimiter    *ratelimiter.RateLimiter
	hub            *realtime.Hub
	listener       *realtime.PGListener
	startListener  bool
	authMiddleware *middleware.AuthConfig

	// HTTP handlers
	mux            *http.ServeMux
	trustedProxies []*net.IPNet
	server         *http.Server

	// Server synchronization
	serverMu      sync.RWMutex
	serverStarted chan struct{}

	// Graceful shutdown management
	shutdownCtx     context.Context
	shutdownCancel  context.CancelFunc
	activeRequests  int64          // atomic counter for active HTTP requests
	requestWg       sync.WaitGroup // wait group for active requests
	shutdownTimeout time.Duration  // configurable shutdown timeout
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database.
// No LISTEN connection is opened for an injected database.
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
		a.startListener = false
	}
}

// WithMockMailer configures the app to use a mock mailer
func WithMockMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// WithAuthProvider replaces the hosted auth client
func WithAuthProvider(provider domain.AuthProvider) AppOption {
	return func(a *App) {
		a.authProvider = provider
	}
}

// WithTextGenerator replaces the generator built from the chat config
func WithTextGenerator(generator domain.TextGenerator) AppOption {
	return func(a *App) {
		a.textGenerator = generator
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	app := &App{
		config:          cfg,
		logger:          logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:             http.NewServeMux(),
		serverStarted:   make(chan struct{}),
		startListener:   true,
		shutdownCtx:     shutdownCtx,
		shutdownCancel:  shutdownCancel,
		shutdownTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitTracing initializes OpenCensus tracing
func (a *App) InitTracing() error {
	if err := tracing.InitTracing(&a.config.Tracing, a.logger); err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	return nil
}

// InitDB connects to the project database, bootstraps the schema and runs migrations
func (a *App) InitDB() error {
	if a.db != nil {
		return nil
	}

	dsn := database.GetDSN(&a.config.Database)
	a.logger.WithField("dsn", database.MaskDSN(dsn)).Info("Connecting to database")

	// If tracing is enabled, wrap the postgres driver
	driverName := "postgres"
	if a.config.Tracing.Enabled {
		var err error
		driverName, err = ocsql.Register(driverName, ocsql.WithAllTraceOptions())
		if err != nil {
			return fmt.Errorf("failed to register opencensus sql driver: %w", err)
		}
		a.logger.Info("Database driver wrapped with OpenCensus tracing")
	}

	db, err := database.Open(driverName, dsn)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := database.InitializeDatabase(ctx, db); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	migrationManager := migrations.NewManager(a.logger)
	if err := migrationManager.RunMigrations(ctx, a.config, db); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := database.SeedDatabase(ctx, db); err != nil {
		db.Close()
		return err
	}

	if a.config.Tracing.Enabled {
		a.stopDBStats = ocsql.RecordStats(db, 10*time.Second)
	}

	a.db = db
	return nil
}

// InitMailer initializes the owner notification mailer
func (a *App) InitMailer() error {
	// Skip if mailer already set (e.g., by mock)
	if a.mailer != nil {
		return nil
	}

	if a.config.IsDevelopment() || a.config.SMTP.Host == "" {
		a.mailer = mailer.NewConsoleMailer()
		a.logger.Info("Using console mailer")
		return nil
	}

	a.mailer = mailer.NewSMTPMailer(&mailer.Config{
		SMTPHost:     a.config.SMTP.Host,
		SMTPPort:     a.config.SMTP.Port,
		SMTPUsername: a.config.SMTP.Username,
		SMTPPassword: a.config.SMTP.Password,
		FromEmail:    a.config.SMTP.FromEmail,
		FromName:     a.config.SMTP.FromName,
		APIEndpoint:  a.config.APIEndpoint,
	}, a.logger)
	a.logger.WithField("smtp_host", a.config.SMTP.Host).Info("Using SMTP mailer")

	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database must be initialized before repositories")
	}

	a.projectRepo = repository.NewProjectRepository(a.db)
	a.skillRepo = repository.NewSkillRepository(a.db)
	a.timelineRepo = repository.NewTimelineRepository(a.db)
	a.siteRepo = repository.NewSiteRepository(a.db)
	a.contactMessageRepo = repository.NewContactMessageRepository(a.db)
	a.chatMessageRepo = repository.NewChatMessageRepository(a.db)

	return nil
}

// InitServices initializes all application services and starts the change feed
func (a *App) InitServices() error {
	if a.projectRepo == nil {
		return fmt.Errorf("repositories must be initialized before services")
	}

	a.rateLimiter = ratelimiter.NewRateLimiter()
	a.rateLimiter.SetPolicy(ratelimiter.NamespaceChat, a.config.Chat.RateLimit, a.config.Chat.RateWindow)
	a.rateLimiter.SetPolicy(ratelimiter.NamespaceLiveChat, liveChatRateLimit, liveChatRateWindow)
	a.rateLimiter.SetPolicy(ratelimiter.NamespaceContact, contactRateLimit, contactRateWindow)
	a.rateLimiter.SetPolicy(ratelimiter.NamespaceSignIn, signInRateLimit, signInRateWindow)

	a.presenceCache = cache.NewInMemoryCache[time.Time](time.Minute)
	presence := service.NewPresenceTracker(a.presenceCache, a.config.AdminPresenceTTL)
	a.authMiddleware = middleware.NewAuthMiddleware(a.config.Supabase.JWTSecret, presence)

	if a.authProvider == nil {
		httpClient := tracing.WrapHTTPClient(&http.Client{Timeout: 15 * time.Second})
		a.authProvider = supabase.NewAuthClient(a.config.Supabase.URL, a.config.Supabase.AnonKey, httpClient, a.logger)
	}
	a.adminAuthService = service.NewAdminAuthService(a.authProvider, presence, a.logger)

	if a.textGenerator == nil {
		generator, err := service.NewTextGenerator(context.Background(), a.config.Chat, service.GeneratorOptions{})
		if err != nil {
			return fmt.Errorf("failed to create text generator: %w", err)
		}
		if generator == nil {
			a.logger.WithField("provider", a.config.Chat.Provider).Warn("Chat API key not configured, chat endpoints will report an error")
		}
		a.textGenerator = generator
	}
	a.assistantService = service.NewAssistantService(a.textGenerator, a.config.Chat.Owner, a.logger)

	linkPreview := service.NewLinkPreviewService(nil, a.logger)
	a.projectService = service.NewProjectService(a.projectRepo, linkPreview, a.logger)
	a.skillService = service.NewSkillService(a.skillRepo, a.logger)
	a.timelineService = service.NewTimelineService(a.timelineRepo, a.logger)
	a.siteService = service.NewSiteService(a.siteRepo, a.logger)

	a.contactMessageService = service.NewContactMessageService(a.contactMessageRepo, a.mailer, a.config.ContactNotifyEmail, a.logger)
	a.dashboardService = service.NewDashboardService(a.projectRepo, a.skillRepo, a.contactMessageRepo, a.chatMessageRepo, a.logger)

	a.liveChatService = service.NewLiveChatService(service.LiveChatServiceConfig{
		Repo:          a.chatMessageRepo,
		Assistant:     a.assistantService,
		Presence:      presence,
		Mailer:        a.mailer,
		NotifyTo:      a.config.ContactNotifyEmail,
		FallbackReply: a.config.Chat.FallbackReply,
		Logger:        a.logger,
	})

	mediaService, err := service.NewMediaService(a.config.Storage, a.logger)
	if err != nil {
		return err
	}
	if !a.config.Storage.IsConfigured() {
		a.logger.Warn("Object storage not configured, media uploads are disabled")
	}
	a.mediaService = mediaService

	a.snapshotCache = cache.NewInMemoryCache[*domain.Portfolio](time.Minute)
	a.pageCache = cache.NewInMemoryCache[string](time.Minute)
	a.portfolioService = service.NewPortfolioService(service.PortfolioServiceConfig{
		Projects: a.projectRepo,
		Skills:   a.skillRepo,
		Timeline: a.timelineRepo,
		Site:     a.siteRepo,
		Snapshot: a.snapshotCache,
		Pages:    a.pageCache,
		TTL:      portfolioCacheTTL,
		Logger:   a.logger,
	})

	a.hub = realtime.NewHub(a.logger)
	a.hub.OnChange(a.portfolioService.HandleChange)

	if a.startListener {
		a.listener = realtime.NewPGListener(database.GetListenerDSN(&a.config.Database), a.hub, a.logger)
		if err := a.listener.Start(a.shutdownCtx); err != nil {
			// The webhook route still feeds the hub, so a failed LISTEN is not fatal
			a.logger.WithField("error", err.Error()).Error("Failed to start database change listener")
			a.listener = nil
		}
	}

	return nil
}

// InitHandlers registers every route on a fresh mux
func (a *App) InitHandlers() error {
	if a.portfolioService == nil {
		return fmt.Errorf("services must be initialized before handlers")
	}

	trusted, err := middleware.ParseTrustedProxies(a.config.TrustedProxies)
	if err != nil {
		return fmt.Errorf("failed to parse TRUSTED_PROXIES: %w", err)
	}
	a.trustedProxies = trusted

	// Create a new ServeMux to avoid route conflicts on restart
	a.mux = http.NewServeMux()

	httpHandler.NewProjectHandler(a.projectService, a.authMiddleware, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewSkillHandler(a.skillService, a.authMiddleware, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewTimelineHandler(a.timelineService, a.authMiddleware, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewSiteHandler(a.siteService, a.authMiddleware, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewContactMessageHandler(a.contactMessageService, a.authMiddleware, a.rateLimiter, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewDashboardHandler(a.dashboardService, a.authMiddleware, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewAuthHandler(a.adminAuthService, a.authMiddleware, a.rateLimiter, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewChatHandler(a.assistantService, a.rateLimiter, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewLiveChatHandler(a.liveChatService, a.authMiddleware, a.rateLimiter, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewRealtimeHandler(a.hub, a.authMiddleware, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewDatabaseWebhookHandler(a.hub, a.config.Supabase.WebhookSecret, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewMediaHandler(a.mediaService, a.authMiddleware, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewPortfolioHandler(a.portfolioService, a.logger).RegisterRoutes(a.mux)

	a.mux.HandleFunc("/healthz", a.handleHealth)

	return nil
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	body := map[string]interface{}{
		"status":               "ok",
		"version":              a.config.Version,
		"realtime_subscribers": a.hub.SubscriberCount(),
	}
	if a.db != nil {
		if err := a.db.PingContext(r.Context()); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "database unavailable"
		}
	}
	httpHandler.WriteJSON(w, status, body)
}

// Handler wraps the mux with the shutdown, tracing and CORS middleware
func (a *App) Handler() http.Handler {
	var handler http.Handler = a.mux

	// Apply graceful shutdown middleware first (outermost)
	handler = a.gracefulShutdownMiddleware(handler)
	handler = middleware.RealIP(a.trustedProxies)(handler)

	if a.config.Tracing.Enabled {
		handler = middleware.TracingMiddleware(handler)
		a.logger.Info("OpenCensus tracing middleware enabled")
	}

	return middleware.CORSMiddleware(a.config.CORSAllowOrigins)(handler)
}

// Start starts the HTTP server
func (a *App) Start() error {
	handler := a.Handler()

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).
		WithField("api_endpoint", a.config.APIEndpoint).
		Info(fmt.Sprintf("Server starting on %s", addr))

	a.serverMu.Lock()
	// Close the existing channel if it exists
	if a.serverStarted != nil {
		close(a.serverStarted)
	}
	a.serverStarted = make(chan struct{})

	a.server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Get a reference to the channel before unlocking
	serverStarted := a.serverStarted
	a.serverMu.Unlock()

	close(serverStarted)

	if a.config.Server.SSL.Enabled {
		a.logger.WithField("cert_file", a.config.Server.SSL.CertFile).Info("SSL enabled")
		return a.server.ListenAndServeTLS(a.config.Server.SSL.CertFile, a.config.Server.SSL.KeyFile)
	}

	return a.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	// Signal shutdown to all components
	a.shutdownCancel()

	// Open SSE streams never finish on their own
	if a.hub != nil {
		a.hub.Close()
	}

	a.serverMu.RLock()
	server := a.server
	a.serverMu.RUnlock()

	if server == nil {
		a.logger.Info("No server to shutdown")
		return a.cleanupResources(ctx)
	}

	activeCount := a.getActiveRequestCount()
	a.logger.WithField("active_requests", activeCount).Info("Active requests at shutdown start")

	shutdownTimeout := a.shutdownTimeout
	if deadline, ok := ctx.Deadline(); ok {
		// Use the provided context deadline if it's sooner than our default timeout
		if remaining := time.Until(deadline); remaining < shutdownTimeout {
			shutdownTimeout = remaining - time.Second
			if shutdownTimeout < 0 {
				shutdownTimeout = 0
			}
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	serverShutdownDone := make(chan error, 1)
	go func() {
		a.logger.WithField("timeout", shutdownTimeout).Info("Starting HTTP server shutdown")
		serverShutdownDone <- server.Shutdown(shutdownCtx)
	}()

	requestsDone := make(chan struct{})
	go func() {
		a.requestWg.Wait()
		close(requestsDone)
	}()

	var shutdownErr error

	select {
	case err := <-serverShutdownDone:
		shutdownErr = err
		a.logger.Info("HTTP server shutdown completed")
	case <-shutdownCtx.Done():
		a.logger.Warn("Shutdown timeout reached")
		shutdownErr = fmt.Errorf("shutdown timeout exceeded")
	}

	if shutdownErr == nil {
		select {
		case <-requestsDone:
		case <-time.After(2 * time.Second):
			if activeCount := a.getActiveRequestCount(); activeCount > 0 {
				a.logger.WithField("active_requests", activeCount).Warn("Some requests still active, proceeding with shutdown")
			}
		}
	}

	if cleanupErr := a.cleanupResources(ctx); cleanupErr != nil {
		a.logger.WithField("error", cleanupErr.Error()).Error("Error during resource cleanup")
		if shutdownErr == nil {
			shutdownErr = cleanupErr
		}
	}

	if shutdownErr != nil {
		a.logger.WithField("error", shutdownErr.Error()).Error("Graceful shutdown completed with errors")
	} else {
		a.logger.Info("Graceful shutdown completed successfully")
	}

	return shutdownErr
}

// cleanupResources stops background workers and closes the database
func (a *App) cleanupResources(_ context.Context) error {
	a.logger.Info("Cleaning up resources...")

	if a.listener != nil {
		a.logger.Info("Stopping database change listener")
		a.listener.Stop()
	}
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}
	if a.presenceCache != nil {
		a.presenceCache.Stop()
	}
	if a.snapshotCache != nil {
		a.snapshotCache.Stop()
	}
	if a.pageCache != nil {
		a.pageCache.Stop()
	}

	if a.stopDBStats != nil {
		a.stopDBStats()
	}

	if a.db != nil {
		a.logger.Info("Closing database connection")
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err.Error()).Error("Error closing database connection")
			return err
		}
	}

	a.logger.Info("Resource cleanup completed")
	return nil
}

// IsServerCreated safely checks if the server has been created
func (a *App) IsServerCreated() bool {
	a.serverMu.RLock()
	defer a.serverMu.RUnlock()
	return a.server != nil
}

// WaitForServerStart waits for the server to be created and initialized.
// Returns true if the server started successfully, false if context expired.
func (a *App) WaitForServerStart(ctx context.Context) bool {
	a.serverMu.RLock()
	started := a.serverStarted
	a.serverMu.RUnlock()

	if started == nil {
		a.logger.Error("serverStarted channel is nil - server initialization error")
		<-ctx.Done()
		return false
	}

	select {
	case <-started:
		return a.IsServerCreated()
	case <-ctx.Done():
		return false
	}
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting portfolio API")

	if err := a.InitTracing(); err != nil {
		return err
	}

	if err := a.InitDB(); err != nil {
		return err
	}

	if err := a.InitMailer(); err != nil {
		return err
	}

	if err := a.InitRepositories(); err != nil {
		return err
	}

	if err := a.InitServices(); err != nil {
		return err
	}

	if err := a.InitHandlers(); err != nil {
		return err
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the app's HTTP multiplexer
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the app's database connection
func (a *App) GetDB() *sql.DB {
	return a.db
}

// GetMailer returns the app's mailer
func (a *App) GetMailer() mailer.Mailer {
	return a.mailer
}

// GetHub returns the change hub fed by the listener and the database webhook
func (a *App) GetHub() *realtime.Hub {
	return a.hub
}

func (a *App) incrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, 1)
	a.requestWg.Add(1)
}

func (a *App) decrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, -1)
	a.requestWg.Done()
}

func (a *App) getActiveRequestCount() int64 {
	return atomic.LoadInt64(&a.activeRequests)
}

// GetActiveRequestCount returns the current number of active requests
func (a *App) GetActiveRequestCount() int64 {
	return a.getActiveRequestCount()
}

// SetShutdownTimeout sets the timeout for graceful shutdown
func (a *App) SetShutdownTimeout(timeout time.Duration) {
	a.shutdownTimeout = timeout
	a.logger.WithField("shutdown_timeout", timeout.String()).Info("Shutdown timeout configured")
}

// GetShutdownContext returns the shutdown context for components that need to watch for shutdown
func (a *App) GetShutdownContext() context.Context {
	return a.shutdownCtx
}

func (a *App) isShuttingDown() bool {
	select {
	case <-a.shutdownCtx.Done():
		return true
	default:
		return false
	}
}

// gracefulShutdownMiddleware rejects new requests once shutdown starts and tracks the active ones
func (a *App) gracefulShutdownMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.isShuttingDown() {
			httpHandler.WriteJSONError(w, "Server is shutting down", http.StatusServiceUnavailable)
			return
		}

		a.incrementActiveRequests()
		defer a.decrementActiveRequests()

		next.ServeHTTP(w, r)
	})
}

// Ensure App implements AppInterface
var _ AppInterface = (*App)(nil)
