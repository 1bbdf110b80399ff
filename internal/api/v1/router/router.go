package router

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"app/internal/api/v1/handler"
	"app/internal/config"
	"app/internal/middleware"
	"app/internal/pubsub"
	"app/internal/repository"
	"app/internal/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awsmiddleware "github.com/aws/smithy-go/middleware"
	"github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, error) {
	logger.Info().Str("environment", cfg.Environment).Msg("Router initializing")

	// 1. Open DB connection (connection pooling)
	dsn := cfg.DBConnectionString
	// In a development environment, ensure SSL is disabled for local testing.
	// In production the connection string carries its own SSL settings.
	if cfg.Environment == "development" && !strings.Contains(dsn, "sslmode") {
		separator := " "
		if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
			if strings.Contains(dsn, "?") {
				separator = "&"
			} else {
				separator = "?"
			}
		}
		dsn += separator + "sslmode=disable"
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open DB connection")
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		logger.Error().Err(err).Msg("Failed to ping DB")
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)

	// 2. Initialize S3 client for the upload service
	s3Config, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")),
		awsconfig.WithAPIOptions([]func(*awsmiddleware.Stack) error{removeDisableGzip()}),
	)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load S3 config")
		return nil, nil, err
	}
	s3Client := s3.NewFromConfig(s3Config, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3URL)
		o.UsePathStyle = true
	})

	// 3. Resolve the video host API token
	videoToken := cfg.VideoAPIToken
	if videoToken == "" && cfg.VideoAPITokenSecret != "" {
		secrets, err := service.NewSecretManagerService(context.Background(), cfg.GCPProjectID)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to create Secret Manager client")
			return nil, nil, err
		}
		defer secrets.Close()
		videoToken, err = secrets.ResolveSecret(context.Background(), cfg.VideoAPITokenSecret)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to resolve video host API token")
			return nil, nil, err
		}
	}

	// 4. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 5. Initialize the event publisher. Without a GCP project the emitter
	// runs disabled, which keeps local setups working.
	var publisher pubsub.Publisher
	if cfg.GCPProjectID != "" {
		p, err := pubsub.NewPublisher(context.Background(), cfg)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to create Pub/Sub publisher")
			return nil, nil, err
		}
		publisher = p
	} else {
		logger.Warn().Msg("GCP_PROJECT_ID not set; domain events disabled")
	}
	events := service.NewEventEmitter(publisher, cfg.CourseEventTopic, logger)

	// 6. Initialize repositories & services & handlers
	courseRepo := repository.NewCourseRepo(db)
	sectionRepo := repository.NewSectionRepo(db)
	resourceRepo := repository.NewResourceRepo(db)
	assetRepo := repository.NewVideoAssetRepo(db)
	catalogRepo := repository.NewCatalogRepo(db)

	videoHost := service.NewVideoHostClient(cfg.VideoAPIBaseURL, videoToken, logger)
	uploadSvc := service.NewUploadService(s3Client, cfg.S3URL, cfg.S3Bucket, time.Duration(cfg.PresignExpirySec)*time.Second)
	courseSvc := service.NewCourseService(courseRepo, sectionRepo, assetRepo, videoHost, events, logger)
	sectionSvc := service.NewSectionService(sectionRepo, courseRepo, assetRepo, videoHost, events, logger)
	resourceSvc := service.NewResourceService(resourceRepo, sectionRepo, courseRepo)
	catalogSvc := service.NewCatalogService(catalogRepo)

	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)
	sectionHandler := handler.NewSectionHandler(sectionSvc, validate, logger)
	resourceHandler := handler.NewResourceHandler(resourceSvc, validate, logger)
	catalogHandler := handler.NewCatalogHandler(catalogSvc, logger)
	uploadHandler := handler.NewUploadHandler(uploadSvc, validate, logger)

	// 7. Initialize middleware
	authMiddleware := middleware.AuthMiddleware(cfg.JWTKeyMaterial, logger)

	// 8. Create ServeMux router
	apiV1Mux := http.NewServeMux()
	courseHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	sectionHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	resourceHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	catalogHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	uploadHandler.RegisterRoutes(apiV1Mux, authMiddleware)

	mux := http.NewServeMux()
	mux.Handle("/v1/", http.StripPrefix("/v1", apiV1Mux))

	// Swagger documentation
	mux.HandleFunc("/swagger/swagger.json", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger/swagger.json")
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	// 9. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(logger)(c.Handler(mux)), db, nil
}

// removeDisableGzip is a workaround for S3 signature errors with some
// S3-compatible services. See: https://github.com/supabase/storage/issues/577
func removeDisableGzip() func(*awsmiddleware.Stack) error {
	return func(stack *awsmiddleware.Stack) error {
		// Only remove the middleware if it exists; presign operations may
		// inspect the stack without it.
		if _, ok := stack.Finalize.Get("DisableAcceptEncodingGzip"); ok {
			_, err := stack.Finalize.Remove("DisableAcceptEncodingGzip")
			return err
		}
		return nil
	}
}
