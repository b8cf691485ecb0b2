package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neocodez/portfolio/config"
	"github.com/neocodez/portfolio/controllers"
	"github.com/neocodez/portfolio/database"
	"github.com/neocodez/portfolio/jobs"
	"github.com/neocodez/portfolio/logger"
	"github.com/neocodez/portfolio/mailer"
	"github.com/neocodez/portfolio/otp"
	"github.com/neocodez/portfolio/repositories"
	"github.com/neocodez/portfolio/services"
	"github.com/neocodez/portfolio/tokens"
	"github.com/neocodez/portfolio/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("api", "info", false).Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New("api", cfg.LogLevel, !cfg.IsProduction())
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		controllers.ShowErrorDetails = false
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	client, err := database.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	db := client.Database(cfg.Mongo.Database)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	usersCol := db.Collection(database.UsersCollection)
	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		created, err := utils.SeedAdminUser(ctx, usersCol, cfg.Admin.Email, cfg.Admin.Name, cfg.Admin.Password)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed admin user")
		}
		if created {
			log.Info().Str("email", cfg.Admin.Email).Msg("admin user created")
		}
	}

	users := repositories.NewUserRepository(usersCol)
	projects := repositories.NewProjectRepository(db.Collection(database.ProjectsCollection))
	blogs := repositories.NewBlogRepository(db.Collection(database.BlogsCollection))
	guides := repositories.NewGuideRepository(db.Collection(database.GuidesCollection))
	contacts := repositories.NewContactRepository(db.Collection(database.ContactsCollection))

	sender := newMailSender(cfg, log)

	store, err := openObjectStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to open object storage")
	}
	if store != nil {
		defer store.Close()
	}

	app := &application{
		auth: services.NewAuthService(
			users,
			tokens.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.ResetTokenSecret),
			otp.NewGenerator(),
			sender,
			cfg.FrontendURL,
		),
		projects: services.NewProjectService(projects),
		blogs:    services.NewBlogService(blogs, users),
		guides:   services.NewGuideService(guides, projects, users),
		contact:  services.NewContactService(contacts, sender, contactInbox(cfg)),
		store:    store,
		files: utils.NewFileValidator(
			cfg.Storage.AllowedExtensions,
			cfg.Storage.AllowedMimeTypes,
			cfg.Storage.MaxUploadSizeMB,
		),
	}

	sweeper := jobs.NewCodeSweeper(users, log)
	if err := sweeper.Start(cfg.Jobs.CodeSweepSchedule); err != nil {
		log.Fatal().Err(err).Msg("failed to start expired code sweeper")
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           newRouter(cfg, log, app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("address", cfg.Address).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	sweeper.Stop(shutdownCtx)
}

// newMailSender falls back to logging mails when no SMTP host is configured.
func newMailSender(cfg *config.Config, log *logger.Logger) mailer.Sender {
	if cfg.SMTP.Host == "" {
		log.Warn().Msg("SMTP_HOST not set, emails will only be logged")
		return mailer.NewLogSender(log)
	}
	return mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		Timeout:  cfg.SMTP.Timeout,
	})
}

func contactInbox(cfg *config.Config) string {
	switch {
	case cfg.SMTP.ContactEmail != "":
		return cfg.SMTP.ContactEmail
	case cfg.SMTP.From != "":
		return cfg.SMTP.From
	default:
		return cfg.Admin.Email
	}
}

// openObjectStore returns a nil store for the "none" driver.
func openObjectStore(ctx context.Context, s config.Storage) (utils.ObjectStore, error) {
	switch s.Driver {
	case config.StorageGCS:
		store, err := utils.NewGCSStore(ctx, s.GCSBucket, s.CredentialsFile)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StorageR2:
		store, err := utils.NewR2Store(ctx, utils.R2Options{
			Bucket:          s.R2Bucket,
			AccessKeyID:     s.R2AccessKeyID,
			SecretAccessKey: s.R2SecretAccessKey,
			Endpoint:        s.R2Endpoint,
			PublicDomain:    s.R2PublicDomain,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, nil
	}
}
