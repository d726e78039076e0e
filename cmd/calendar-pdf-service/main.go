package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/calendar-pdf-service/internal/auth"
	"github.com/username/calendar-pdf-service/internal/config"
	"github.com/username/calendar-pdf-service/internal/drive"
	"github.com/username/calendar-pdf-service/internal/pdf"
	"github.com/username/calendar-pdf-service/internal/server"
)

const shutdownTimeout = 15 * time.Second

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "calendar-pdf-service",
		Short: "Monthly calendar PDF generator",
		Long:  "Render monthly calendars with day overlays to PDF and upload them to Google Drive",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg.ExpandEnvVars()

			srv, err := initializeServer(cfg)
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Run()
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-quit:
				logger.Info("Received signal, shutting down",
					zap.String("signal", sig.String()))
			}

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown failed: %w", err)
			}

			return <-errCh
		},
	}
}

func initializeServer(cfg *config.Config) (*server.Server, error) {
	verifier := auth.NewGoogleVerifier(cfg.Auth.GoogleClientID)

	renderer := pdf.NewChromeRenderer(
		cfg.Renderer.ChromePath,
		cfg.Renderer.GetRenderTimeout(),
		logger,
	)

	uploader, err := drive.NewDriveUploader(
		context.Background(),
		cfg.Drive.ShareUploads,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Drive uploader: %w", err)
	}

	logger.Info("Service initialized",
		zap.Int("port", cfg.Server.Port),
		zap.Strings("allowed_domains", cfg.Auth.AllowedDomains),
		zap.String("default_folder_id", cfg.Drive.DefaultFolderID))

	return server.New(cfg, verifier, renderer, uploader, logger), nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
