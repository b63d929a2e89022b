package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"

	"github.com/sbilibin2017/prompt-gallery/internal/config"
	"github.com/sbilibin2017/prompt-gallery/internal/facades"
	"github.com/sbilibin2017/prompt-gallery/internal/logger"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
	"github.com/sbilibin2017/prompt-gallery/internal/repositories"
	"github.com/sbilibin2017/prompt-gallery/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ArtworkSource reads artworks straight from the database.
type ArtworkSource interface {
	ListArtworks(ctx context.Context) ([]models.Artwork, error)
	GetByID(ctx context.Context, id string) (*models.Artwork, error)
}

// Moderator applies moderation actions.
type Moderator interface {
	Approve(ctx context.Context, id string) (*models.Artwork, error)
	Reject(ctx context.Context, id string, confirmed bool) (*models.Artwork, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

// Exporter renders email submissions as CSV.
type Exporter interface {
	Export(ctx context.Context) (filename string, data []byte, err error)
}

type app struct {
	artworks  ArtworkSource
	moderator Moderator
	exporter  Exporter
	copy      func(string) error
	close     func() error
}

type appOpener func(ctx context.Context, configPath string) (*app, error)

// openApp connects to Postgres and, when configured, Kafka so that running
// servers pick up the changes.
func openApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := logger.Initialize("error"); err != nil {
		return nil, err
	}
	if cfg.PostgresHost == "" {
		return nil, fmt.Errorf("POSTGRES_HOST is not set: %w", services.ErrNotConfigured)
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("postgreSQL connection error: %w", err)
	}
	closers := []func() error{db.Close}

	var writer facades.KafkaWriter
	if cfg.KafkaEnabled() {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.Hash{},
		}
		writer = w
		closers = append([]func() error{w.Close}, closers...)
	}

	readRepo := repositories.NewArtworkReadRepository(db)
	writeRepo := repositories.NewArtworkWriteRepository(db, func(context.Context) *sqlx.Tx { return nil })
	emailRepo := repositories.NewEmailRepository(db)

	return &app{
		artworks:  readRepo,
		moderator: services.NewModerationService(readRepo, writeRepo, nil, facades.NewArtworkEventsPublisher(writer)),
		exporter:  services.NewExportService(emailRepo),
		copy:      clipboardCopy,
		close: func() error {
			for _, c := range closers {
				if err := c(); err != nil {
					return err
				}
			}
			return nil
		},
	}, nil
}

func newRootCmd(open appOpener) *cobra.Command {
	var (
		configPath string
		a          *app
	)

	root := &cobra.Command{
		Use:          "galleryctl",
		Short:        "Operate the prompt gallery from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = open(cmd.Context(), configPath)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a == nil || a.close == nil {
				return nil
			}
			return a.close()
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")

	get := func() *app { return a }
	root.AddCommand(
		newListCmd(get),
		newApproveCmd(get),
		newRejectCmd(get),
		newDeleteCmd(get),
		newExportEmailsCmd(get),
		newPromptCmd(get),
	)
	return root
}
