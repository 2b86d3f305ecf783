package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/config"
)

// Client wraps the Cloud Firestore connection
type Client struct {
	client *firestore.Client
	config *config.Firestore
	log    *zap.Logger
}

// NewClient creates a new Firestore client with the given configuration.
// With no credentials file configured, application default credentials
// are used.
func NewClient(ctx context.Context, config *config.Firestore, log *zap.Logger) (*Client, error) {
	log.Info("Connecting to Firestore",
		zap.String("project_id", config.ProjectID),
		zap.Bool("credentials_file", config.CredentialsFile != ""))

	var opts []option.ClientOption
	if config.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, config.ProjectID, opts...)
	if err != nil {
		log.Error("Failed to create Firestore client", zap.Error(err))
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	log.Info("Firestore client created successfully")

	return &Client{client: client, config: config, log: log}, nil
}

// Conn returns the underlying Firestore client
func (c *Client) Conn() *firestore.Client {
	return c.client
}

// Close closes the Firestore connection
func (c *Client) Close() error {
	c.log.Info("Closing Firestore client")
	if err := c.client.Close(); err != nil {
		c.log.Error("Error closing Firestore client", zap.Error(err))
		return err
	}
	return nil
}
