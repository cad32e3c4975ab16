package config

import (
	"fmt"

	"applicant-corrector/application/usecases"
	"applicant-corrector/domain/interfaces"
	"applicant-corrector/infrastructure/cms"
	"applicant-corrector/infrastructure/dataset"
	"applicant-corrector/infrastructure/logger"
	"github.com/google/uuid"
)

// Container represents the dependency injection container
type Container struct {
	Config *Config

	// RunID tags every log line of one invocation.
	RunID string

	// Infrastructure
	Logger        interfaces.Logger
	CMSClient     interfaces.CMSClient
	DatasetLoader interfaces.DatasetLoader

	// Use Cases
	UpdateOccupationsUseCase interfaces.UpdateOccupationsUseCase
	AddCommentsUseCase       interfaces.AddCommentsUseCase
}

// NewContainer creates a new dependency injection container
func NewContainer(config *Config) (*Container, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}

	container := &Container{
		Config: config,
		RunID:  uuid.NewString(),
	}

	// Initialize logger
	container.Logger = logger.NewLogrusLogger(config.Log.Level).
		WithFields(map[string]interface{}{"run_id": container.RunID})

	// Initialize CMS client
	container.CMSClient = cms.NewClient(cms.ClientConfig{
		BaseURL: config.API.BaseURL,
		Token:   config.Authorization.JWTToken,
		Timeout: config.API.Timeout(),
	}, container.Logger)

	// Initialize dataset loader
	container.DatasetLoader = dataset.NewCSVLoader(container.Logger)

	// Initialize use cases
	container.initUseCases()

	return container, nil
}

// initUseCases initializes use cases
func (c *Container) initUseCases() {
	c.UpdateOccupationsUseCase = usecases.NewUpdateOccupationsUseCase(
		c.CMSClient,
		c.DatasetLoader,
		c.Logger,
	)

	c.AddCommentsUseCase = usecases.NewAddCommentsUseCase(
		c.CMSClient,
		c.DatasetLoader,
		c.Logger,
	)
}

// Close closes all resources
func (c *Container) Close() error {
	if c.CMSClient != nil {
		if err := c.CMSClient.Close(); err != nil {
			c.Logger.Error("Failed to close CMS client", "error", err)
		}
	}

	return nil
}
