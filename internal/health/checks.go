package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/florista/storefront/internal/scheduler"
	"github.com/florista/storefront/pkg/imagegen"
	"github.com/hellofresh/health-go/v5"
)

type Endpoints struct {
	Scheduler *scheduler.Scheduler
	Generator imagegen.Generator
}

func NewHealthHandler(endpoints *Endpoints) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "florista-storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "scheduler",
				Timeout:   time.Second,
				SkipOnErr: false,
				Check: func(_ context.Context) error {
					if endpoints.Scheduler == nil || !endpoints.Scheduler.Running() {
						return errors.New("order scheduler is not running")
					}

					return nil
				},
			},
			health.Config{
				Name:      "image-generator",
				Timeout:   5 * time.Second,
				SkipOnErr: true,
				Check: func(ctx context.Context) error {
					if endpoints.Generator == nil {
						return errors.New("image generator is not initialized")
					}

					if _, err := endpoints.Generator.Generate(ctx, imagegen.Request{FlowerNames: []string{"healthcheck"}}); err != nil {
						return fmt.Errorf("image generator probe failed: %w", err)
					}

					return nil
				},
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
