package service

import (
	"context"

	"github.com/florista/storefront/internal/errors"
	"github.com/florista/storefront/internal/metrics"
	"github.com/florista/storefront/internal/models"
	repository "github.com/florista/storefront/internal/repositories"
	"github.com/florista/storefront/internal/utils"
	"github.com/florista/storefront/pkg/imagegen"
	"github.com/google/uuid"
)

type ComposerService interface {
	State(ctx context.Context, sessionID string) (*models.ComposerState, error)
	ToggleFlower(ctx context.Context, sessionID string, flowerID int64) (*models.ComposerState, error)
	Generate(ctx context.Context, sessionID string, req *models.GenerateBouquetRequest) (*models.ComposerState, error)
	AddToCart(ctx context.Context, sessionID string) (*models.Cart, error)
}

// ComposerConfig carries the pricing and naming knobs for composed bouquets.
type ComposerConfig struct {
	PriceMultiplier float64
	BouquetName     string
}

type composerService struct {
	sessions  *repository.SessionRepository
	catalog   *repository.CatalogRepository
	cart      CartService
	generator imagegen.Generator
	cfg       ComposerConfig
}

func NewComposerService(sessions *repository.SessionRepository, catalog *repository.CatalogRepository, cart CartService, generator imagegen.Generator, cfg ComposerConfig) ComposerService {
	return &composerService{
		sessions:  sessions,
		catalog:   catalog,
		cart:      cart,
		generator: generator,
		cfg:       cfg,
	}
}

func (s *composerService) State(ctx context.Context, sessionID string) (*models.ComposerState, error) {

	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return s.composerState(state), nil
}

// ToggleFlower has selection-set semantics: picking an already selected
// flower deselects it.
func (s *composerService) ToggleFlower(ctx context.Context, sessionID string, flowerID int64) (*models.ComposerState, error) {

	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	removed := false

	for i, id := range state.SelectedFlowers {
		if id == flowerID {
			state.SelectedFlowers = append(state.SelectedFlowers[:i], state.SelectedFlowers[i+1:]...)
			removed = true

			break
		}
	}

	if !removed {
		state.SelectedFlowers = append(state.SelectedFlowers, flowerID)
	}

	if err := s.sessions.Save(ctx, state); err != nil {
		return nil, err
	}

	return s.composerState(state), nil
}

// Generate renders a preview for the current selection. With nothing
// selected there is nothing to render: state is left untouched and the
// caller gets a bad-request error.
func (s *composerService) Generate(ctx context.Context, sessionID string, req *models.GenerateBouquetRequest) (*models.ComposerState, error) {

	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(state.SelectedFlowers) == 0 {
		return nil, errors.BadRequestError("Select at least one flower before generating")
	}

	var names []string

	for _, id := range state.SelectedFlowers {
		if flower, ok := s.catalog.FlowerByID(id); ok {
			names = append(names, flower.Name)
		}
	}

	prompt := utils.Sanitize(req.Prompt)

	image, err := s.generator.Generate(ctx, imagegen.Request{Prompt: prompt, FlowerNames: names})
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to generate bouquet image").WithError(err)
	}

	state.Prompt = prompt
	state.GeneratedImage = image

	if err := s.sessions.Save(ctx, state); err != nil {
		return nil, err
	}

	metrics.BouquetGenerated()

	return s.composerState(state), nil
}

// AddToCart turns the current selection into a cart line. The line id is a
// fresh uuid rather than a timestamp, so rapid successive adds cannot
// collide with each other or with catalog item ids.
func (s *composerService) AddToCart(ctx context.Context, sessionID string) (*models.Cart, error) {

	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(state.SelectedFlowers) == 0 {
		return nil, errors.BadRequestError("Select at least one flower before adding a bouquet")
	}

	cart, err := s.cart.AddItem(ctx, sessionID, &models.AddCartItemRequest{
		ItemID: "custom-" + uuid.NewString(),
		Name:   s.cfg.BouquetName,
		Price:  s.price(state.SelectedFlowers),
	})
	if err != nil {
		return nil, err
	}

	// The storefront opens the cart dialog right after adding a bouquet.
	state.CartOpen = true
	if err := s.sessions.Save(ctx, state); err != nil {
		return nil, err
	}

	return cart, nil
}

// price sums flower.price × multiplier over the selection. The multiplier
// stands in for assembly cost and applies per selected flower, not once per
// bouquet. Ids missing from the catalog contribute nothing.
func (s *composerService) price(selected []int64) float64 {

	var total float64

	for _, id := range selected {
		if flower, ok := s.catalog.FlowerByID(id); ok {
			total += flower.Price * s.cfg.PriceMultiplier
		}
	}

	return total
}

func (s *composerService) composerState(state *models.SessionState) *models.ComposerState {
	return &models.ComposerState{
		SelectedFlowers: state.SelectedFlowers,
		Price:           s.price(state.SelectedFlowers),
		Prompt:          state.Prompt,
		GeneratedImage:  state.GeneratedImage,
	}
}
