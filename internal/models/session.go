package models

const (
	ViewHome        = "home"
	ViewConstructor = "constructor"
	ViewCatalog     = "catalog"
	ViewTracking    = "tracking"
)

// SessionState holds everything the storefront keeps per anonymous session
// outside of the cart and the current order: which screen is active, whether
// the cart dialog is open, and the bouquet constructor's working state.
type SessionState struct {
	SessionID       string  `json:"session_id"`
	ActiveView      string  `json:"active_view"`
	CartOpen        bool    `json:"cart_open"`
	SelectedFlowers []int64 `json:"selected_flowers"`
	Prompt          string  `json:"prompt,omitempty"`
	GeneratedImage  string  `json:"generated_image,omitempty"`
}

type SetViewRequest struct {
	View string `json:"view" validate:"required,oneof=home constructor catalog tracking"`
}

// ComposerState is the constructor screen's read model: the selection plus
// the price it implies and the last generated preview.
type ComposerState struct {
	SelectedFlowers []int64 `json:"selected_flowers"`
	Price           float64 `json:"price"`
	Prompt          string  `json:"prompt,omitempty"`
	GeneratedImage  string  `json:"generated_image,omitempty"`
}

type GenerateBouquetRequest struct {
	Prompt string `json:"prompt" validate:"max=500"`
}
