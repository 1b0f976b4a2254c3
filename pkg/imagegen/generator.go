package imagegen

import (
	"context"
	"strings"
)

// Request describes the bouquet to render: the names of the selected flowers
// plus an optional free-text style prompt from the customer.
type Request struct {
	Prompt      string
	FlowerNames []string
}

// Generator produces an image reference for a composed bouquet. Image
// references are opaque URL strings, never fetched or validated here.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

const basePrompt = "Beautiful flower bouquet, professional photography, white background"

// BuildPrompt assembles the text sent to the image model.
func BuildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString(basePrompt)

	if len(req.FlowerNames) > 0 {
		b.WriteString(", flowers: ")
		b.WriteString(strings.Join(req.FlowerNames, ", "))
	}

	if req.Prompt != "" {
		b.WriteString(", style: ")
		b.WriteString(req.Prompt)
	}

	return b.String()
}

// StaticGenerator returns one fixed image reference regardless of input.
// It is the default generator: repeated calls always yield the same output.
type StaticGenerator struct {
	imageURL string
}

func NewStaticGenerator(imageURL string) *StaticGenerator {
	return &StaticGenerator{imageURL: imageURL}
}

func (g *StaticGenerator) Generate(_ context.Context, _ Request) (string, error) {
	return g.imageURL, nil
}
