package booking

import (
	"fmt"
	"math/rand"
	"strings"
)

type ImageResult struct {
	Prompt string
	URL    string
}

// GenerateImage fabricates a hosted-image URL for the prompt. No image is
// actually rendered.
func GenerateImage(prompt string) (ImageResult, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return ImageResult{}, validationf("prompt is required")
	}

	slug := strings.ToLower(prompt)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ':
			return '-'
		default:
			return -1
		}
	}, slug)
	if len(slug) > 40 {
		slug = slug[:40]
	}

	return ImageResult{
		Prompt: prompt,
		URL:    fmt.Sprintf("https://images.groupbook.app/generated/%s-%08x.png", slug, rand.Uint32()),
	}, nil
}
