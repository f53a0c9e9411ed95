package ai

import (
	"context"
	"encoding/base64"
	"strings"
)

// DefaultTranslation is returned by StaticTranslator for unknown input
const DefaultTranslation = "Test Event"

// offlineEventTypes covers the event types offered by the design form
var offlineEventTypes = map[string]string{
	"חתונה":        "Wedding",
	"יום הולדת":    "Birthday",
	"בר מצווה":     "Bar Mitzvah",
	"בת מצווה":     "Bat Mitzvah",
	"ברית":         "Brit Milah",
	"אירוסין":      "Engagement",
	"מסיבת רווקים": "Bachelor Party",
	"מסיבת רווקות": "Bachelorette Party",
	"מסיבת סיום":   "Graduation Party",
	"טיול שנתי":    "Annual Class Trip",
	"גיבוש":        "Team Building",
	"יום העצמאות":  "Independence Day",
	"ראש השנה":     "Rosh Hashanah",
	"חנוכה":        "Hanukkah",
	"פורים":        "Purim",
	"פסח":          "Passover",
	"מסיבת חברה":   "Company Party",
	"איחוד משפחתי": "Family Reunion",
}

// StaticTranslator translates from a fixed table. It is the offline mode
// used when no provider credential is configured and never fails.
type StaticTranslator struct{}

// NewStaticTranslator creates the offline translator
func NewStaticTranslator() *StaticTranslator {
	return &StaticTranslator{}
}

// Translate returns the table entry for text, or DefaultTranslation
func (StaticTranslator) Translate(_ context.Context, text string) (string, error) {
	if english, ok := offlineEventTypes[strings.TrimSpace(text)]; ok {
		return english, nil
	}
	return DefaultTranslation, nil
}

const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64" viewBox="0 0 64 64">` +
	`<rect width="64" height="64" fill="#fff"/>` +
	`<path d="M20 14h24l10 8-6 8-4-3v23H20V27l-4 3-6-8z" fill="#000"/>` +
	`</svg>`

// PlaceholderImageURL is the inline test graphic returned in offline mode
var PlaceholderImageURL = "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(placeholderSVG))

// OfflinePromptPrefix marks revised prompts produced without a provider
const OfflinePromptPrefix = "Test prompt: "

// PlaceholderImageGenerator is the offline image generator
type PlaceholderImageGenerator struct{}

// NewPlaceholderImageGenerator creates the offline image generator
func NewPlaceholderImageGenerator() *PlaceholderImageGenerator {
	return &PlaceholderImageGenerator{}
}

// GenerateImage returns PlaceholderImageURL and echoes the prompt
func (PlaceholderImageGenerator) GenerateImage(_ context.Context, prompt string, _ ImageOptions) (*ImageResult, error) {
	return &ImageResult{
		URL:           PlaceholderImageURL,
		RevisedPrompt: OfflinePromptPrefix + prompt,
	}, nil
}
