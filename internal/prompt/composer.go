// Package prompt builds the English prompts sent to the image provider.
// Everything here is pure string assembly.
package prompt

import (
	"strings"

	"github.com/Lixing-Zhang/tshirt-designer/internal/models"
)

// StyleModifiers are applied to every design, in this order
var StyleModifiers = []string{
	"minimalist",
	"high-contrast black and white",
	"suitable for screen printing",
	"clean lines",
	"bold graphic design",
	"t-shirt artwork",
	"vector style",
}

const (
	DefaultArtStyle   = "modern"
	DefaultComplexity = "medium"
	DefaultEmphasis   = "balanced"
)

var artStyles = map[string]string{
	"modern":      "Modern, contemporary look with clean geometric shapes",
	"traditional": "Traditional style inspired by classic Jewish folk art and ornaments",
	"artistic":    "Artistic, expressive illustration with a hand-drawn feel",
	"simple":      "Simple iconographic style with minimal elements",
}

var complexities = map[string]string{
	"simple":  "Keep it simple: one central element and lots of negative space",
	"medium":  "Moderate detail: a main element with a few supporting details",
	"complex": "Rich detail: intricate composition with multiple elements",
}

// SideLabel names the printed side of the shirt
func SideLabel(isBackDesign bool) string {
	if isBackDesign {
		return "back"
	}
	return "front"
}

func sideInstruction(isBackDesign bool) string {
	if isBackDesign {
		return "Designed for the back of the shirt: a larger composition filling the upper back"
	}
	return "Designed for the front of the shirt: a centered chest print"
}

// ComposePrompt builds the image prompt from translated inputs.
// The "Additional context" line is present only for a non-empty description.
func ComposePrompt(eventType, description string, isBackDesign bool) string {
	var b strings.Builder

	b.WriteString("Create a " + SideLabel(isBackDesign) + " t-shirt design.\n")
	b.WriteString("Theme: " + strings.TrimSpace(eventType) + "\n")
	b.WriteString("Style: " + strings.Join(StyleModifiers, ", ") + "\n")
	if d := strings.TrimSpace(description); d != "" {
		b.WriteString("Additional context: " + d + "\n")
	}
	b.WriteString("\nTechnical requirements:\n")
	b.WriteString("- Black and white only\n")
	b.WriteString("- High contrast\n")
	b.WriteString("- No text, letters or numbers in the image\n")
	b.WriteString("- " + sideInstruction(isBackDesign))

	return b.String()
}

// EnhanceWithStyle appends a style preference block to prompt. Unknown art
// styles and complexities use the modern and medium entries.
func EnhanceWithStyle(prompt string, prefs models.StylePreferences) string {
	art, ok := artStyles[normalize(prefs.ArtStyle)]
	if !ok {
		art = artStyles[DefaultArtStyle]
	}

	complexity, ok := complexities[normalize(prefs.Complexity)]
	if !ok {
		complexity = complexities[DefaultComplexity]
	}

	emphasis := strings.TrimSpace(prefs.Emphasis)
	if emphasis == "" {
		emphasis = DefaultEmphasis
	}

	return prompt + "\n\nStyle preferences:\n" +
		"- Art style: " + art + "\n" +
		"- Complexity: " + complexity + "\n" +
		"- Emphasis: " + emphasis
}

// ImprovementPrompt asks for a new iteration of a previous design
func ImprovementPrompt(history models.DesignHistory, feedback string) string {
	previous := strings.TrimSpace(history.RevisedPrompt)
	if previous == "" {
		previous = strings.TrimSpace(history.OriginalPrompt)
	}

	return strings.Join([]string{
		"Improve an existing t-shirt design based on customer feedback.",
		"",
		"Original concept: " + strings.TrimSpace(history.OriginalPrompt),
		"Previous version: " + previous,
		"Requested changes: " + strings.TrimSpace(feedback),
		"",
		"Requirements:",
		"- Maintain the original theme and concept",
		"- Incorporate the requested changes",
		"- Keep the design suitable for t-shirt printing",
		"- Preserve the high-contrast black and white style",
	}, "\n")
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
