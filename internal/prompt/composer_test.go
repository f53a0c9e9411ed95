package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lixing-Zhang/tshirt-designer/internal/models"
)

const modifierLine = "Style: minimalist, high-contrast black and white, suitable for screen printing, " +
	"clean lines, bold graphic design, t-shirt artwork, vector style"

func TestComposePrompt(t *testing.T) {
	tests := []struct {
		name        string
		event       string
		description string
		back        bool
		wantSide    string
		wantContext bool
	}{
		{"front without description", "Wedding", "", false, "front", false},
		{"back with description", "Birthday", "a cake with candles", true, "back", true},
		{"blank description", "Purim", "   ", false, "front", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComposePrompt(tt.event, tt.description, tt.back)

			assert.True(t, strings.HasPrefix(p, "Create a "+tt.wantSide+" t-shirt design."))
			assert.Contains(t, p, "Theme: "+tt.event)
			assert.Contains(t, p, modifierLine)
			assert.Contains(t, p, "Designed for the "+tt.wantSide+" of the shirt")
			assert.Contains(t, p, "No text, letters or numbers")
			assert.Equal(t, tt.wantContext, strings.Contains(p, "Additional context:"))
			if tt.wantContext {
				assert.Contains(t, p, "Additional context: "+tt.description)
			}
		})
	}
}

func TestEnhanceWithStyle(t *testing.T) {
	base := "BASE"
	defaults := EnhanceWithStyle(base, models.StylePreferences{})

	assert.True(t, strings.HasPrefix(defaults, base+"\n\nStyle preferences:"))
	assert.Contains(t, defaults, "- Art style: "+artStyles["modern"])
	assert.Contains(t, defaults, "- Complexity: "+complexities["medium"])
	assert.Contains(t, defaults, "- Emphasis: balanced")

	t.Run("unknown values fall back to defaults", func(t *testing.T) {
		got := EnhanceWithStyle(base, models.StylePreferences{ArtStyle: "cubist", Complexity: "extreme"})
		assert.Equal(t, defaults, got)
	})

	t.Run("known values", func(t *testing.T) {
		got := EnhanceWithStyle(base, models.StylePreferences{ArtStyle: " Traditional ", Complexity: "complex", Emphasis: "the bride and groom"})
		assert.Contains(t, got, artStyles["traditional"])
		assert.Contains(t, got, complexities["complex"])
		assert.Contains(t, got, "- Emphasis: the bride and groom")
	})
}

func TestImprovementPrompt(t *testing.T) {
	history := models.DesignHistory{
		OriginalPrompt: "Theme: Wedding",
		RevisedPrompt:  "A minimalist wedding illustration",
	}

	p := ImprovementPrompt(history, "make the rings bigger")

	assert.Contains(t, p, "Original concept: Theme: Wedding")
	assert.Contains(t, p, "Previous version: A minimalist wedding illustration")
	assert.Contains(t, p, "Requested changes: make the rings bigger")
	assert.Contains(t, p, "- Maintain the original theme and concept")
	assert.Contains(t, p, "- Incorporate the requested changes")
	assert.Contains(t, p, "- Keep the design suitable for t-shirt printing")
	assert.Contains(t, p, "- Preserve the high-contrast black and white style")

	t.Run("missing revised prompt reuses original", func(t *testing.T) {
		p := ImprovementPrompt(models.DesignHistory{OriginalPrompt: "orig"}, "x")
		assert.Contains(t, p, "Previous version: orig")
	})
}
