package models

// DesignRequest is the source-language description of a design to generate.
type DesignRequest struct {
	EventType    string
	Description  string
	IsBackDesign bool
}

// StylePreferences refine a composed prompt. Unknown values are tolerated.
type StylePreferences struct {
	ArtStyle   string `json:"artStyle,omitempty"`
	Complexity string `json:"complexity,omitempty"`
	Emphasis   string `json:"emphasis,omitempty"`
}

// DesignOptions tune a single generation call
type DesignOptions struct {
	StylePreferences *StylePreferences
	HighQuality      bool
}

// DesignHistory is the client-held lineage of the previous iteration.
// The server keeps no copy of it between calls.
type DesignHistory struct {
	OriginalPrompt string `json:"originalPrompt"`
	RevisedPrompt  string `json:"revisedPrompt"`
	ImageURL       string `json:"imageUrl"`
}

// DesignVersion is a snapshot of one generated iteration
type DesignVersion struct {
	ImageURL      string `json:"imageUrl"`
	Prompt        string `json:"prompt"`
	RevisedPrompt string `json:"revisedPrompt"`
}

// GeneratedDesign is returned by design generation and improvement.
// ImageURL may hold a remote URL or a data: URL.
type GeneratedDesign struct {
	ImageURL        string         `json:"imageUrl"`
	Prompt          string         `json:"prompt"`
	RevisedPrompt   string         `json:"revisedPrompt"`
	PreviousVersion *DesignVersion `json:"previousVersion,omitempty"`
}

// GenerateDesignRequest is the body of POST /api/generate-design
type GenerateDesignRequest struct {
	EventType        string            `json:"eventType"`
	Description      string            `json:"description"`
	DesignType       string            `json:"designType"`
	StylePreferences *StylePreferences `json:"stylePreferences,omitempty"`
	HighQuality      bool              `json:"highQuality,omitempty"`
}

// ImproveDesignRequest is the body of POST /api/improve-design.
// Prompt carries the user's feedback in the source language.
type ImproveDesignRequest struct {
	Prompt           string            `json:"prompt"`
	EventType        string            `json:"eventType"`
	DesignType       string            `json:"designType"`
	OriginalPrompt   string            `json:"originalPrompt"`
	RevisedPrompt    string            `json:"revisedPrompt,omitempty"`
	ImageURL         string            `json:"imageUrl,omitempty"`
	StylePreferences *StylePreferences `json:"stylePreferences,omitempty"`
	HighQuality      bool              `json:"highQuality,omitempty"`
}
