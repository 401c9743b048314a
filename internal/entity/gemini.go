package entity

// Wire types for the generativelanguage.googleapis.com
// models.generateContent REST call.

type GeminiContent struct {
	Parts []Part `json:"parts"`
}

type GeminiGenerationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

type GenerateContentRequest struct {
	Contents          []GeminiContent         `json:"contents"`
	SystemInstruction *GeminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GeminiGenerationConfig `json:"generationConfig,omitempty"`
}

type GeminiCandidate struct {
	Content GeminiContent `json:"content"`
}

type GenerateContentResponse struct {
	Candidates []GeminiCandidate `json:"candidates"`
}

// Schema is the subset of the Gemini structured-output schema language
// needed to constrain the analysis response: typed objects with ordered
// properties, arrays, and strings.
type Schema struct {
	Type             string             `json:"type"`
	Description      string             `json:"description,omitempty"`
	Properties       map[string]*Schema `json:"properties,omitempty"`
	Items            *Schema            `json:"items,omitempty"`
	PropertyOrdering []string           `json:"propertyOrdering,omitempty"`
}
