package genie

import "fmt"

type Variant string

const (
	VariantGenie     Variant = "genie"
	VariantAssistant Variant = "assistant"
)

// WidgetConfig carries the visual differences between the chat surfaces.
// Behaviour is identical across variants.
type WidgetConfig struct {
	Variant     Variant `json:"variant"`
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle,omitempty"`
	Icon        string  `json:"icon"`
	Width       string  `json:"width"`
	TopOffset   string  `json:"top_offset,omitempty"`
	HeaderStyle string  `json:"header_style"`
	Placeholder string  `json:"placeholder"`
}

const inputPlaceholder = "Ask me anything about your service data..."

var widgets = map[Variant]WidgetConfig{
	VariantGenie: {
		Variant:     VariantGenie,
		Title:       "Genie",
		Icon:        "sparkles",
		Width:       "24rem",
		HeaderStyle: "compact",
		Placeholder: inputPlaceholder,
	},
	VariantAssistant: {
		Variant:     VariantAssistant,
		Title:       "Genie",
		Subtitle:    "AI Assistant",
		Icon:        "bot",
		Width:       "400px",
		TopOffset:   "73px",
		HeaderStyle: "badge",
		Placeholder: inputPlaceholder,
	},
}

// Widget returns the preset for v. An empty variant selects the Genie drawer.
func Widget(v Variant) (WidgetConfig, error) {
	if v == "" {
		v = VariantGenie
	}
	w, ok := widgets[v]
	if !ok {
		return WidgetConfig{}, fmt.Errorf("unknown widget variant %q", v)
	}
	return w, nil
}
