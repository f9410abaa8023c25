package theme

// Palette constants and InitStyles, which activates the base theme and
// configures the semantic widget styles of the annotator window.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets. Box colors live in
// ui/render; these only style the Tk chrome around the canvas.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // panels
	ColorBorder    = "#d0d7de"
	ColorAccent    = "#15803d" // matches the box outline green
	ColorAccentHi  = "#166534"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// style names used with Style("done.TButton") etc.
const (
	StyleDoneButton  = "done.TButton"
	StylePromptLabel = "prompt.TLabel"
)

// InitStyles applies the palette. Call once after the Tk app exists.
func InitStyles() {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(ColorBg))

	StyleConfigure(StyleDoneButton,
		Background(ColorAccent),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StylePromptLabel,
		Foreground(ColorText),
		Background(ColorSurface),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
