package widget

// Spacing constants for consistent layout (similar to Tailwind spacing scale).
// Use these instead of raw numbers for maintainability.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default item spacing)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
	Space2XL  float32 = 24 // 2x extra large
)

// Style carries the inherited visual defaults handed to every element's
// Draw call. Elements read from it; they never write to it.
type Style struct {
	// Colors
	TextColor         uint32
	TextDisabledColor uint32
	BackgroundColor   uint32
	BorderColor       uint32
	AccentColor       uint32

	// Font metrics for the built-in fixed-advance font
	FontScale  float32
	CharWidth  float32
	CharHeight float32

	// Sizing
	ItemSpacing float32 // Default gap between items
	BorderSize  float32
}

// DefaultStyle returns the default style.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,
		BackgroundColor:   RGBA(30, 30, 36, 255),
		BorderColor:       RGBA(80, 80, 90, 255),
		AccentColor:       RGBA(255, 150, 30, 255),

		FontScale:  1.0,
		CharWidth:  8,
		CharHeight: 12,

		ItemSpacing: SpaceSM,
		BorderSize:  0,
	}
}
