package widgets

import "time"

// ServicesCloseDelay is how long the services menu stays open after the
// pointer leaves it. The browser timer reads it from data-close-delay.
const ServicesCloseDelay = 150 * time.Millisecond

// Palette is the set of utility classes for one navbar appearance.
type Palette struct {
	Background  string
	Text        string
	Button      string
	ButtonText  string
	ButtonHover string
}

// Scheme pairs the palette shown at the top of a page with the one shown once
// the bar is compact.
type Scheme struct {
	Initial  Palette
	Scrolled Palette
}

var (
	yellowPalette = Palette{
		Background:  "bg-[#FFFF3A]",
		Text:        "text-black",
		Button:      "bg-[#212121]",
		ButtonText:  "text-white",
		ButtonHover: "hover:bg-black",
	}
	whitePalette = Palette{
		Background:  "bg-white",
		Text:        "text-black",
		Button:      "bg-[#212121]",
		ButtonText:  "text-white",
		ButtonHover: "hover:bg-black",
	}

	// DefaultScheme turns the bar white once it compacts.
	DefaultScheme = Scheme{Initial: yellowPalette, Scrolled: whitePalette}
	// YellowScheme keeps the bar yellow when it compacts.
	YellowScheme = Scheme{Initial: yellowPalette, Scrolled: yellowPalette}
)

// Colors returns the palette for the given compact state.
func (s Scheme) Colors(compact bool) Palette {
	if compact {
		return s.Scrolled
	}
	return s.Initial
}

// HeightClass returns the bar height class for the given compact state.
func HeightClass(compact bool) string {
	if compact {
		return "h-20"
	}
	return "h-24"
}
