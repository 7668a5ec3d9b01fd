package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/ui/theme"
)

const bannerKid = "★  K · I · D  ★"

const bannerArt = `
  █████╗ ██████╗  ██████╗ █████╗ ██████╗ ███████╗
 ██╔══██╗██╔══██╗██╔════╝██╔══██╗██╔══██╗██╔════╝
 ███████║██████╔╝██║     ███████║██║  ██║█████╗
 ██╔══██║██╔══██╗██║     ██╔══██║██║  ██║██╔══╝
 ██║  ██║██║  ██║╚██████╗██║  ██║██████╔╝███████╗
 ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚═════╝ ╚══════╝`

// BannerCompact is the one-line title for small terminals.
const BannerCompact = "K I D   A R C A D E"

// BannerArt returns the unstyled block-letter title, centered on its own
// widest line.
func BannerArt() string {
	return lipgloss.JoinVertical(lipgloss.Center, bannerKid, bannerArt)
}

// RenderBanner returns the KID ARCADE banner styled in the primary color.
// Terminals narrower than 52 columns get the compact line.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 52 {
		return style.Render(BannerCompact)
	}
	return style.Render(BannerArt())
}
