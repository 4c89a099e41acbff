package cmd

import "charm.land/lipgloss/v2"

const bannerArt = `
 ███████╗ ██████╗ ██████╗ ███╗   ███╗ ██████╗██╗  ██╗███████╗ ██████╗██╗  ██╗
 ██╔════╝██╔═══██╗██╔══██╗████╗ ████║██╔════╝██║  ██║██╔════╝██╔════╝██║ ██╔╝
 █████╗  ██║   ██║██████╔╝██╔████╔██║██║     ███████║█████╗  ██║     █████╔╝
 ██╔══╝  ██║   ██║██╔══██╗██║╚██╔╝██║██║     ██╔══██║██╔══╝  ██║     ██╔═██╗
 ██║     ╚██████╔╝██║  ██║██║ ╚═╝ ██║╚██████╗██║  ██║███████╗╚██████╗██║  ██╗
 ╚═╝      ╚═════╝ ╚═╝  ╚═╝╚═╝     ╚═╝ ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝`

var bannerColor = lipgloss.Color("#14B8A6")

// renderBanner returns the startup banner styled in the service color.
func renderBanner() string {
	return lipgloss.NewStyle().
		Foreground(bannerColor).
		Bold(true).
		Render(bannerArt)
}
