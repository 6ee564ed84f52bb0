// Package ebiten provides the Ebiten-based graphical presentation for the
// station map.
package ebiten

import "image/color"

// Color palette for the scene - dark backdrop, bright accents.
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for the map area
	colorGridDot         = color.RGBA{40, 42, 66, 255}    // Faint background grid
	colorAvatar          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorAvatarTrim      = color.RGBA{20, 80, 30, 255}    // Avatar outline
	colorRoute           = color.RGBA{55, 60, 95, 255}    // Decorative network lines
	colorRoutePulse      = color.RGBA{140, 170, 255, 255} // Traveling route dots
	colorStationCore     = color.RGBA{220, 225, 250, 255} // Station marker center
	colorGlow            = color.RGBA{120, 160, 255, 70}  // Proximity halo
	colorLeader          = color.RGBA{160, 170, 220, 255} // Leader line
	colorLeaderPulse     = color.RGBA{255, 255, 255, 255} // Leader pulse dot
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorLink            = color.RGBA{100, 200, 255, 255} // Link lines
	colorSignalLost      = color.RGBA{255, 120, 120, 255} // Signal-lost banner
	colorPanelBackground = color.RGBA{15, 15, 25, 240}    // Callout background
	colorPanelBorder     = color.RGBA{80, 80, 100, 255}   // Callout border fallback
	colorSidebarBg       = color.RGBA{20, 20, 36, 255}    // Sidebar backdrop
	colorSidebarRule     = color.RGBA{60, 60, 90, 255}    // Sidebar divider
	colorIndexVisited    = color.RGBA{100, 255, 150, 255} // Visited tick marks
	colorBootError       = color.RGBA{255, 100, 100, 255} // Fatal boot message
)

// Station marker geometry.
const (
	stationRadius     = 10
	stationGlowRadius = 26
	avatarRadius      = 8
	routeWidth        = 2
	routePulseRadius  = 3
	leaderWidth       = 2
	leaderPulseRadius = 4
	gridSpacing       = 80
)

// Panel layout.
const (
	panelCornerRadius = 6
	panelBorderWidth  = 1
	panelPadding      = 12
	sidebarPadding    = 16
	baseUIFontSize    = 14.0
	titleFontSize     = 17.0
)

// Animation timing.
const (
	calloutEntranceMs = 200 // entrance fade/slide duration
	signalLostFadeMs  = 400 // fade-down after signal loss
	signalLostAlpha   = 0.45
)
