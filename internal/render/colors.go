package render

import "github.com/gdamore/tcell/v2"

// Panel styles. The panel sits on a black block like the rest of the UI.
var (
	stylePanel     = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleTitle     = stylePanel.Foreground(tcell.ColorYellow).Bold(true)
	styleBorder    = stylePanel.Foreground(tcell.ColorGray)
	styleCounter   = stylePanel.Foreground(tcell.ColorAqua)
	styleDim       = stylePanel.Foreground(tcell.ColorGray)
	styleStatus    = stylePanel.Foreground(tcell.ColorGreen)
	styleHighlight = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)
)
