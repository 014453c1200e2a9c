package core

// Color represents a foreground color for a screen cell.
// Renderers map it to ANSI 256-color codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorAsh           // Empty ground
	ColorForest        // Tree
	ColorFlame         // Burning
	ColorEmber         // Burning cell on the outer ring
	ColorHUD
	ColorHUDValue
	ColorDim
)
