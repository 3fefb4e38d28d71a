package render

import (
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// LayerDefault is the single layer every level renderer draws on.
const LayerDefault ecs.LayerID = 0

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}

// rightTextX returns the X position that ends text margin px from the right edge.
func rightTextX(s string, face font.Face, screenWidth, margin float64) int {
	bounds := text.BoundString(face, s)
	return int(screenWidth - margin - float64(bounds.Dx()))
}
