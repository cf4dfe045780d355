package ebiten

import (
	"image/color"

	"crystalhunt/pkg/game/renderer"
)

// Layout
const (
	screenWidth  = 960
	screenHeight = 640
	tileSize     = 16
	mapRows      = 31
	mapCols      = 41
	mapX         = 16
	mapY         = 48
	hudX         = mapX + mapCols*tileSize + 24
	fontSize     = 16
	lineHeight   = 22
	hudWrap      = 26 // Characters per HUD line
)

// Color palette for the game
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorPlayer        = color.RGBA{0, 255, 0, 255}     // Bright green
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorAction        = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorHint          = color.RGBA{255, 220, 100, 255} // Yellow
	colorItem          = color.RGBA{220, 170, 255, 255} // Bright purple
)

// markColors is the fill colour of each minimap mark
var markColors = map[renderer.Mark]color.RGBA{
	renderer.MarkRoomStart:  {40, 40, 60, 255},
	renderer.MarkWater:      {40, 90, 200, 255},
	renderer.MarkGas:        {90, 160, 60, 255},
	renderer.MarkDoorOpen:   {0, 220, 0, 255},
	renderer.MarkWall:       {60, 60, 80, 255},
	renderer.MarkDoorClosed: {255, 255, 0, 255},
	renderer.MarkCoin:       {255, 200, 100, 255},
	renderer.MarkCoinLit:    {255, 255, 200, 255},
	renderer.MarkKey:        {100, 150, 255, 255},
	renderer.MarkGun:        {255, 150, 255, 255},
	renderer.MarkMask:       {100, 230, 230, 255},
	renderer.MarkCrystal:    {180, 255, 255, 255},
	renderer.MarkMonster:    {255, 80, 80, 255},
	renderer.MarkProjectile: {240, 240, 255, 255},
	renderer.MarkPlayer:     colorPlayer,
}
