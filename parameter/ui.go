package parameter

import "image/color"

// Window
const (
	WindowTitle  = "Pong"
	WindowWidth  = 640
	WindowHeight = 480
)

// BackgroundColor is the playfield clear colour (cornflower blue)
var BackgroundColor = color.RGBA{R: 100, G: 149, B: 237, A: 255}

// Default texture paths, relative to the working directory
const (
	Player1TexturePath = "./resources/BlueBar.png"
	Player2TexturePath = "./resources/RedBar.png"
	BallTexturePath    = "./resources/ball.png"
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "pong.log"
	MaxLogSize  = 10 * 1024 * 1024
)
