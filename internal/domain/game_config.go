package domain

type GameConfig struct {
	Width         int // field width in cells
	Height        int // field height in cells
	CellSize      int // cell edge in pixels
	TPS           int // game ticks per second
	InitialLength int // snake length at game start
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:         30,
		Height:        20,
		CellSize:      20,
		TPS:           12,
		InitialLength: 3,
	}
}

func (c *GameConfig) Validate() bool {
	if c.Width < 10 || c.Width > 100 {
		return false
	}
	if c.Height < 10 || c.Height > 100 {
		return false
	}
	if c.CellSize < 4 || c.CellSize > 40 {
		return false
	}
	if c.TPS < 1 || c.TPS > 60 {
		return false
	}
	if c.InitialLength < 1 || c.InitialLength > c.Width/2 {
		return false
	}
	return true
}

func (c *GameConfig) Copy() *GameConfig {
	copied := *c
	return &copied
}

func (c *GameConfig) WindowWidth() int {
	return c.Width * c.CellSize
}

func (c *GameConfig) WindowHeight() int {
	return c.Height * c.CellSize
}
