package types

type UIEvent int

const (
	UIEventNone UIEvent = iota
	UIEventStartGame
	UIEventQuit
)
