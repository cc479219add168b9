package engine

// Key is a logical game key, front ends map physical keys onto it
type Key uint8

const (
	KeyPlayer1Up Key = iota
	KeyPlayer1Down
	KeyPlayer2Up
	KeyPlayer2Down

	KeyCount
)

var keyNames = [KeyCount]string{
	KeyPlayer1Up:   "player1-up",
	KeyPlayer1Down: "player1-down",
	KeyPlayer2Up:   "player2-up",
	KeyPlayer2Down: "player2-down",
}

func (k Key) String() string {
	if k < KeyCount {
		return keyNames[k]
	}
	return "unknown"
}
