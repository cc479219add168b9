package game

// Phase is the match lifecycle, Running until a win and Terminated forever after
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Winner identifies the player who won, NoWinner while running
type Winner uint8

const (
	NoWinner Winner = iota
	Player1
	Player2
)

func (w Winner) String() string {
	switch w {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "none"
	}
}

// Event is a bit set of what happened during the last Update
type Event uint8

const (
	EventPaddleHit Event = 1 << iota
	EventWallBounce
	EventWin
)

// Has reports whether all bits of e are set
func (ev Event) Has(e Event) bool {
	return ev&e == e
}
