package machine

// Symbol is the content of one tape cell. Only two values exist.
type Symbol bool

const (
	Blank  Symbol = false
	Marked Symbol = true
)

func (s Symbol) String() string {
	if s == Marked {
		return "x"
	}
	return "o"
}

// Direction is the head movement of a Behavior.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "R"
	}
	return "L"
}
