package overlay

// TargetKind names what a screen cell belongs to
type TargetKind int

const (
	TargetNone TargetKind = iota
	// TargetBackdrop is any cell outside the card
	TargetBackdrop
	// TargetCard is a cell inside the card that carries no affordance
	TargetCard
	TargetClose
	TargetCopy
	TargetOpen
	TargetButton
)

// String returns the string representation of the target kind
func (k TargetKind) String() string {
	switch k {
	case TargetNone:
		return "none"
	case TargetBackdrop:
		return "backdrop"
	case TargetCard:
		return "card"
	case TargetClose:
		return "close"
	case TargetCopy:
		return "copy"
	case TargetOpen:
		return "open"
	case TargetButton:
		return "button"
	default:
		return "unknown"
	}
}

// Target is the result of a hit test. Index is the button index for
// TargetButton.
type Target struct {
	Kind  TargetKind
	Index int
}

// placement is a rendered card and where it sits on screen
type placement struct {
	card card
	x, y int
}

// contains reports whether the screen cell lies within the card's border box
func (pl placement) contains(x, y int) bool {
	return x >= pl.x && x < pl.x+pl.card.width &&
		y >= pl.y && y < pl.y+pl.card.height
}

// hit resolves a screen cell. Cells inside the card never resolve to the
// backdrop, whether or not they land on an affordance.
func (pl placement) hit(x, y int) Target {
	if !pl.contains(x, y) {
		return Target{Kind: TargetBackdrop}
	}
	row := y - pl.y - chromeY
	col := x - pl.x - chromeX
	for _, z := range pl.card.zones {
		if z.row == row && col >= z.x0 && col < z.x1 {
			return z.target
		}
	}
	return Target{Kind: TargetCard}
}
