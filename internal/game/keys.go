package game

// KeyKind discriminates the decoded input events the loop understands.
type KeyKind int8

const (
	KeyNone KeyKind = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyChar
	KeyEscape
)

// Key is one input event. Ch is only meaningful for KeyChar.
type Key struct {
	Kind KeyKind
	Ch   rune
}

func Char(ch rune) Key {
	return Key{Kind: KeyChar, Ch: ch}
}
