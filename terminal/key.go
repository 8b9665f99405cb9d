package terminal

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Ctrl+letter
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	KeyCtrlSpace
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Esc",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBacktab:   "Backtab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDn",
	KeyInsert:    "Insert",
	KeyCtrlSpace: "Ctrl+Space",
}

// String returns a short human readable key name
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return "Ctrl+" + string(ctrlLetters[k-KeyCtrlA])
	}
	return "Unknown"
}

// ctrlLetters lists the letters of the contiguous KeyCtrlA..KeyCtrlZ block
// Ctrl+H, I, J, M arrive as Backspace, Tab and Enter and have no constant
const ctrlLetters = "ABCDEFGKLNOPQRSTUVWXYZ"

// ctrlKeys maps control bytes to keys, zero entries are unmapped
var ctrlKeys = [0x20]Key{
	0x00: KeyCtrlSpace,
	0x01: KeyCtrlA,
	0x02: KeyCtrlB,
	0x03: KeyCtrlC,
	0x04: KeyCtrlD,
	0x05: KeyCtrlE,
	0x06: KeyCtrlF,
	0x07: KeyCtrlG,
	0x08: KeyBackspace,
	0x09: KeyTab,
	0x0a: KeyEnter,
	0x0b: KeyCtrlK,
	0x0c: KeyCtrlL,
	0x0d: KeyEnter,
	0x0e: KeyCtrlN,
	0x0f: KeyCtrlO,
	0x10: KeyCtrlP,
	0x11: KeyCtrlQ,
	0x12: KeyCtrlR,
	0x13: KeyCtrlS,
	0x14: KeyCtrlT,
	0x15: KeyCtrlU,
	0x16: KeyCtrlV,
	0x17: KeyCtrlW,
	0x18: KeyCtrlX,
	0x19: KeyCtrlY,
	0x1a: KeyCtrlZ,
	0x1b: KeyEscape,
}

// csiKey is a known CSI sequence body (bytes after ESC [)
type csiKey struct {
	key Key
	mod Modifier
}

var csiKeys = map[string]csiKey{
	"A":    {KeyUp, ModNone},
	"B":    {KeyDown, ModNone},
	"C":    {KeyRight, ModNone},
	"D":    {KeyLeft, ModNone},
	"H":    {KeyHome, ModNone},
	"F":    {KeyEnd, ModNone},
	"Z":    {KeyBacktab, ModShift},
	"1~":   {KeyHome, ModNone},
	"2~":   {KeyInsert, ModNone},
	"3~":   {KeyDelete, ModNone},
	"4~":   {KeyEnd, ModNone},
	"5~":   {KeyPageUp, ModNone},
	"6~":   {KeyPageDown, ModNone},
	"1;2A": {KeyUp, ModShift},
	"1;2B": {KeyDown, ModShift},
	"1;2C": {KeyRight, ModShift},
	"1;2D": {KeyLeft, ModShift},
	"1;5A": {KeyUp, ModCtrl},
	"1;5B": {KeyDown, ModCtrl},
	"1;5C": {KeyRight, ModCtrl},
	"1;5D": {KeyLeft, ModCtrl},
}

// ss3Keys maps SS3 final bytes (ESC O x) sent by terminals in application cursor mode
var ss3Keys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// CtrlKey returns the key for a C0 control byte, KeyNone when unmapped
func CtrlKey(b byte) Key {
	if int(b) >= len(ctrlKeys) {
		return KeyNone
	}
	return ctrlKeys[b]
}
