// Package powerup defines the power-up kinds, their shop bundles and the
// inventory that holds them.
package powerup

// ID names a power-up kind.
type ID string

const (
	TimeFreeze    ID = "time_freeze"
	DoublePoints  ID = "double_points"
	LetterReveal  ID = "letter_reveal"
	WordBank      ID = "word_bank"
	ShuffleMaster ID = "shuffle_master"
)

// All lists every power-up in display order.
var All = []ID{TimeFreeze, DoublePoints, LetterReveal, WordBank, ShuffleMaster}

// Effect parameters.
const (
	FreezeSeconds   = 10
	PointMultiplier = 2
	RevealCount     = 2
	WordBankDecoys  = 2
)

// Info describes a power-up for the shop and the HUD.
type Info struct {
	ID          ID
	Name        string
	Description string
	Cost        int
}

var catalogue = map[ID]Info{
	TimeFreeze:    {ID: TimeFreeze, Name: "Time Freeze", Description: "Pause timer for 10 seconds", Cost: 2},
	DoublePoints:  {ID: DoublePoints, Name: "Double Points", Description: "2x points for this round", Cost: 3},
	LetterReveal:  {ID: LetterReveal, Name: "Letter Reveal", Description: "Show 2 random letters", Cost: 2},
	WordBank:      {ID: WordBank, Name: "Word Bank", Description: "Show 3 possible answers", Cost: 4},
	ShuffleMaster: {ID: ShuffleMaster, Name: "Shuffle Master", Description: "Re-scramble the word", Cost: 1},
}

// Lookup returns the description of id.
func Lookup(id ID) (Info, bool) {
	info, ok := catalogue[id]
	return info, ok
}

// Inventory counts owned power-ups.
type Inventory map[ID]int

// Count returns how many of id are owned.
func (inv Inventory) Count(id ID) int {
	return inv[id]
}

// Add increases the stock of id by n.
func (inv Inventory) Add(id ID, n int) {
	if n <= 0 {
		return
	}
	inv[id] += n
}

// Take removes one id, reporting false when none is left.
func (inv Inventory) Take(id ID) bool {
	if inv[id] <= 0 {
		return false
	}
	inv[id]--
	return true
}

// Starter returns the inventory a new player begins with.
func Starter() Inventory {
	return Inventory{
		TimeFreeze:   1,
		DoublePoints: 1,
		LetterReveal: 1,
	}
}
