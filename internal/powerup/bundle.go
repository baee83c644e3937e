package powerup

// BundleID names a shop bundle.
type BundleID string

const (
	PackSmall  BundleID = "power_pack_small"
	PackMedium BundleID = "power_pack_medium"
	PackLarge  BundleID = "power_pack_large"
)

// Item is a quantity of one power-up inside a bundle.
type Item struct {
	ID       ID
	Quantity int
}

// Bundle is a purchasable set of power-ups.
type Bundle struct {
	ID          BundleID
	Name        string
	Description string
	Cost        int
	Items       []Item
}

// Bundles lists the shop offers in display order.
var Bundles = []Bundle{
	{
		ID:          PackSmall,
		Name:        "Starter Pack",
		Description: "Time freeze and double points",
		Cost:        5,
		Items:       []Item{{TimeFreeze, 2}, {DoublePoints, 1}},
	},
	{
		ID:          PackMedium,
		Name:        "Helper Pack",
		Description: "Letter reveals and word banks",
		Cost:        8,
		Items:       []Item{{LetterReveal, 3}, {WordBank, 2}},
	},
	{
		ID:          PackLarge,
		Name:        "Mega Pack",
		Description: "All power-ups bundle",
		Cost:        12,
		Items:       []Item{{TimeFreeze, 2}, {DoublePoints, 2}, {LetterReveal, 3}, {WordBank, 2}, {ShuffleMaster, 5}},
	},
}

// LookupBundle finds a bundle by id.
func LookupBundle(id BundleID) (Bundle, bool) {
	for _, b := range Bundles {
		if b.ID == id {
			return b, true
		}
	}
	return Bundle{}, false
}
