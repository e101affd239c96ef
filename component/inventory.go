package component

// DefaultMaxStack is the jewel capacity of a fresh inventory.
const DefaultMaxStack = 20

// Inventory counts the jewels the player carries.
type Inventory struct {
	Jewels   int
	MaxStack int
	Open     bool
}

func NewInventory(maxStack int) *Inventory {
	if maxStack <= 0 {
		maxStack = DefaultMaxStack
	}
	return &Inventory{MaxStack: maxStack}
}

// AddJewel stores one jewel. It returns false without changing anything when
// the stack is full.
func (inv *Inventory) AddJewel() bool {
	if inv == nil || inv.Jewels >= inv.MaxStack {
		return false
	}
	inv.Jewels++
	return true
}

// UseJewel consumes one jewel if any are held.
func (inv *Inventory) UseJewel() bool {
	if inv == nil || inv.Jewels <= 0 {
		return false
	}
	inv.Jewels--
	return true
}

// Full reports whether another jewel would be rejected.
func (inv *Inventory) Full() bool {
	return inv == nil || inv.Jewels >= inv.MaxStack
}

func (inv *Inventory) Toggle() {
	if inv == nil {
		return
	}
	inv.Open = !inv.Open
}
