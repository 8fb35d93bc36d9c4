package session

// Command is one entry of the main menu.
type Command int

const (
	CommandViewCatalog Command = iota + 1
	CommandAddToCart
	CommandViewCart
	CommandPlaceOrder
	CommandTrackOrder
	CommandPrintInvoice
	CommandExit
)

var commandTitles = map[Command]string{
	CommandViewCatalog:  "View Product Catalog",
	CommandAddToCart:    "Add Products to Cart",
	CommandViewCart:     "View & Edit Cart",
	CommandPlaceOrder:   "Place Order",
	CommandTrackOrder:   "Track Order",
	CommandPrintInvoice: "Print Invoice",
	CommandExit:         "Exit",
}

// Commands lists the menu in display order.
func Commands() []Command {
	return []Command{
		CommandViewCatalog,
		CommandAddToCart,
		CommandViewCart,
		CommandPlaceOrder,
		CommandTrackOrder,
		CommandPrintInvoice,
		CommandExit,
	}
}

func (c Command) String() string {
	if title, ok := commandTitles[c]; ok {
		return title
	}
	return "Unknown"
}

// Valid reports whether c is a menu entry.
func (c Command) Valid() bool {
	_, ok := commandTitles[c]
	return ok
}
