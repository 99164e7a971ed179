package cart

// LineItem is one product entry in a cart. The product fields are a
// snapshot taken when the item is added, so the cart renders without
// another catalog round trip.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Cart holds the line items for one browser session, in insertion order.
// ItemCount and Subtotal are always derived from Items so they cannot
// drift from the line items themselves.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Add merges the item into the cart: a product id already present has its
// quantity incremented, a new product is appended. A quantity below 1 is
// treated as 1 so the resulting line always has quantity >= 1.
func (ct *Cart) Add(item LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i := range ct.Items {
		if ct.Items[i].ProductID == item.ProductID {
			ct.Items[i].Quantity += item.Quantity
			return
		}
	}
	ct.Items = append(ct.Items, item)
}

// Remove deletes the line item for the product id. Absent ids are a no-op.
func (ct *Cart) Remove(productID string) {
	for i := range ct.Items {
		if ct.Items[i].ProductID == productID {
			ct.Items = append(ct.Items[:i], ct.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity exactly (not additive). A quantity of
// zero or less removes the line. An absent product id is a no-op: user
// driven quantity edits never fail.
func (ct *Cart) UpdateQuantity(productID string, qty int) {
	if qty <= 0 {
		ct.Remove(productID)
		return
	}
	for i := range ct.Items {
		if ct.Items[i].ProductID == productID {
			ct.Items[i].Quantity = qty
			return
		}
	}
}

// Clear empties the cart. Checkout invokes this exactly once per
// successful completion so the shopper never sees already purchased items.
func (ct *Cart) Clear() {
	ct.Items = nil
}

// ItemCount is the sum of all line quantities.
func (ct Cart) ItemCount() int {
	n := 0
	for _, it := range ct.Items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the sum of unit price times quantity over all lines.
func (ct Cart) Subtotal() float64 {
	total := 0.0
	for _, it := range ct.Items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}

// View is the JSON shape returned by the cart endpoints, with the derived
// aggregates computed at render time.
type View struct {
	Items     []LineItem `json:"items"`
	ItemCount int        `json:"itemCount"`
	Subtotal  float64    `json:"subtotal"`
}

func NewView(ct Cart) View {
	items := ct.Items
	if items == nil {
		items = []LineItem{}
	}
	return View{
		Items:     items,
		ItemCount: ct.ItemCount(),
		Subtotal:  ct.Subtotal(),
	}
}
