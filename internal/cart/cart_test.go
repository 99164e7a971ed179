package cart

import "testing"

func TestAddMergesDuplicateProduct(t *testing.T) {
	var ct Cart
	ct.Add(LineItem{ProductID: "p1", Name: "Mug", UnitPrice: 12, Quantity: 2})
	ct.Add(LineItem{ProductID: "p1", Name: "Mug", UnitPrice: 12, Quantity: 3})

	if len(ct.Items) != 1 {
		t.Fatalf("expected a single line item, got %d", len(ct.Items))
	}
	if ct.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", ct.Items[0].Quantity)
	}
}

func TestAddClampsQuantityToOne(t *testing.T) {
	var ct Cart
	ct.Add(LineItem{ProductID: "p1", Quantity: 0})
	if ct.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", ct.Items[0].Quantity)
	}
	ct.Add(LineItem{ProductID: "p2", Quantity: -3})
	if ct.Items[1].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", ct.Items[1].Quantity)
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	var ct Cart
	ct.Add(LineItem{ProductID: "a", Quantity: 1})
	ct.Add(LineItem{ProductID: "b", Quantity: 1})
	ct.Add(LineItem{ProductID: "a", Quantity: 1})
	ct.Add(LineItem{ProductID: "c", Quantity: 1})

	want := []string{"a", "b", "c"}
	if len(ct.Items) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(ct.Items))
	}
	for i, id := range want {
		if ct.Items[i].ProductID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, ct.Items[i].ProductID)
		}
	}
}

func TestDerivedAggregatesNeverDrift(t *testing.T) {
	var ct Cart
	ct.Add(LineItem{ProductID: "a", UnitPrice: 10, Quantity: 2})
	ct.Add(LineItem{ProductID: "b", UnitPrice: 2.5, Quantity: 4})
	ct.UpdateQuantity("a", 3)
	ct.Remove("b")
	ct.Add(LineItem{ProductID: "c", UnitPrice: 1, Quantity: 1})

	// recompute expectations directly from the items
	wantCount := 0
	wantSubtotal := 0.0
	for _, it := range ct.Items {
		wantCount += it.Quantity
		wantSubtotal += it.UnitPrice * float64(it.Quantity)
	}
	if ct.ItemCount() != wantCount {
		t.Fatalf("itemCount %d != sum of quantities %d", ct.ItemCount(), wantCount)
	}
	if ct.Subtotal() != wantSubtotal {
		t.Fatalf("subtotal %v != recomputed %v", ct.Subtotal(), wantSubtotal)
	}
	if ct.ItemCount() != 4 || ct.Subtotal() != 31 {
		t.Fatalf("unexpected aggregates: count=%d subtotal=%v", ct.ItemCount(), ct.Subtotal())
	}
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	var ct Cart
	ct.Add(LineItem{ProductID: "a", UnitPrice: 5, Quantity: 2})
	ct.UpdateQuantity("a", 0)

	if len(ct.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(ct.Items))
	}
	// a follow-up remove of the same id must be a silent no-op
	ct.Remove("a")
	if len(ct.Items) != 0 {
		t.Fatalf("remove after update-to-zero must stay a no-op")
	}
}

func TestUpdateQuantityAbsentProductIsNoOp(t *testing.T) {
	var ct Cart
	ct.Add(LineItem{ProductID: "a", UnitPrice: 5, Quantity: 2})
	ct.UpdateQuantity("missing", 7)

	if len(ct.Items) != 1 || ct.Items[0].Quantity != 2 {
		t.Fatalf("cart changed on edit of absent product: %+v", ct.Items)
	}
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	var ct Cart
	ct.Add(LineItem{ProductID: "a", Quantity: 2})
	ct.UpdateQuantity("a", 2)
	if ct.Items[0].Quantity != 2 {
		t.Fatalf("update must set, not add: got %d", ct.Items[0].Quantity)
	}
}

func TestClearResetsEverything(t *testing.T) {
	var ct Cart
	ct.Add(LineItem{ProductID: "a", UnitPrice: 9.99, Quantity: 3})
	ct.Clear()

	if len(ct.Items) != 0 || ct.ItemCount() != 0 || ct.Subtotal() != 0 {
		t.Fatalf("clear left state behind: items=%d count=%d subtotal=%v",
			len(ct.Items), ct.ItemCount(), ct.Subtotal())
	}
}

func TestInMemoryStoreRoundTrip(t *testing.T) {
	store := NewInMemoryStore()

	ct, err := store.Load("s1")
	if err != nil {
		t.Fatalf("load of unknown session must not error: %v", err)
	}
	if len(ct.Items) != 0 {
		t.Fatalf("expected empty cart for fresh session")
	}

	ct.Add(LineItem{ProductID: "a", UnitPrice: 1, Quantity: 2})
	if err := store.Save("s1", ct); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// mutating the original after save must not leak into the store
	ct.UpdateQuantity("a", 99)

	loaded, err := store.Load("s1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Items) != 1 || loaded.Items[0].Quantity != 2 {
		t.Fatalf("unexpected stored cart: %+v", loaded.Items)
	}

	if err := store.Delete("s1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	loaded, _ = store.Load("s1")
	if len(loaded.Items) != 0 {
		t.Fatalf("expected empty cart after delete")
	}
}
