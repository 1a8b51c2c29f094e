package finiquito

import "testing"

func fetchedItem(concepto string, amount float64, index int) BonusItem {
	return BonusItem{Concepto: concepto, Amount: amount, Active: true, Source: BonusSourceFetched, Index: index}
}

func TestAverageBonus(t *testing.T) {
	items := []BonusItem{
		fetchedItem("comision", 100, 0),
		fetchedItem("comision", 200, 1),
	}
	if got := AverageBonus(items); !almostEqual(got, 150) {
		t.Fatalf("expected average 150, got %v", got)
	}

	items, err := ToggleItem(items, "comision", 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := AverageBonus(items); !almostEqual(got, 200) {
		t.Fatalf("expected average 200 after deactivation, got %v", got)
	}

	items = ToggleGroup(items, "comision", false)
	if got := AverageBonus(items); got != 0 {
		t.Fatalf("expected 0 for fully inactive group, got %v", got)
	}
}

func TestAverageBonusMultipleConcepts(t *testing.T) {
	items := []BonusItem{
		fetchedItem("comision", 100, 0),
		fetchedItem("comision", 200, 1),
		fetchedItem("bono_produccion", 50, 0),
	}
	if got := AverageBonus(items); !almostEqual(got, 200) {
		t.Fatalf("expected 150+50=200, got %v", got)
	}
}

func TestToggleGroupCoversManualItems(t *testing.T) {
	items := AddManual([]BonusItem{fetchedItem("comision", 100, 0)}, "comision", 300)
	items = ToggleGroup(items, "comision", false)
	for _, item := range items {
		if item.Active {
			t.Fatalf("expected every item inactive, found %+v", item)
		}
	}
}

func TestAddManual(t *testing.T) {
	items := AddManual(nil, "comision", 300)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !items[0].Active || items[0].Source != BonusSourceManual || items[0].Index != 0 {
		t.Fatalf("unexpected manual item: %+v", items[0])
	}

	items = AddManual(append(items, fetchedItem("comision", 100, 3)), "comision", 50)
	if items[len(items)-1].Index != 4 {
		t.Fatalf("expected next index 4, got %d", items[len(items)-1].Index)
	}
}

func TestRemoveManual(t *testing.T) {
	items := AddManual([]BonusItem{fetchedItem("comision", 100, 0)}, "comision", 300)

	if _, err := RemoveManual(items, "comision", 0); err != ErrBonusItemImmutable {
		t.Fatalf("expected ErrBonusItemImmutable, got %v", err)
	}
	if _, err := RemoveManual(items, "comision", 99); err != ErrBonusItemNotFound {
		t.Fatalf("expected ErrBonusItemNotFound, got %v", err)
	}

	out, err := RemoveManual(items, "comision", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Source != BonusSourceFetched {
		t.Fatalf("expected only the fetched item to remain, got %+v", out)
	}
}
