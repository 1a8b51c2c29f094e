package finiquito

// GroupByConcept builds the concept grouping used for averaging. Concept keys
// are an open set coming straight from payroll history; order within a group
// follows each item's stable index.
func GroupByConcept(items []BonusItem) map[string][]BonusItem {
	groups := make(map[string][]BonusItem)
	for _, item := range items {
		groups[item.Concepto] = append(groups[item.Concepto], item)
	}
	return groups
}

// AverageBonus sums, per concept, the average of the active items in that
// group. A group whose items are all inactive contributes zero. The result is
// unrounded; rounding happens only when the value lands in the settlement.
func AverageBonus(items []BonusItem) float64 {
	total := 0.0
	for _, group := range GroupByConcept(items) {
		sum := 0.0
		active := 0
		for _, item := range group {
			if item.Active {
				sum += item.Amount
				active++
			}
		}
		if active > 0 {
			total += sum / float64(active)
		}
	}
	return total
}

// ToggleItem returns a copy of items with the matching item's active flag set.
func ToggleItem(items []BonusItem, concepto string, index int, active bool) ([]BonusItem, error) {
	out := make([]BonusItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].Concepto == concepto && out[i].Index == index {
			out[i].Active = active
			return out, nil
		}
	}
	return nil, ErrBonusItemNotFound
}

// ToggleGroup sets every item of a concept group, fetched and manual alike,
// to the same active state.
func ToggleGroup(items []BonusItem, concepto string, active bool) []BonusItem {
	out := make([]BonusItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].Concepto == concepto {
			out[i].Active = active
		}
	}
	return out
}

// AddManual appends an operator-entered bonus line to a concept group. Manual
// entries are always created active and take the next index in their group.
func AddManual(items []BonusItem, concepto string, amount float64) []BonusItem {
	next := 0
	for _, item := range items {
		if item.Concepto == concepto && item.Index >= next {
			next = item.Index + 1
		}
	}
	out := make([]BonusItem, len(items), len(items)+1)
	copy(out, items)
	return append(out, BonusItem{
		Concepto: concepto,
		Amount:   amount,
		Active:   true,
		Source:   BonusSourceManual,
		Index:    next,
	})
}

// RemoveManual deletes an operator-entered line. Fetched history can only be
// deactivated, never removed.
func RemoveManual(items []BonusItem, concepto string, index int) ([]BonusItem, error) {
	for i, item := range items {
		if item.Concepto != concepto || item.Index != index {
			continue
		}
		if item.Source != BonusSourceManual {
			return nil, ErrBonusItemImmutable
		}
		out := make([]BonusItem, 0, len(items)-1)
		out = append(out, items[:i]...)
		out = append(out, items[i+1:]...)
		return out, nil
	}
	return nil, ErrBonusItemNotFound
}
