package reconcile

// statePrecedence orders review labels; lower wins.
var statePrecedence = map[ItemState]int{
	StateNew:      0,
	StateChanged:  1,
	StateUpdated:  2,
	StateArchived: 3,
}

// StateOf returns the highest-precedence label a single record qualifies for.
func StateOf(record ChangeRecord) ItemState {
	if record.Type == ChangeNew {
		return StateNew
	}

	var state ItemState
	for _, diff := range record.Diffs {
		var candidate ItemState
		switch {
		case diff.Field == "status" && diff.NewValue == string(StatusArchived):
			candidate = StateArchived
		case diff.Field == "commercial_code":
			candidate = StateUpdated
		default:
			candidate = StateChanged
		}
		state = higher(state, candidate)
	}
	return state
}

// ItemStates derives the review label of every item mentioned in the change list.
// When an item qualifies for several labels, new wins over changed, changed over
// updated and updated over archived.
func ItemStates(changes []ChangeRecord) map[string]ItemState {
	states := make(map[string]ItemState, len(changes))
	for _, record := range changes {
		state := StateOf(record)
		if state == "" {
			continue
		}
		states[record.ItemID] = higher(states[record.ItemID], state)
	}
	return states
}

func higher(current, candidate ItemState) ItemState {
	if current == "" {
		return candidate
	}
	if statePrecedence[candidate] < statePrecedence[current] {
		return candidate
	}
	return current
}
