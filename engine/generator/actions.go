package generator

// Generated CRUD actions.
const (
	ActionList   = "list"
	ActionFilter = "filter"
	ActionShow   = "show"
	ActionNew    = "new"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

var (
	readActions  = []string{ActionList, ActionFilter, ActionShow}
	writeActions = []string{ActionList, ActionFilter, ActionShow, ActionNew, ActionEdit, ActionDelete}
)

// Actions returns the generated action set. withWrite selects the
// read-write variant.
func Actions(withWrite bool) []string {
	src := readActions
	if withWrite {
		src = writeActions
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// RecordActions restricts an action set to the per-record link actions the
// list view renders, preserving order.
func RecordActions(actions []string) []string {
	var out []string
	for _, action := range actions {
		if action == ActionShow || action == ActionEdit {
			out = append(out, action)
		}
	}
	return out
}

func hasAction(actions []string, action string) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
