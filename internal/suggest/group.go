package suggest

// Group is one keyed run of items, for example the tabs of a single window.
type Group struct {
	Key   string
	Label string
	Color int
	Items []Item
}

// Grouped is an ordered collection of groups. Group order is the order in
// which keys were first seen; items inside a group keep source order.
type Grouped []Group

// GroupBy partitions items by key, preserving first-seen key order.
func GroupBy(items []Item, key func(Item) string) Grouped {
	if len(items) == 0 {
		return nil
	}
	index := make(map[string]int)
	groups := make(Grouped, 0)
	for _, item := range items {
		k := key(item)
		pos, ok := index[k]
		if !ok {
			pos = len(groups)
			index[k] = pos
			groups = append(groups, Group{Key: k, Label: item.GroupLabel, Color: item.GroupColor})
		}
		groups[pos].Items = append(groups[pos].Items, item)
	}
	return groups
}

// Keys returns group keys in iteration order.
func (g Grouped) Keys() []string {
	keys := make([]string, len(g))
	for i, group := range g {
		keys[i] = group.Key
	}
	return keys
}

// Get returns the items stored under key.
func (g Grouped) Get(key string) ([]Item, bool) {
	for _, group := range g {
		if group.Key == key {
			return group.Items, true
		}
	}
	return nil, false
}

// Len returns the number of items across all groups.
func (g Grouped) Len() int {
	n := 0
	for _, group := range g {
		n += len(group.Items)
	}
	return n
}

// Flatten returns every item in group order.
func (g Grouped) Flatten() []Item {
	items := make([]Item, 0, g.Len())
	for _, group := range g {
		items = append(items, group.Items...)
	}
	return items
}
