package suggest

// ViewModel is the consolidated result of one query. It is built fresh for
// every resolution and never patched in place.
type ViewModel struct {
	Tabs      Grouped
	Sessions  Grouped
	Bookmarks []Item
	Pages     []Item
	Settings  []Item
	Query     string
}

// Len returns the number of items across all sections.
func (vm ViewModel) Len() int {
	return vm.Tabs.Len() + vm.Sessions.Len() + len(vm.Bookmarks) + len(vm.Pages) + len(vm.Settings)
}

// Items returns every item in display order: tabs, bookmarks, pages,
// settings, then remote sessions.
func (vm ViewModel) Items() []Item {
	items := make([]Item, 0, vm.Len())
	items = append(items, vm.Tabs.Flatten()...)
	items = append(items, vm.Bookmarks...)
	items = append(items, vm.Pages...)
	items = append(items, vm.Settings...)
	items = append(items, vm.Sessions.Flatten()...)
	return items
}
