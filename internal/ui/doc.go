// Package ui contains the Bubble Tea program that powers the tab finder.
// The Model type focuses on message orchestration, while dedicated helpers own
// query resolution, row construction, input, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Editing the search box issues a query. Every query is tagged with a
//     sequence number and resolved by the aggregator inside a tea.Cmd; the
//     resultsMsg handler drops any completion that is not the latest.
//   - Accepted results replace the view model and rebuild the listbox rows
//     (patch). Each row body is handed to the lazy scheduler, and the listbox
//     mutation notification makes the combobox re-clamp its selection.
//
// Frames:
//   - The scheduler and the combobox ask for frames. Requests made during one
//     Update are coalesced into a single tea.Tick; the frameMsg handler drains
//     the scheduler, applies pending scroll requests, and delivers visibility
//     notifications for the current viewport.
//
// Actions:
//   - Activating a row runs its action through the command bus. Tab switches
//     and foreground opens quit the program on success; settings rows switch
//     the theme and persist it.
package ui
