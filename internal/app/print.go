package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/tabfinder/internal/format/table"
	"github.com/atomicstack/tabfinder/internal/suggest"
	"github.com/atomicstack/tabfinder/internal/ui"
)

// Print resolves query once and writes the view model as an aligned table
// of kind, group, title and URL.
func Print(ctx context.Context, resolver ui.Resolver, query string, w io.Writer) error {
	vm, err := resolver.Resolve(ctx, query)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", query, err)
	}
	items := vm.Items()
	if len(items) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Kind.String(), groupLabel(item), item.Title, item.URL})
	}
	for _, line := range table.Format(rows, nil) {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func groupLabel(item suggest.Item) string {
	if item.GroupLabel != "" {
		return item.GroupLabel
	}
	return "-"
}
