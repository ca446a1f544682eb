// Package listflags wires the scripted listing flags shared by every
// entity's list command: --search, --page and --page-size. Interactive
// browsing has its own search and paging; these flags serve pipelines
// and non-TTY use.
package listflags

import (
	"sirivaram/sirictl/internal/listview"

	"github.com/spf13/cobra"
)

// Register adds the scripted listing flags to a list command.
func Register(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "Filter rows by a case-insensitive substring")
	cmd.Flags().Int("page", 0, "Page of results to print (0 prints all matches)")
	cmd.Flags().Int("page-size", 0, "Rows per page when --page is set")
}

// Scripted reports whether any scripted listing flag was set, which
// forces plain output even on a terminal.
func Scripted(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("search") ||
		cmd.Flags().Changed("page") ||
		cmd.Flags().Changed("page-size")
}

// Apply filters and windows items per the flags. Without --page the
// whole filtered set is returned; an out-of-range page is clamped.
func Apply[T any](cmd *cobra.Command, items []T, searchText func(T) string) []T {
	search, _ := cmd.Flags().GetString("search")
	page, _ := cmd.Flags().GetInt("page")
	size, _ := cmd.Flags().GetInt("page-size")

	state := listview.New(searchText, size)
	state.SetItems(items)
	state.CommitSearch(state.SetSearch(search))

	if page <= 0 {
		return state.Filtered()
	}
	state.SetPage(page)
	return state.Window()
}
