// Package dashboard implements the cross-entity overview command.
package dashboard

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"sirivaram/sirictl/internal/api"
	"sirivaram/sirictl/internal/domain"

	"golang.org/x/sync/errgroup"

	"github.com/spf13/cobra"
)

// NewCommand returns the "dashboard" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show counts across all entities",
		Long: `Show an at-a-glance summary: totals per entity and the review
backlogs (pending registrations and unverified payments). All lists
are fetched concurrently.

Examples:
  sirictl dashboard
  sirictl dashboard -o json`,
		RunE:         runDashboard,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

type summary struct {
	Users           int `json:"users"`
	PendingUsers    int `json:"pendingUsers"`
	Payments        int `json:"payments"`
	PendingPayments int `json:"pendingPayments"`
	Blogs           int `json:"blogs"`
	ActiveBlogs     int `json:"activeBlogs"`
	Events          int `json:"events"`
	GalleryImages   int `json:"galleryImages"`
}

func runDashboard(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	client, err := api.Resolve()
	if err != nil {
		return err
	}

	var (
		users    []domain.User
		payments []domain.Payment
		blogs    []domain.Blog
		events   []domain.Event
		images   []domain.GalleryItem
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		users, err = client.ListUsers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = client.ListPayments(ctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		blogs, err = client.ListBlogs(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = client.ListEvents(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		images, err = client.ListGallery(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	s := summary{
		Users:         len(users),
		Payments:      len(payments),
		Blogs:         len(blogs),
		Events:        len(events),
		GalleryImages: len(images),
	}
	for _, u := range users {
		if u.Status == domain.UserPending {
			s.PendingUsers++
		}
	}
	for _, p := range payments {
		if p.Status == domain.PaymentPendingVerification {
			s.PendingPayments++
		}
	}
	for _, b := range blogs {
		if b.IsActive {
			s.ActiveBlogs++
		}
	}

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ENTITY\tTOTAL\tNEEDS ATTENTION")
	fmt.Fprintln(w, "------\t-----\t---------------")
	fmt.Fprintf(w, "Users\t%d\t%s\n", s.Users, backlog(s.PendingUsers, "pending approval"))
	fmt.Fprintf(w, "Payments\t%d\t%s\n", s.Payments, backlog(s.PendingPayments, "awaiting verification"))
	fmt.Fprintf(w, "Blogs\t%d\t%d active\n", s.Blogs, s.ActiveBlogs)
	fmt.Fprintf(w, "Events\t%d\t-\n", s.Events)
	fmt.Fprintf(w, "Gallery\t%d\t-\n", s.GalleryImages)
	w.Flush()
	return nil
}

func backlog(n int, label string) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("%d %s", n, label)
}
