package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newEntriesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Inspect configured credentials",
	}

	var domainName string
	list := &cobra.Command{
		Use:   "list",
		Short: "List configured entries",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			entries, err := a.hub.Store().List(ctx, domainName)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDOMAIN\tTITLE\tCREATED")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.Domain, e.Title, e.CreatedAt.Format(time.RFC3339))
			}
			return tw.Flush()
		}),
	}
	list.Flags().StringVar(&domainName, "domain", "", "only list entries of this domain")

	remove := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an entry and its credential",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			if err := a.hub.Store().Remove(ctx, args[0]); err != nil {
				return err
			}
			mutedText.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		}),
	}

	cmd.AddCommand(list, remove)
	return cmd
}
