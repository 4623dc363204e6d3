package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/nuggetscustoms/site/orders"
	"github.com/spf13/cobra"
)

func (a *app) ordersCommand() *cobra.Command {
	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect and edit the commission order store",
	}

	ordersCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List orders, most recent first",
		Args:  cobra.NoArgs,
		RunE:  a.withOrders(listOrders),
	})

	var newOrder orders.NewOrder
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create an order",
		Args:  cobra.NoArgs,
		RunE: a.withOrders(func(cmd *cobra.Command, repo orders.Repo, args []string) error {
			order, err := repo.Create(newOrder)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", order.ID)
			return nil
		}),
	}
	addCmd.Flags().StringVar(&newOrder.Client, "client", "", "Client the commission is for")
	addCmd.Flags().StringVar(&newOrder.Title, "title", "", "What is being made")
	addCmd.Flags().StringVar(&newOrder.Status, "status", "", "Initial status (default \""+orders.DefaultStatus+"\")")
	ordersCmd.AddCommand(addCmd)

	ordersCmd.AddCommand(&cobra.Command{
		Use:   "status <id> <status>",
		Short: "Set the status of an order",
		Args:  cobra.ExactArgs(2),
		RunE: a.withOrders(func(cmd *cobra.Command, repo orders.Repo, args []string) error {
			status := args[1]
			order, err := repo.Update(args[0], orders.Patch{Status: &status})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", order.ID, order.Status)
			return nil
		}),
	})

	ordersCmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: a.withOrders(func(cmd *cobra.Command, repo orders.Repo, args []string) error {
			if err := repo.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		}),
	})

	return ordersCmd
}

type ordersRunE func(cmd *cobra.Command, repo orders.Repo, args []string) error

// withOrders opens the configured order store around fn.
func (a *app) withOrders(fn ordersRunE) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openOrders(a.config)
		if err != nil {
			return err
		}
		defer closeRepo()
		return fn(cmd, repo, args)
	}
}

func listOrders(cmd *cobra.Command, repo orders.Repo, _ []string) error {
	list, err := repo.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No orders")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCLIENT\tTITLE\tSTATUS\tUPDATED")
	for _, o := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", o.ID, o.Client, o.Title, o.Status, o.UpdatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}
