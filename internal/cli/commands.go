// Package cli implements okadactl, the terminal front end of the order
// status workflow.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"okada/internal/core/domain/model/order"
	"okada/internal/workflow"

	"github.com/spf13/cobra"
)

// ServiceFactory builds the order service for a loaded profile.
type ServiceFactory func(Profile) (workflow.OrderService, error)

// HTTPServiceFactory talks to the server named in the profile.
func HTTPServiceFactory(p Profile) (workflow.OrderService, error) {
	return workflow.NewClient(p.Server, p.Token, p.Timeout)
}

type app struct {
	out         io.Writer
	newService  ServiceFactory
	profilePath string
	server      string
	token       string

	svc workflow.OrderService
	r   *Renderer
}

// NewRootCommand assembles the okadactl command tree.
func NewRootCommand(out io.Writer, newService ServiceFactory) *cobra.Command {
	a := &app{out: out, newService: newService}

	root := &cobra.Command{
		Use:           "okadactl",
		Short:         "Drive the Okada order status workflow",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	root.PersistentFlags().StringVar(&a.profilePath, "profile", "", "profile file (default "+DefaultProfilePath()+")")
	root.PersistentFlags().StringVar(&a.server, "server", "", "order service base URL, overrides the profile")
	root.PersistentFlags().StringVar(&a.token, "token", "", "bearer token, overrides the profile")

	orders := &cobra.Command{Use: "orders", Short: "Inspect and move orders"}
	orders.AddCommand(
		a.ordersListCommand(),
		a.ordersShowCommand(),
		a.ordersHistoryCommand(),
		a.ordersNextCommand(),
		a.ordersTransitionCommand(),
		a.ordersEditCommand(),
	)

	riders := &cobra.Command{Use: "riders", Short: "Inspect riders"}
	riders.AddCommand(a.ridersAvailableCommand())

	root.AddCommand(orders, riders)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	path, required := a.profilePath, true
	if path == "" {
		path, required = DefaultProfilePath(), false
	}

	profile, err := LoadProfile(path, required)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("server") {
		profile.Server = a.server
	}
	if cmd.Flags().Changed("token") {
		profile.Token = a.token
	}

	a.svc, err = a.newService(profile)
	if err != nil {
		return err
	}
	a.r = NewRenderer(a.out)
	return nil
}

func parseOrderID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid order id %q", arg)
	}
	return id, nil
}

func (a *app) ordersListCommand() *cobra.Command {
	var params workflow.ListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if params.Status != "" {
				if _, err := order.ParseStatus(params.Status); err != nil {
					return err
				}
			}
			page, err := a.svc.ListOrders(cmd.Context(), params)
			if err != nil {
				return err
			}
			a.r.Orders(page)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Search, "search", "", "match order number or delivery address")
	cmd.Flags().StringVar(&params.Status, "status", "", "only orders in this status")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "number of orders to skip")
	return cmd
}

func (a *app) ordersShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <order-id>",
		Short: "Show an order with its status badge and timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			details, err := a.svc.GetOrder(cmd.Context(), id)
			if err != nil {
				return err
			}
			a.r.OrderDetails(details)
			return nil
		},
	}
}

func (a *app) ordersHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history <order-id>",
		Short: "Show status and edit history, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			d, err := workflow.Open(cmd.Context(), a.svc, id)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, a.r.heading.Render("Status history"))
			if err = d.StatusHistoryError(); err != nil {
				a.r.Unavailable("status history", err)
			} else {
				a.r.StatusHistory(d.StatusHistory())
			}
			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, a.r.heading.Render("Edit history"))
			if err = d.EditHistoryError(); err != nil {
				a.r.Unavailable("edit history", err)
			} else {
				a.r.EditHistory(d.EditHistory())
			}
			return nil
		},
	}
}

func (a *app) ordersNextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "next <status>",
		Short: "List the statuses that may follow a status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := order.ParseStatus(args[0]); err != nil {
				return err
			}
			res, err := a.svc.GetNextStatuses(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			next := make([]order.Status, 0, len(res.Next))
			for _, name := range res.Next {
				s, err := order.ParseStatus(name)
				if err != nil {
					return err
				}
				next = append(next, s)
			}
			a.r.NextStatuses(next)
			return nil
		},
	}
}

func (a *app) ordersTransitionCommand() *cobra.Command {
	var (
		riderID int64
		notes   string
	)

	cmd := &cobra.Command{
		Use:   "transition <order-id> <status>",
		Short: "Move an order to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			target, err := order.ParseStatus(args[1])
			if err != nil {
				return err
			}

			d, err := workflow.Open(cmd.Context(), a.svc, id)
			if err != nil {
				return err
			}
			if d.IsFinal() {
				return fmt.Errorf("order %d is %s: %w", id, d.Status(), order.ErrStatusIsFinal)
			}
			if err = d.Select(target); err != nil {
				return err
			}
			if cmd.Flags().Changed("rider") {
				if d.RidersError() != nil {
					if err = d.ReloadRiders(cmd.Context()); err != nil {
						return fmt.Errorf("loading available riders: %w", err)
					}
				}
				if err = d.SelectRider(riderID); err != nil {
					return err
				}
			}
			d.SetNotes(notes)

			transition, err := d.Confirm(cmd.Context())
			if err != nil && transition.NewStatus == "" {
				return err
			}
			a.r.Transition(transition)
			return err
		},
	}

	cmd.Flags().Int64Var(&riderID, "rider", 0, "rider to assign, required for rider_assigned")
	cmd.Flags().StringVar(&notes, "notes", "", "note stored with the history record")
	return cmd
}

func (a *app) ordersEditCommand() *cobra.Command {
	var address, lat, lng, payment, notes, reason string

	cmd := &cobra.Command{
		Use:   "edit <order-id>",
		Short: "Edit delivery details or notes of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var update workflow.OrderUpdate
			if flags.Changed("address") {
				update.DeliveryAddress = &address
			}
			if flags.Changed("lat") {
				update.DeliveryLat = &lat
			}
			if flags.Changed("lng") {
				update.DeliveryLng = &lng
			}
			if flags.Changed("payment") {
				update.PaymentMethod = &payment
			}
			if flags.Changed("notes") {
				update.Notes = &notes
			}
			if flags.Changed("reason") {
				update.Reason = &reason
			}

			d, err := workflow.Open(cmd.Context(), a.svc, id)
			if err != nil {
				return err
			}
			edits, err := d.Edit(cmd.Context(), update)
			if err != nil && len(edits) == 0 {
				return err
			}
			a.r.EditHistory(edits)
			return err
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "new delivery address")
	cmd.Flags().StringVar(&lat, "lat", "", "new delivery latitude")
	cmd.Flags().StringVar(&lng, "lng", "", "new delivery longitude")
	cmd.Flags().StringVar(&payment, "payment", "", "new payment method (mtn_money, orange_money, cash)")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes, empty to clear")
	cmd.Flags().StringVar(&reason, "reason", "", "reason recorded with every edited field")
	return cmd
}

func (a *app) ridersAvailableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "available",
		Short: "List riders that can be assigned, best rated first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			riders, err := a.svc.GetAvailableRiders(cmd.Context())
			if err != nil {
				return err
			}
			a.r.Riders(riders)
			return nil
		},
	}
}

// Execute runs okadactl and returns the process exit code.
func Execute(ctx context.Context, args []string, out io.Writer) int {
	root := NewRootCommand(out, HTTPServiceFactory)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		NewRenderer(out).Error(err)
		return 1
	}
	return 0
}
