package cli

import (
	"ITInventory/internal/model"
	"ITInventory/internal/query"
	"ITInventory/internal/repo"
	"ITInventory/internal/service"
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// withInventory opens storage, checks the session and loads the working set.
func (a *App) withInventory(ctx context.Context, fn func(svc *service.InventoryService) error) error {
	return a.withStore(ctx, func(r repo.Repository) error {
		if _, err := a.requireLogin(ctx, r); err != nil {
			return err
		}
		svc := service.NewInventoryService(r, a.log)
		if _, err := svc.Reload(ctx); err != nil {
			return err
		}
		return fn(svc)
	})
}

func (a *App) siteLocations() []string {
	if len(a.cfg.SiteLocations) > 0 {
		return a.cfg.SiteLocations
	}
	return model.DefaultSiteLocations
}

// resolveLocation turns the --location/--other pair into the stored value.
func (a *App) resolveLocation(choice, other string) (string, error) {
	options := model.LocationOptions(a.siteLocations())
	if choice == model.LocationOther {
		loc := model.NormalizeLocation(choice, other)
		if loc == "" {
			return "", fmt.Errorf("%w: --other is required with --location %s", errUsage, model.LocationOther)
		}
		return loc, nil
	}
	if choice == "" || slices.Contains(options, choice) {
		return choice, nil
	}
	return "", fmt.Errorf("%w: unknown location %q (see `itinventory locations`, or use --location %s --other <text>)",
		errUsage, choice, model.LocationOther)
}

func printItems(w io.Writer, items []model.InventoryItem) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDEVICE NAME\tSERIAL NUMBER\tLOCATION\tSTATUS\tASSIGNED TO")
	for _, it := range items {
		status := it.Status
		if query.BucketOf(it.Status) == query.BucketUnknown {
			status += " (?)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			it.ID, it.DeviceName, it.SerialNumber, it.Location, status, it.AssignedTo)
	}
	return tw.Flush()
}

// printItem shows one record; a location outside the option list is marked as custom.
func (a *App) printItem(w io.Writer, it *model.InventoryItem) {
	location := it.Location
	if choice, _ := model.SplitLocation(it.Location, model.LocationOptions(a.siteLocations())); choice == model.LocationOther && location != "" {
		location += " (custom)"
	}
	fmt.Fprintf(w, "ID:            %s\n", it.ID)
	fmt.Fprintf(w, "Device Name:   %s\n", it.DeviceName)
	fmt.Fprintf(w, "Serial Number: %s\n", it.SerialNumber)
	fmt.Fprintf(w, "Location:      %s\n", location)
	fmt.Fprintf(w, "Status:        %s\n", it.Status)
	fmt.Fprintf(w, "Assigned To:   %s\n", it.AssignedTo)
}

func newListCmd(a *App) *cobra.Command {
	var q string
	cmd := &cobra.Command{
		Use:   "list [search]",
		Short: "List inventory, optionally filtered by a search string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				q = args[0]
			}
			return a.withInventory(cmd.Context(), func(svc *service.InventoryService) error {
				items := svc.Search(q)
				if err := printItems(cmd.OutOrStdout(), items); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d of %d items\n", len(items), len(svc.Items()))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&q, "query", "q", "", "case-insensitive search over all fields")
	return cmd
}

func newStatsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show item counts by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withInventory(cmd.Context(), func(svc *service.InventoryService) error {
				c := svc.Stats()
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "Total:     %d\n", c.Total)
				fmt.Fprintf(w, "In Use:    %d\n", c.InUse)
				fmt.Fprintf(w, "Available: %d\n", c.Available)
				fmt.Fprintf(w, "Retired:   %d\n", c.Retired)
				if u := c.Unknown(); u > 0 {
					fmt.Fprintf(w, "Unknown:   %d\n", u)
				}
				return nil
			})
		},
	}
}

type itemFlags struct {
	device, serial, location, other, status, assigned string
}

func (f *itemFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.device, "device", "", "device name")
	cmd.Flags().StringVar(&f.serial, "serial", "", "serial number")
	cmd.Flags().StringVar(&f.location, "location", "", "location (see `itinventory locations`)")
	cmd.Flags().StringVar(&f.other, "other", "", "free-text location, used with --location Other")
	cmd.Flags().StringVar(&f.status, "status", "", "In Use|Available|Retired")
	cmd.Flags().StringVar(&f.assigned, "assigned", "", "person or team the device is assigned to")
}

func newAddCmd(a *App) *cobra.Command {
	var f itemFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.resolveLocation(f.location, f.other)
			if err != nil {
				return err
			}
			fields := model.ItemFields{
				DeviceName:   f.device,
				SerialNumber: f.serial,
				Location:     loc,
				Status:       f.status,
				AssignedTo:   f.assigned,
			}
			return a.withInventory(cmd.Context(), func(svc *service.InventoryService) error {
				it, err := svc.Add(cmd.Context(), fields)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added item %s\n", it.ID)
				a.printItem(cmd.OutOrStdout(), it)
				return nil
			})
		},
	}
	f.bind(cmd)
	_ = cmd.MarkFlagRequired("device")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

// edit replaces only the fields whose flags were given.
func newEditCmd(a *App) *cobra.Command {
	var f itemFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			flags := cmd.Flags()
			return a.withInventory(cmd.Context(), func(svc *service.InventoryService) error {
				cur, err := svc.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				fields := cur.ItemFields
				if flags.Changed("device") {
					fields.DeviceName = f.device
				}
				if flags.Changed("serial") {
					fields.SerialNumber = f.serial
				}
				if flags.Changed("location") || flags.Changed("other") {
					choice := f.location
					if !flags.Changed("location") {
						choice = model.LocationOther
					}
					loc, err := a.resolveLocation(choice, f.other)
					if err != nil {
						return err
					}
					fields.Location = loc
				}
				if flags.Changed("status") {
					fields.Status = f.status
				}
				if flags.Changed("assigned") {
					fields.AssignedTo = f.assigned
				}
				it, err := svc.Edit(cmd.Context(), id, fields)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated item %s\n", it.ID)
				a.printItem(cmd.OutOrStdout(), it)
				return nil
			})
		},
	}
	f.bind(cmd)
	return cmd
}

func newDeleteCmd(a *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return a.withInventory(cmd.Context(), func(svc *service.InventoryService) error {
				it, err := svc.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				if !yes {
					fmt.Fprintf(cmd.OutOrStdout(), "Delete %s (%s)? [y/N] ", it.DeviceName, it.SerialNumber)
					line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
					switch strings.ToLower(strings.TrimSpace(line)) {
					case "y", "yes":
					default:
						fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
						return nil
					}
				}
				if err := svc.Delete(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %s\n", id)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func newExportCmd(a *App) *cobra.Command {
	var format, q string
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Export inventory to CSV or XLSX",
		Long: `Export writes the inventory to a file. The format is taken from --format,
or from the file extension (.xlsx for Excel, anything else for CSV).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			format = strings.ToLower(format)
			return a.withInventory(cmd.Context(), func(svc *service.InventoryService) error {
				n := len(svc.Search(q))
				if err := svc.ExportMatching(path, format, q); err != nil {
					return err
				}
				size := ""
				if st, err := os.Stat(path); err == nil {
					size = " (" + humanize.Bytes(uint64(st.Size())) + ")"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d items to %s%s\n", n, path, size)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "csv|xlsx (default: from file extension)")
	cmd.Flags().StringVarP(&q, "query", "q", "", "export only items matching the search string")
	return cmd
}

func newLocationsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List location options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range model.LocationOptions(a.siteLocations()) {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}
}
