package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "itinventory",
		Short: "IT department inventory",
		Long: `itinventory keeps track of IT equipment: who has which device,
where it is and whether it is in use, available or retired.

Storage is a local SQLite file by default; PostgreSQL and MongoDB are
selected with --backend. Log in once, then list, search, edit and export.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Resolve(); err != nil {
				return err
			}
			if a.log == nil {
				log, err := NewLogger(a.cfg.LogLevel)
				if err != nil {
					return err
				}
				a.log = log
			}
			return nil
		},
	}
	a.cfg.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newListCmd(a),
		newStatsCmd(a),
		newAddCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newExportCmd(a),
		newResetAdminCmd(a),
		newLocationsCmd(a),
	)
	return root
}
