package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thanvish21/systemx/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored candidate profile",
	Long:  "Deletes the persisted profile so the next login runs the diagnostic again. The request log is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ProfileRepo().Delete(context.Background()); err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		fmt.Println("Profile deleted. Next login starts a fresh calibration.")
		return nil
	},
}
