package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thanvish21/systemx/internal/app"
	"github.com/thanvish21/systemx/internal/llm"
	"github.com/thanvish21/systemx/internal/mentor"
	"github.com/thanvish21/systemx/internal/session"
	"github.com/thanvish21/systemx/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// A missing LLM provider degrades the mentor to the recovery line rather
// than blocking startup.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctrl := session.NewController(st.ProfileRepo())
	if err := ctrl.Boot(ctx); err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	var provider llm.Provider
	if p, err := llm.NewProviderFromEnv(ctx, st.RequestLog()); err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Mentor uplink will answer in recovery mode.")
	} else {
		provider = p
	}

	return app.Run(ctrl, mentor.New(provider))
}
