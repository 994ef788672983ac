package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clauscan/clauscan/internal/model"
	"github.com/clauscan/clauscan/internal/pipeline"
	"github.com/clauscan/clauscan/internal/store"
)

var (
	savedOwner string
	savedJSON  string
)

// savedCmd represents the saved command
var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage saved analyses",
	Long: `List, show, and delete analyses saved with 'clauscan analyze --save'.

Saved analyses are stored per user in ~/.clauscan/data.`,
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		list, err := s.List(context.Background(), savedOwner)
		if err != nil {
			return fmt.Errorf("list analyses: %w", err)
		}

		if len(list) == 0 {
			fmt.Println("No saved analyses.")
			return nil
		}

		for _, rec := range list {
			fmt.Printf("%s  %s  %s\n", rec.ID, rec.SavedAt.Local().Format("2006-01-02 15:04"), rec.Name)
		}
		return nil
	},
}

var savedShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		saved, err := s.Load(context.Background(), savedOwner, args[0])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no saved analysis with ID %s", args[0])
			}
			return fmt.Errorf("load analysis: %w", err)
		}

		renderer := pipeline.NewRenderer(true)
		if savedJSON != "" {
			if err := renderer.RenderJSON(saved.Analysis, savedJSON); err != nil {
				return fmt.Errorf("render JSON: %w", err)
			}
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", savedJSON)
			return nil
		}

		renderer.RenderSummary(saved.Analysis)
		return nil
	},
}

var savedDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		if err := s.Delete(context.Background(), savedOwner, args[0]); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no saved analysis with ID %s", args[0])
			}
			return fmt.Errorf("delete analysis: %w", err)
		}

		fmt.Printf("✓ Deleted analysis: %s\n", args[0])
		return nil
	},
}

func openStore() (*store.SQLiteStore, error) {
	cfg := model.DefaultConfig()
	s, err := store.NewSQLiteStore(cfg.Store.Dir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

func init() {
	rootCmd.AddCommand(savedCmd)
	savedCmd.AddCommand(savedListCmd)
	savedCmd.AddCommand(savedShowCmd)
	savedCmd.AddCommand(savedDeleteCmd)

	savedCmd.PersistentFlags().StringVar(&savedOwner, "user", "default", "owner ID for saved analyses")
	savedShowCmd.Flags().StringVar(&savedJSON, "json", "", "write the full analysis as JSON to this path")
}
