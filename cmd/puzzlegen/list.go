package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/puzzlegen/internal/infrastructure/storage"
)

var listDir string

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored puzzle records",
		RunE:  runList,
	}
	listCmd.Flags().StringVarP(&listDir, "output", "o", "./data", "Directory holding puzzle JSON records")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	metas, err := storage.NewFS(listDir).List(ctx)
	if err != nil {
		return err
	}
	for _, m := range metas {
		created := time.Unix(0, m.CreatedAt).Format(time.RFC3339)
		fmt.Printf("%s  %-6s  clues=%-2d  %s\n", m.ID, m.Difficulty, m.ClueCount, created)
	}
	fmt.Printf("%d record(s)\n", len(metas))
	return nil
}
