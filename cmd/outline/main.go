package main

import (
	"context"
	"fmt"
	"os"
	"summa-reader/internal/config"
	"summa-reader/internal/domain"
	"summa-reader/internal/loader"
	"summa-reader/internal/logger"
	"summa-reader/internal/outline"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		source    string
		tableFile string
		partID    string
		articles  bool
		totals    bool
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Print the outline of the Summa document",
		Long: `Loads the document once and prints its parts, question groups and questions as a tree.
Questions outside every group of a part are listed under "` + outline.UngroupedLabel + `".`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Initialize(config.LoggerConfig{Level: "warn"}); err != nil {
				return err
			}
			defer logger.Sync()

			table := domain.DefaultGroupTable()
			if tableFile != "" {
				t, err := domain.LoadGroupTable(tableFile)
				if err != nil {
					return err
				}
				table = t
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			doc, err := loader.NewLoader(loader.NewSource(source, timeout)).LoadDocument(ctx)
			if err != nil {
				return err
			}

			tree, err := outline.Render(doc, table, outline.Options{PartID: partID, Articles: articles})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tree)

			if totals {
				t := doc.VerifyTotals()
				fmt.Fprintf(cmd.OutOrStdout(), "\nquestions: %d declared, %d actual\narticles: %d declared, %d actual\nconsistent: %t\n",
					t.DeclaredQuestions, t.ActualQuestions, t.DeclaredArticles, t.ActualArticles, t.Consistent)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "./data/sumaDeTeologia.json", "document URL or file path")
	cmd.Flags().StringVar(&tableFile, "table", "", "YAML file replacing the built-in group table")
	cmd.Flags().StringVarP(&partID, "part", "p", "", "only print this part")
	cmd.Flags().BoolVarP(&articles, "articles", "a", false, "list the articles of every question")
	cmd.Flags().BoolVar(&totals, "totals", false, "compare declared totals with the document")
	cmd.Flags().DurationVar(&timeout, "timeout", 20*time.Second, "load timeout")
	return cmd
}
