package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"inventory-workflow-backend/internal/grouping"
	"inventory-workflow-backend/internal/matching"
	"inventory-workflow-backend/internal/models"
	"inventory-workflow-backend/internal/services"
	"inventory-workflow-backend/internal/supabase"
)

var batchColumns = []column{
	{Header: "#", Numeric: true},
	{Header: "Batch"},
	{Header: "Step", Numeric: true},
	{Header: "Images", Numeric: true},
	{Header: "Products", Numeric: true},
	{Header: "Processed", Numeric: true},
	{Header: "Updated"},
}

var productColumns = []column{
	{Header: "Group"},
	{Header: "Images", Numeric: true},
	{Header: "Category"},
	{Header: "Title", MaxWidth: 48},
	{Header: "Match"},
}

func newBatchesCommand(ctx *commandContext) *cobra.Command {
	batchesCmd := &cobra.Command{
		Use:   "batches",
		Short: "Inspect saved workflow batches",
	}
	batchesCmd.AddCommand(newBatchesListCommand(ctx))
	batchesCmd.AddCommand(newBatchesShowCommand(ctx))
	return batchesCmd
}

func newService(ctx *commandContext) (*services.WorkflowService, error) {
	cfg, db, err := ctx.open()
	if err != nil {
		return nil, err
	}
	log := ctx.logger()
	store := supabase.NewDatabaseClient(db, cfg.DatabaseDriver)
	matcher := matching.NewMatcher(store, log, cfg.OrphanMatchWindow)
	return services.NewWorkflowService(store, store, nil, matcher, log), nil
}

func newBatchesListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List batches, most recently updated first",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(ctx)
			if err != nil {
				return err
			}
			batches, err := svc.ListBatches(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(batches) == 0 {
				fmt.Fprintln(out, "No batches saved")
				return nil
			}

			rows := make([][]string, 0, len(batches))
			for _, b := range batches {
				rows = append(rows, []string{
					strconv.Itoa(b.BatchNumber),
					b.ID.String(),
					strconv.Itoa(b.CurrentStep),
					strconv.Itoa(b.TotalImages),
					strconv.Itoa(b.ProductGroupsCount),
					strconv.Itoa(b.ProcessedCount),
					b.UpdatedAt.Local().Format(time.DateTime),
				})
			}
			fmt.Fprint(out, renderTable(batchColumns, rows))
			fmt.Fprintln(out)
			return nil
		},
	}
}

func newBatchesShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <batch-id>",
		Short: "Reopen a batch and show its products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batchID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid batch id %q: %w", args[0], err)
			}
			svc, err := newService(ctx)
			if err != nil {
				return err
			}
			res, err := svc.OpenBatch(cmd.Context(), batchID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := res.Summary
			fmt.Fprintf(out, "Batch %d (%s)\n", res.State.CurrentBatchNumber, batchID)
			fmt.Fprintf(out, "Step %d: %d images, %d products, %d categorized, %d processed\n",
				s.CurrentStep, s.TotalImages, s.ProductGroupsCount, s.CategorizedCount, s.ProcessedCount)

			items := res.State.ProcessedItems
			if len(items) == 0 {
				items = res.State.GroupedImages
			}
			groups := grouping.Groups(items)
			if len(groups) == 0 {
				return nil
			}

			rows := make([][]string, 0, len(groups))
			for _, g := range groups {
				lead := g.Items[0]
				rows = append(rows, []string{
					g.Key,
					strconv.Itoa(len(g.Items)),
					lead.Category,
					lead.SEOTitle,
					matchLabel(g.Items),
				})
			}
			fmt.Fprint(out, renderTable(productColumns, rows))
			fmt.Fprintln(out)
			return nil
		},
	}
}

// matchLabel lists the distinct match confidences of a group's items.
func matchLabel(items []models.Item) string {
	seen := make(map[models.MatchConfidence]bool)
	var labels []string
	for _, item := range items {
		if item.MatchConfidence == models.MatchNone || seen[item.MatchConfidence] {
			continue
		}
		seen[item.MatchConfidence] = true
		labels = append(labels, string(item.MatchConfidence))
	}
	if len(labels) == 0 {
		return "-"
	}
	return strings.Join(labels, ",")
}
