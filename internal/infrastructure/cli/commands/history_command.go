package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/movierec-go/internal/domain"
	"github.com/doeshing/movierec-go/internal/ports"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(session Session) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the request log",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(session),
		newHistorySearchCommand(session),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(session Session) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := historyReader(cmd, session)
			if err != nil {
				return err
			}
			return listHistoryEntries(cmd, store, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryLimit, "Max entries to show (0 for all)")
	return cmd
}

// newHistorySearchCommand creates the 'history search' subcommand
func newHistorySearchCommand(session Session) *cobra.Command {
	var (
		query       string
		searchLimit int
	)

	cmd := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search log entries by preference or titles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if query == "" && len(args) == 1 {
				query = args[0]
			}
			if query == "" {
				return errors.New(ErrQueryRequired)
			}
			store, err := historyReader(cmd, session)
			if err != nil {
				return err
			}
			return searchHistoryEntries(cmd, store, query, searchLimit)
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Search keyword")
	cmd.Flags().IntVar(&searchLimit, "limit", domain.DefaultHistorySearchLimit, "Limit search results")
	return cmd
}

func historyReader(cmd *cobra.Command, session Session) (ports.HistoryReader, error) {
	container, err := session.Container(cmd.Context())
	if err != nil {
		return nil, err
	}
	if container.HistoryStore == nil {
		return nil, errors.New(ErrHistoryStoreUnavailable)
	}
	return container.HistoryStore, nil
}

// listHistoryEntries lists recent log entries
func listHistoryEntries(cmd *cobra.Command, store ports.HistoryReader, limit int) error {
	if limit < 0 {
		return errors.New(ErrInvalidLimit)
	}

	records, err := store.Records(cmd.Context(), limit, "")
	if err != nil {
		return fmt.Errorf("failed to retrieve history records: %w", err)
	}
	return printEntries(cmd.OutOrStdout(), records, MsgNoHistoryRecorded)
}

// searchHistoryEntries searches the log for a keyword
func searchHistoryEntries(cmd *cobra.Command, store ports.HistoryReader, query string, limit int) error {
	if limit < 0 {
		return errors.New(ErrInvalidLimit)
	}

	records, err := store.Records(cmd.Context(), limit, query)
	if err != nil {
		return fmt.Errorf("failed to search history: %w", err)
	}
	return printEntries(cmd.OutOrStdout(), records, MsgNoMatches)
}

func printEntries(out io.Writer, records []domain.LogEntry, empty string) error {
	if len(records) == 0 {
		fmt.Fprintln(out, empty)
		return nil
	}
	renderEntries(out, records)
	return nil
}
