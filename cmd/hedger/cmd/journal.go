package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/hedger/journal"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query recorded scenarios",
	Long: `Query and display scenarios recorded to the SQLite journal.

Subcommands:
  list  - List the most recent scenarios
  show  - Show a single scenario by ID
  day   - List scenarios recorded on a specific day

Examples:
  hedger journal list --limit 5
  hedger journal show 01JQ2Z7K8M9N0P1Q2R3S4T5V6W
  hedger journal day 2025-03-14`,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent scenarios",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List scenarios recorded on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var (
	journalDBPath string
	journalLimit  int
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalDayCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "", "path to SQLite journal (default: journal.db_path from config, else ./hedger.sqlite)")
	journalListCmd.Flags().IntVarP(&journalLimit, "limit", "n", 10, "number of scenarios to list")
}

func openJournalDB() (*journal.SQLite, error) {
	path := journalDBPath
	if path == "" {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		path = cfg.Journal.DBPath
	}
	if path == "" {
		path = "./hedger.sqlite"
	}

	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListRecent(journalLimit)
	if err != nil {
		return fmt.Errorf("query scenarios: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatScenariosOrg(recs))
	return nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetScenario(args[0])
	if err != nil {
		return fmt.Errorf("get scenario: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatScenarioOrg(rec))
	return nil
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB()
	if err != nil {
		return err
	}
	defer j.Close()

	start, end, err := dayBounds(time.Local, args[0])
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	recs, err := j.ListScenariosBetween(start, end)
	if err != nil {
		return fmt.Errorf("query scenarios: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatScenariosOrg(recs))
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start, end, nil
}
