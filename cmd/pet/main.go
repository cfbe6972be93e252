package main

import (
	"fmt"
	"os"
	"reflect"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-pet/internal/explore"
	"github.com/napolitain/solver-pet/internal/loader"
	"github.com/napolitain/solver-pet/internal/logger"
	"github.com/napolitain/solver-pet/internal/models"
	"github.com/napolitain/solver-pet/internal/report"
	"github.com/napolitain/solver-pet/internal/solver/pet"
	"github.com/napolitain/solver-pet/internal/store"
)

var (
	dataDir    string
	configFile string
	dbPath     string
	quiet      bool
	nextOnly   bool
	outcomes   bool
	qf         queryFlags
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

// run executes the CLI and closes the log file whether or not the command
// succeeded
func run(args []string) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err != nil {
		logger.Error("command failed", "error", err)
	}
	if closeErr := logger.Close(); err == nil {
		err = closeErr
	}
	return err
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pet",
		Short: "Pet raising cost solver",
		Long: `Computes the cheapest expected way to raise a pet from its current
levels to a goal, choosing between sacrifice attempts and candy feeding.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := logger.LoadConfig(configFile)
			if err != nil {
				return err
			}
			return logger.Initialize(config)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "data", "Path to data directory")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to YAML query file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "pet.db", "Path to the price profile database")

	rootCmd.AddCommand(newSolveCmd(), newExploreCmd(), newPricesCmd(), newStatesCmd())
	return rootCmd
}

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Show the expected cost and the best action",
		RunE:  runSolve,
	}
	qf.register(cmd.Flags())
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the summary")
	cmd.Flags().BoolVarP(&nextOnly, "next", "n", false, "Print only the next action")
	cmd.Flags().BoolVar(&outcomes, "outcomes", false, "Also print the outcomes of the best action")
	return cmd
}

func newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Walk through actions and outcomes interactively",
		RunE:  runExplore,
	}
	qf.register(cmd.Flags())
	return cmd
}

func newStatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "Print the size of the state space",
		RunE: func(cmd *cobra.Command, args []string) error {
			space, err := loadSpace()
			if err != nil {
				return err
			}
			return report.States(os.Stdout, space)
		},
	}
}

// loadSpace builds the state space for the data directory, reusing the
// shared default space when no tables file overrides it
func loadSpace() (*pet.Space, error) {
	tables, fromFile, err := loader.LoadTablesOrDefault(dataDir)
	if err != nil {
		return nil, err
	}
	if !fromFile {
		logger.Warning("no tables file, using built-in tables", "data", dataDir)
		return pet.DefaultSpace(), nil
	}
	if reflect.DeepEqual(tables, models.DefaultTables()) {
		return pet.DefaultSpace(), nil
	}
	logger.Info("loaded tables", "data", dataDir, "tiers", tables.NumTiers)
	return pet.NewSpace(tables), nil
}

func solveQuery(cmd *cobra.Command) (pet.Query, *pet.Result, error) {
	space, err := loadSpace()
	if err != nil {
		return pet.Query{}, nil, err
	}

	q, err := qf.query(cmd.Flags(), configFile, dbPath, space.Tables())
	if err != nil {
		return pet.Query{}, nil, err
	}

	logger.Debug("solving", "pet", q.Creature, "levels", q.Levels, "goal", q.Goal.StatMin, "states", space.Len())
	r, err := pet.Solve(space, q)
	if err != nil {
		return pet.Query{}, nil, err
	}
	logger.Info("solved", "pet", q.Creature, "status", r.Status(r.Current()).String())
	if r.Cost(r.Value(r.Current())).Unreachable {
		logger.Warning("goal cannot be reached", "pet", q.Creature, "levels", q.Levels)
	}
	return q, r, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	q, r, err := solveQuery(cmd)
	if err != nil {
		return err
	}

	if nextOnly {
		return report.NextAction(os.Stdout, r)
	}

	if err := report.Summary(os.Stdout, q, r); err != nil {
		return err
	}
	if quiet {
		return nil
	}
	if err := report.Breakdown(os.Stdout, r); err != nil {
		return err
	}
	if err := report.Actions(os.Stdout, r, r.Current()); err != nil {
		return err
	}
	if best, ok := r.Best(); ok && outcomes {
		return report.Outcomes(os.Stdout, r, r.Current(), best.Action)
	}
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	q, r, err := solveQuery(cmd)
	if err != nil {
		return err
	}
	info, err := q.Creature.Info()
	if err != nil {
		return err
	}
	return explore.Run(r, info)
}

func newPricesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Manage saved price profiles",
	}

	saveCmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save the prices from the config file and flags as a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			space, err := loadSpace()
			if err != nil {
				return err
			}
			q, err := qf.query(cmd.Flags(), configFile, dbPath, space.Tables())
			if err != nil {
				return err
			}
			return withStore(func(s *store.Store) error {
				p, err := s.Save(args[0], q.Prices)
				if err != nil {
					return err
				}
				color.Green("✅ Saved price profile %q", p.Name)
				return report.Prices(os.Stdout, p.Prices)
			})
		},
	}
	qf.register(saveCmd.Flags())

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved price profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(s *store.Store) error {
				profiles, err := s.List()
				if err != nil {
					return err
				}
				return report.Profiles(os.Stdout, profiles)
			})
		},
	}

	showCmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show a saved price profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(s *store.Store) error {
				p, err := s.Get(args[0])
				if err != nil {
					return err
				}
				fmt.Printf("📄 %s (updated %s)\n", p.Name, p.UpdatedAt.Format("2006-01-02 15:04"))
				return report.Prices(os.Stdout, p.Prices)
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved price profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(s *store.Store) error {
				if err := s.Delete(args[0]); err != nil {
					return err
				}
				color.Green("🗑️  Deleted price profile %q", args[0])
				return nil
			})
		},
	}

	cmd.AddCommand(saveCmd, listCmd, showCmd, deleteCmd)
	return cmd
}

func withStore(fn func(*store.Store) error) error {
	s, err := store.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}
