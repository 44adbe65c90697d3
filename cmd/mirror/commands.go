package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/satoshimirror/satoshimirror/internal/config"
	"github.com/satoshimirror/satoshimirror/internal/engine"
	"github.com/spf13/cobra"
)

// newEngine loads the effective configuration and builds the engine.
// Called per command so usage errors never touch the data directory.
func newEngine() (*engine.Engine, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return engine.New(cfg), cfg, nil
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "mirror",
		Short: "Satoshi Mirror simulation engine",
		Long: "Satoshi Mirror simulation engine: toy proof-of-work mining, an agent\n" +
			"ledger, a batch AI cycle, and a synthetic energy sensor, all writing\n" +
			"JSON artifacts for the export collaborators.",
		SilenceErrors: true,
	}

	root.AddCommand(
		newAddAgentCommand(),
		newMineCommand(),
		newAICycleCommand(),
		newEnergyCommand(),
		newSynthesisCommand(),
		newSupplyCommand(),
		newShowChainCommand(),
	)
	return root
}

func newAddAgentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add_agent <id> <name> [description]",
		Short: "Create or update an agent in the ledger",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := newEngine()
			if err != nil {
				return err
			}
			description := ""
			if len(args) > 2 {
				description = args[2]
			}
			return eng.AddAgent(args[0], args[1], description)
		},
	}
}

func newMineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mine [count]",
		Short: "Mine mirror blocks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("block count must be a number, got %q", args[0])
				}
				count = n
			}
			eng, _, err := newEngine()
			if err != nil {
				return err
			}
			return eng.Mine(cmd.Context(), count)
		},
	}
}

func newAICycleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ai_cycle",
		Short: "Analyze every pending idea in the idea log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := newEngine()
			if err != nil {
				return err
			}
			_, err = eng.AICycle()
			return err
		},
	}
}

func newEnergyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "energy [interval_seconds]",
		Short: "Monitor synthetic quantum energy until interrupted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cfg, err := newEngine()
			if err != nil {
				return err
			}
			interval := cfg.Sensor.Interval.Duration
			if len(args) == 1 {
				seconds, err := strconv.Atoi(args[0])
				if err != nil || seconds < 1 {
					return fmt.Errorf("interval must be a positive number of seconds, got %q", args[0])
				}
				interval = time.Duration(seconds) * time.Second
			}
			return eng.Energy(cmd.Context(), interval)
		},
	}
}

func newSynthesisCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quantum_synthesis",
		Short: "Run miner, AI cycle, and sensor concurrently and join them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := newEngine()
			if err != nil {
				return err
			}
			return eng.Synthesis(cmd.Context())
		},
	}
}

func newSupplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "supply",
		Short: "Report total minted supply from the chain file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := newEngine()
			if err != nil {
				return err
			}
			report, err := eng.Chain().Supply()
			if err != nil {
				return err
			}
			log.Info().
				Int("blocks", report.Blocks).
				Int64("top_height", report.TopHeight).
				Float64("total_minted", report.TotalMinted).
				Msg("💰 Mirror supply")
			return nil
		},
	}
}

func newShowChainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show_chain [count]",
		Short: "Print the most recent chain entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := 10
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("count must be a positive number, got %q", args[0])
				}
				limit = n
			}
			eng, _, err := newEngine()
			if err != nil {
				return err
			}
			blocks, err := eng.Chain().ReadAll()
			if err != nil {
				return err
			}
			if len(blocks) > limit {
				blocks = blocks[len(blocks)-limit:]
			}
			for _, b := range blocks {
				fmt.Fprintf(cmd.OutOrStdout(), "#%d  %s  nonce=%d  reward=%g  %s\n",
					b.Height, b.Hash, b.Nonce, b.Reward, time.Unix(b.Timestamp, 0).Format(time.RFC3339))
			}
			if len(blocks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "chain is empty")
			}
			return nil
		},
	}
}
