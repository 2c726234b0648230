package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/casforge/algebra/internal/config"
	"github.com/casforge/algebra/internal/engine"
)

// parseCmd simplifies a single expression, or a file of them, and prints
// the LaTeX result of each (or the literal word "undefined") one per line.
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse and simplify an algebraic expression, printing its LaTeX form.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configFromFlags(cmd)
		file := GetString(cmd, "file")

		if file != "" {
			runBatch(cfg, file)
			return
		}

		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		runOne(cfg, args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("file", "f", "", "read expressions from a file, one per line, instead of an argument")
}

// configFromFlags populates a config.Config from the root command's
// persistent flags (§8: verbosity and parse depth are the only knobs the
// host surface exposes).
func configFromFlags(cmd *cobra.Command) config.Config {
	cfg := config.Default(os.Stdout)
	cfg.MaxParseDepth = GetInt(cmd, "max-depth")
	cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	return cfg
}

func runOne(cfg config.Config, text string) {
	result, err := engine.ParseAndSimplifyWithDepth(text, cfg.MaxParseDepth)
	if err != nil {
		fmt.Fprintln(cfg.Out, err)
		os.Exit(1)
	}
	fmt.Fprintln(cfg.Out, result)
}

func runBatch(cfg config.Config, path string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(cfg.Out, err)
		os.Exit(1)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		result, err := engine.ParseAndSimplifyWithDepth(line, cfg.MaxParseDepth)
		if err != nil {
			fmt.Fprintln(cfg.Out, err)
			continue
		}
		fmt.Fprintln(cfg.Out, result)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(cfg.Out, err)
		os.Exit(1)
	}
}
