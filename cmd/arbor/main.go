package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jward/arbor"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var (
	flagInput   string
	flagFormat  string
	flagVerbose int

	flagConfig string
	flagMode   string
	flagMain   string
)

var log = commonlog.GetLogger("arbor")

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "arbor",
	Short:         "Cross-reference and organize a documented codebase",
	Long:          "Arbor loads a parsed element dump and answers reference-resolution, grouping, and inheritance-hierarchy queries over it.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		commonlog.Configure(flagVerbose, nil)
		return validateFormat(flagFormat)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "", "path to the JSON element dump (required)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "json", "output format: json|text")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(treesCmd)
	rootCmd.AddCommand(resolveCmd)
}

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List namespace or package groups",
	Long:  "Partitions the documented element set into namespace or package groups, completes the hierarchy with synthetic ancestors, and prints the sorted result.",
	Args:  cobra.NoArgs,
	RunE:  runGroups,
}

var treesCmd = &cobra.Command{
	Use:   "trees",
	Short: "Print the inheritance forests",
	Long:  "Builds the class, interface, trait, and exception inheritance forests and prints them.",
	Args:  cobra.NoArgs,
	RunE:  runTrees,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [reference]...",
	Short: "Resolve textual references against a context element",
	Long:  "Resolves each reference the way @see/@uses annotation values are resolved: aliases, self, $this, parent::, and member access against the context element.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResolve,
}

var flagContext string

func init() {
	groupsCmd.Flags().StringVar(&flagConfig, "config", "", "path to an arbor.yaml config file")
	groupsCmd.Flags().StringVar(&flagMode, "mode", "", "grouping mode: auto|namespaces|packages|none")
	groupsCmd.Flags().StringVar(&flagMain, "main", "", "main namespace/package prefix, sorted first")

	resolveCmd.Flags().StringVar(&flagContext, "context", "", "fully-qualified name of the context element (required)")
	_ = resolveCmd.MarkFlagRequired("context")
}

func runGroups(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return outputError("groups", err)
	}
	if flagMode != "" {
		cfg.Mode = flagMode
	}
	if flagMain != "" {
		cfg.Main = flagMain
	}
	if cfg.Mode == "" {
		cfg.Mode = string(arbor.ModeAuto)
	}
	if !arbor.ValidGroupMode(cfg.Mode) {
		return outputError("groups", fmt.Errorf("invalid grouping mode %q: must be auto|namespaces|packages|none", cfg.Mode))
	}

	engine, err := loadEngine(arbor.WithMode(arbor.GroupMode(cfg.Mode)), arbor.WithMain(cfg.Main))
	if err != nil {
		return outputError("groups", err)
	}

	grouping := engine.Groups()
	log.Debugf("selected grouping mode %s with %d groups", grouping.Mode, len(grouping.Groups))

	return outputResult(CLIResult{
		Command: "groups",
		Results: toCLIGrouping(grouping),
	})
}

func runTrees(cmd *cobra.Command, args []string) error {
	engine, err := loadEngine()
	if err != nil {
		return outputError("trees", err)
	}
	return outputResult(CLIResult{
		Command: "trees",
		Results: toCLIForests(engine.Trees()),
	})
}

func runResolve(cmd *cobra.Command, args []string) error {
	engine, err := loadEngine()
	if err != nil {
		return outputError("resolve", err)
	}

	context := engine.Snapshot().ElementByName(flagContext)
	if context == nil {
		return outputError("resolve", fmt.Errorf("context element not found: %s", flagContext))
	}

	results := make([]CLIRef, 0, len(args))
	unresolved := 0
	for _, reference := range args {
		ref := engine.Resolve(reference, arbor.Context{Element: context})
		results = append(results, toCLIRef(reference, ref))
		if ref == nil {
			unresolved++
			log.Infof("unresolved reference %q in %s", reference, context.Name)
		}
	}
	if unresolved > 0 {
		log.Warningf("%d of %d references could not be resolved", unresolved, len(args))
	}

	return outputResult(CLIResult{
		Command: "resolve",
		Results: results,
	})
}

// loadEngine builds an Engine from the --input dump.
func loadEngine(opts ...arbor.Option) (*arbor.Engine, error) {
	if flagInput == "" {
		return nil, fmt.Errorf("missing required --input flag")
	}
	snap, err := loadSnapshot(flagInput)
	if err != nil {
		return nil, err
	}
	return arbor.New(snap, opts...), nil
}

// sortedKeys returns the map keys in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	switch strings.ToLower(format) {
	case "json", "text":
		return nil
	}
	return fmt.Errorf("invalid format %q: must be json or text", format)
}
