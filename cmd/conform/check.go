package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/conformlabs/conform"
	"github.com/conformlabs/conform/internal/registry"
)

var (
	checkType  string
	checkShape string
)

var checkCmd = &cobra.Command{
	Use:   "check [file.json]",
	Short: "Check a JSON document against an inspector",
	Long: `Decodes a JSON document (from the given file, or stdin) and applies either
a named built-in inspector (--type) or an object shape loaded from a YAML
file (--shape). Prints PASS or FAIL; the exit code is 0 on pass, 1 on fail.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pass, err := runCheck(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "check failed: %v\n", err)
			os.Exit(2)
		}
		if !pass {
			fmt.Println("FAIL")
			os.Exit(1)
		}
		fmt.Println("PASS")
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkType, "type", "", "Name of a built-in inspector (see 'conform inspectors')")
	checkCmd.Flags().StringVar(&checkShape, "shape", "", "Path to a YAML shape file")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(args []string) (bool, error) {
	isT, err := resolveInspector()
	if err != nil {
		return false, err
	}

	value, err := decodeInput(args)
	if err != nil {
		return false, err
	}

	slog.Debug("checking document", "type", checkType, "shape", checkShape)
	return isT(value), nil
}

func resolveInspector() (conform.Inspector, error) {
	switch {
	case checkType != "" && checkShape != "":
		return nil, fmt.Errorf("--type and --shape are mutually exclusive")
	case checkType != "":
		isT, ok := registry.Lookup(checkType)
		if !ok {
			return nil, fmt.Errorf("unknown inspector %q", checkType)
		}
		return isT, nil
	case checkShape != "":
		return loadShape(checkShape)
	default:
		return nil, fmt.Errorf("one of --type or --shape is required")
	}
}

func decodeInput(args []string) (any, error) {
	var raw []byte
	var err error
	if len(args) > 0 {
		raw, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read document: %w", err)
		}
	} else {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}
	return value, nil
}
