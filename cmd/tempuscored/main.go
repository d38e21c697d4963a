// Command tempuscored is a small standalone driver for the engine: a
// cobra CLI that opens (and optionally persists) an Engine and runs the
// text command language over stdin. It exists for manual exercise and
// smoke-testing the library outside of a host process embedding it
// through the C ABI; the FFI surface itself lives outside this module.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tempuscore/engine"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var aofPath string
	var maxItems int

	cmd := &cobra.Command{
		Use:   "tempuscored",
		Short: "Run the tempuscore engine as an interactive command loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(aofPath, maxItems)
		},
	}
	cmd.Flags().StringVar(&aofPath, "aof", "", "append-only log path (empty disables persistence)")
	cmd.Flags().IntVar(&maxItems, "max-items", tempuscore.DefaultMaxItems, "per-namespace capacity bound")
	cmd.AddCommand(newReplayCmd())
	return cmd
}

// newReplayCmd loads an AOF file into a scratch engine, with no live
// writer attached, and prints every key the string namespace ends up
// holding. Useful for inspecting a journal without standing up a full
// host process.
func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <aof-file>",
		Short: "Replay an append-only log file and print the resulting keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(args[0])
		},
	}
}

func runReplay(path string) error {
	e := tempuscore.New()
	defer e.Close()

	if err := e.LoadAOF(path); err != nil {
		return err
	}
	for _, key := range e.Keys() {
		fmt.Println(key)
	}
	return nil
}

func runRepl(aofPath string, maxItems int) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	opts := []tempuscore.Option{
		tempuscore.WithMaxItems(maxItems),
		tempuscore.WithLogger(logger),
	}
	if aofPath != "" {
		opts = append(opts, tempuscore.WithAOFPath(aofPath))
	}
	e := tempuscore.New(opts...)
	defer e.Close()

	fmt.Println("tempuscored ready. GET/SET/DEL/JSON.GET/JSON.SET, blank line to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			return nil
		}
		out, ok := e.Eval(line)
		if !ok {
			fmt.Println("(empty)")
			continue
		}
		fmt.Printf("%s\n", out)
	}
	return scanner.Err()
}
