/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Maxim Geraskin
 */

// Package cobrau prepares cobra root commands of command line tools.
package cobrau

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/idfspace/pkg/goutils/logger"
)

/*

Persistent flags:

  -v, --verbose   Print verbose output (detailed level)
      --trace     Print trace output   (most detailed level)

*/

// Returns root command with version subcommand and verbosity flags. Args are
// os.Args like, the program name first
func PrepareRootCmd(use string, short string, args []string, version string, cmds ...*cobra.Command) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   use,
		Short: short,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if level, ok := FlagsLogLevel(cmd); ok {
				logger.SetLogLevel(level)
				logger.Verbose("using log level", level)
			}
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("trace", false, "Enable extremely verbose output")

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the current version",
		Aliases: []string{"ver"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Root().Name(), version)
		},
	}

	if len(args) > 0 {
		rootCmd.SetArgs(args[1:])
	}
	rootCmd.AddCommand(cmds...)
	rootCmd.AddCommand(versionCmd)
	rootCmd.InitDefaultCompletionCmd()
	return rootCmd
}

// Returns log level requested by --trace or --verbose flag, if any
func FlagsLogLevel(cmd *cobra.Command) (logger.TLogLevel, bool) {
	if ok, _ := cmd.Flags().GetBool("trace"); ok {
		return logger.LogLevelTrace, true
	}
	if ok, _ := cmd.Flags().GetBool("verbose"); ok {
		return logger.LogLevelVerbose, true
	}
	return logger.LogLevelNone, false
}
