package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pokerbench",
	Short: "Rank poker hands and exercise the pokercore tables",
	Long:  `pokerbench parses, ranks, and describes poker hands across every variant pokercore implements.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging (tables are built before this flag is read; gen-tables reports their build times)")
}

// initLogger mirrors philipjkim-pls7-cli's InitLogger: plain text in
// normal use, timestamped debug output under --verbose.
func initLogger(debug bool) {
	logrus.SetOutput(os.Stdout)
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return
	}
	logrus.SetLevel(logrus.WarnLevel)
	logrus.SetFormatter(&logrus.TextFormatter{})
}
