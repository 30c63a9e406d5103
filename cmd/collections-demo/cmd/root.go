package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagCount int
	flagSeed  int64
	log       zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "collections-demo",
	Short: "Exercise the byte blob containers and report their behaviour",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagCount, "count", "n", 10000,
		"number of elements to run through each container")
	rootCmd.PersistentFlags().Int64VarP(&flagSeed, "seed", "s", 1,
		"seed for the pseudo random element generator")

	log = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
}
