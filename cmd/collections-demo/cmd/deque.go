package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/gostonefire/collections"
	"github.com/gostonefire/collections/blobfunc"
)

// dequeCmd churns an ArrayDeque at both ends, forcing the ring to wrap and
// grow, then drains it checking that FIFO order held up
var dequeCmd = &cobra.Command{
	Use:   "deque",
	Short: "Churn an ArrayDeque at both ends and verify ordering",
	Run: func(cmd *cobra.Command, args []string) {
		deque, err := collections.NewArrayDeque(8, 0, nil)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create deque")
		}
		defer deque.Free()

		start := time.Now()

		// Push two at the back and pop one at the front per round so the
		// ring keeps wrapping while it grows
		next := int64(0)
		expected := int64(0)
		for round := 0; round < flagCount; round++ {
			for i := 0; i < 2; i++ {
				if err := deque.PushBack(blobfunc.Int64Bytes(next)); err != nil {
					log.Fatal().Err(err).Msg("push failed")
				}
				next++
			}
			element, err := deque.PopFront()
			if err != nil {
				log.Fatal().Err(err).Msg("pop failed")
			}
			if got := blobfunc.BytesInt64(element); got != expected {
				log.Fatal().Int64("got", got).Int64("expected", expected).Msg("order broken")
			}
			expected++
		}

		backlog := deque.Size()
		for !deque.IsEmpty() {
			element, err := deque.PopFront()
			if err != nil {
				log.Fatal().Err(err).Msg("drain failed")
			}
			if got := blobfunc.BytesInt64(element); got != expected {
				log.Fatal().Int64("got", got).Int64("expected", expected).Msg("order broken during drain")
			}
			expected++
		}
		elapsed := time.Since(start)

		log.Info().
			Int("rounds", flagCount).
			Int("backlog", backlog).
			Dur("elapsed", elapsed).
			Msg("deque churn kept FIFO order")
	},
}

func init() {
	rootCmd.AddCommand(dequeCmd)
}
