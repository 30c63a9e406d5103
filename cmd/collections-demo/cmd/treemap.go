package cmd

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/gostonefire/collections"
	"github.com/gostonefire/collections/blobfunc"
)

// treemapCmd fills a TreeMap with random keys and verifies that a full
// iteration comes back in strictly ascending key order
var treemapCmd = &cobra.Command{
	Use:   "treemap",
	Short: "Fill a TreeMap with random keys and verify sorted iteration",
	Run: func(cmd *cobra.Command, args []string) {
		treeMap, err := collections.NewTreeMap(collections.TreeMapConf{
			KeyLength:   8,
			ValueLength: 8,
			CompareFunc: blobfunc.CompareInt64,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("could not create tree map")
		}
		defer treeMap.Free()

		rnd := rand.New(rand.NewSource(flagSeed))

		start := time.Now()
		for i := 0; i < flagCount; i++ {
			key := blobfunc.Int64Bytes(rnd.Int63())
			if err := treeMap.Put(key, blobfunc.Int64Bytes(int64(i))); err != nil {
				log.Fatal().Err(err).Msg("put failed")
			}
		}
		insertElapsed := time.Since(start)

		start = time.Now()
		prev := int64(-1 << 62)
		visited := 0
		iter := treeMap.Iterator()
		for iter.HasNext() {
			key, _, err := iter.Next()
			if err != nil {
				log.Fatal().Err(err).Msg("iteration failed")
			}
			k := blobfunc.BytesInt64(key)
			if k <= prev {
				log.Fatal().Int64("key", k).Int64("previous", prev).Msg("iteration out of order")
			}
			prev = k
			visited++
		}
		iterElapsed := time.Since(start)

		minKey, _, err := treeMap.GetMin()
		if err != nil {
			log.Fatal().Err(err).Msg("could not read min")
		}
		maxKey, _, err := treeMap.GetMax()
		if err != nil {
			log.Fatal().Err(err).Msg("could not read max")
		}

		log.Info().
			Int("entries", treeMap.Size()).
			Int("visited", visited).
			Int64("min", blobfunc.BytesInt64(minKey)).
			Int64("max", blobfunc.BytesInt64(maxKey)).
			Dur("insertElapsed", insertElapsed).
			Dur("iterElapsed", iterElapsed).
			Msg("tree map iteration verified sorted")
	},
}

func init() {
	rootCmd.AddCommand(treemapCmd)
}
