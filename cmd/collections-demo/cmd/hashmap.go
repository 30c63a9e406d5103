package cmd

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/gostonefire/collections"
	"github.com/gostonefire/collections/blobfunc"
)

// hashmapCmd fills a HashMap with random keys and reports how the bucket
// chains distribute, which is the quickest way to eyeball a hash function
var hashmapCmd = &cobra.Command{
	Use:   "hashmap",
	Short: "Fill a HashMap with random keys and report bucket statistics",
	Run: func(cmd *cobra.Command, args []string) {
		hashMap, err := collections.NewHashMap(collections.HashMapConf{
			KeyLength:   8,
			ValueLength: 8,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("could not create hash map")
		}
		defer hashMap.Free()

		rnd := rand.New(rand.NewSource(flagSeed))

		start := time.Now()
		for i := 0; i < flagCount; i++ {
			key := blobfunc.Int64Bytes(rnd.Int63())
			if err := hashMap.Put(key, blobfunc.Int64Bytes(int64(i))); err != nil {
				log.Fatal().Err(err).Msg("put failed")
			}
		}
		elapsed := time.Since(start)

		stat := hashMap.Stat(true)

		empty := 0
		for _, count := range stat.BucketDistribution {
			if count == 0 {
				empty++
			}
		}

		log.Info().
			Int("entries", stat.Entries).
			Int("buckets", stat.Buckets).
			Int("longestChain", stat.LongestChain).
			Int("emptyBuckets", empty).
			Dur("elapsed", elapsed).
			Msg("hash map filled")
	},
}

func init() {
	rootCmd.AddCommand(hashmapCmd)
}
