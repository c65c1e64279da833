package main

import (
	"github.com/rs/zerolog/log"

	"github.com/edgewave/hlsgate/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal().Err(err).Msg("hlsgate exited with error")
	}
}
