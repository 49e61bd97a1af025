package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/beacon/instarand"
	"github.com/luxfi/beacon/vrf"
)

func runInstarandBench(cmd *cobra.Command, args []string) error {
	client, err := vrf.GoldbergKeygen(rand.Reader)
	if err != nil {
		return err
	}
	server, err := vrf.GoldbergKeygen(rand.Reader)
	if err != nil {
		return err
	}
	u := []byte("beacon-bench instarand round input")

	return timeIt("instarand round", iterations, func() error {
		serverInput, err := instarand.GenerateServerInput(u, client.PK)
		if err != nil {
			return err
		}
		serverOut, err := vrf.GoldbergEval(serverInput, server.SK, server.PK, rand.Reader)
		if err != nil {
			return err
		}
		if !vrf.GoldbergVerify(serverInput, server.PK, serverOut) {
			return fmt.Errorf("server vrf verify returned false")
		}

		clientOut, err := vrf.GoldbergEval(u, client.SK, client.PK, rand.Reader)
		if err != nil {
			return err
		}
		beacon := instarand.HashOutput(clientOut.Beta, serverOut.Beta)
		if len(beacon) != 32 {
			return fmt.Errorf("unexpected beacon length %d", len(beacon))
		}
		return nil
	})
}
