package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/beacon/vrf"
)

func runVRFBench(cmd *cobra.Command, args []string) error {
	kp, err := vrf.GoldbergKeygen(rand.Reader)
	if err != nil {
		return err
	}
	m := []byte("beacon-bench goldberg vrf message")

	if err := timeIt("goldberg-vrf eval", iterations, func() error {
		_, err := vrf.GoldbergEval(m, kp.SK, kp.PK, rand.Reader)
		return err
	}); err != nil {
		return err
	}

	out, err := vrf.GoldbergEval(m, kp.SK, kp.PK, rand.Reader)
	if err != nil {
		return err
	}
	return timeIt("goldberg-vrf verify", iterations, func() error {
		if !vrf.GoldbergVerify(m, kp.PK, out) {
			return fmt.Errorf("verify returned false")
		}
		return nil
	})
}

func runBLSVRFBench(cmd *cobra.Command, args []string) error {
	kp, err := vrf.BLSKeygen(rand.Reader)
	if err != nil {
		return err
	}
	m := []byte("beacon-bench bls-vrf message")

	if err := timeIt("bls-vrf eval", iterations, func() error {
		_, err := vrf.BLSEval(m, kp.SK)
		return err
	}); err != nil {
		return err
	}

	out, err := vrf.BLSEval(m, kp.SK)
	if err != nil {
		return err
	}
	return timeIt("bls-vrf verify", iterations, func() error {
		if !vrf.BLSVerify(m, kp.PK, out) {
			return fmt.Errorf("verify returned false")
		}
		return nil
	})
}
