// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aclements/go-conjugate/conjugate"
)

const (
	alphaFlag  = "alpha"
	betaFlag   = "beta"
	trialsFlag = "n"
	succFlag   = "k"
)

func newBinomialCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "binomial",
		Short: "infer the success probability p of n Bernoulli trials with k successes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := getLogger(v)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			bp := conjugate.NewBinomialBeta(conjugate.WithLogger(logger))
			if err := bp.SetPrior(v.GetFloat64(alphaFlag), v.GetFloat64(betaFlag)); err != nil {
				return err
			}
			if err := bp.AddTrials(v.GetInt(trialsFlag), v.GetInt(succFlag)); err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), v, bp, logger)
		},
	}

	flags := cmd.Flags()
	flags.Float64(alphaFlag, 1, "Beta prior alpha")
	flags.Float64(betaFlag, 1, "Beta prior beta")
	flags.Int(trialsFlag, 0, "number of trials")
	flags.Int(succFlag, 0, "number of successes")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	return cmd
}
