// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aclements/go-conjugate/conjugate"
)

const (
	alphabetFlag = "alphabet"
	countsFlag   = "counts"
	priorFlag    = "prior"
)

func newMultinomialCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multinomial",
		Short: "infer the category probabilities of a categorical process from per-category counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := getLogger(v)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			counts, err := parseCounts(v.GetStringSlice(countsFlag))
			if err != nil {
				return err
			}
			prior, err := parsePrior(v.GetStringSlice(priorFlag))
			if err != nil {
				return err
			}
			mp, err := conjugate.NewMultinomialDirichlet(v.GetStringSlice(alphabetFlag), conjugate.WithLogger(logger))
			if err != nil {
				return err
			}
			if err := mp.SetHyperparameters(prior); err != nil {
				return err
			}
			if err := mp.SetData(counts); err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), v, mp, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringSlice(alphabetFlag, []string{"a", "b"}, "category labels")
	flags.StringSlice(countsFlag, nil, "observed counts as label=count pairs")
	flags.StringSlice(priorFlag, nil, "Dirichlet prior weights as label=weight pairs (default 1)")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	return cmd
}

// splitPair splits "label=value".
func splitPair(s string) (label, value string, err error) {
	i := strings.LastIndexByte(s, '=')
	if i <= 0 {
		return "", "", errors.Errorf("expected label=value, got %q", s)
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), nil
}

// parseCounts parses label=count pairs into a data map. Repeated
// labels add.
func parseCounts(pairs []string) (map[string]int, error) {
	counts := make(map[string]int, len(pairs))
	for _, p := range pairs {
		label, value, err := splitPair(p)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, errors.Wrapf(err, "bad count for %q", label)
		}
		counts[label] += n
	}
	return counts, nil
}

// parsePrior parses label=weight pairs into a hyperparameter map keyed
// by "a_"+label.
func parsePrior(pairs []string) (map[string]float64, error) {
	prior := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		label, value, err := splitPair(p)
		if err != nil {
			return nil, err
		}
		w, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad prior weight for %q", label)
		}
		prior["a_"+label] = w
	}
	return prior, nil
}
