// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/aclements/go-conjugate/conjugate"
	"github.com/aclements/go-conjugate/internal/logging"
)

const (
	envVarPrefix = "CONJUGATE"

	confidenceFlag = "confidence"
	logLevelFlag   = "logLevel"
	plotFlag       = "plot"
	plotWidthFlag  = "plotWidth"
	plotHeightFlag = "plotHeight"
)

// newRootCmd builds the command tree. Each tree has its own viper
// instance so that flag values never leak between invocations.
func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "conjugate",
		Short:         "Bayesian inference with conjugate priors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.Float64(confidenceFlag, 0.95, "probability mass of credible regions")
	flags.String(logLevelFlag, "info", "log level (debug, info, warn, error)")
	flags.Bool(plotFlag, false, "plot prior and posterior densities")
	flags.Int(plotWidthFlag, 60, "plot width in columns")
	flags.Int(plotHeightFlag, 12, "plot height in rows")

	v.SetEnvPrefix(envVarPrefix) // look for env vars with "CONJUGATE_" prefix
	v.AutomaticEnv()             // read in environment variables that match
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(newBinomialCmd(v), newMultinomialCmd(v))
	return root
}

func getLogger(v *viper.Viper) (*zap.Logger, error) {
	level, err := logging.ParseLevel(v.GetString(logLevelFlag))
	if err != nil {
		return nil, errors.Wrap(err, "bad log level")
	}
	return logging.NewDevLogger(level)
}

// report prints a summary of every parameter of m to w and, if
// requested, density plots.
func report(w io.Writer, v *viper.Viper, m conjugate.Model, logger *zap.Logger) error {
	confidence := v.GetFloat64(confidenceFlag)
	logger.Info("model", zap.String("distribution", m.Distribution()),
		zap.String("prior", m.Prior()),
		zap.Int("observations", m.Observations()),
		zap.Float64(confidenceFlag, confidence),
	)

	summaries, err := conjugate.Summarize(m, confidence)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s likelihood, %s prior, %d observations\n\n", m.Distribution(), m.Prior(), m.Observations())
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	pct := fmt.Sprintf("%.4g%%", confidence*100)
	fmt.Fprintf(tw, "parameter\tprior mean\tposterior mean\t%s CCR\t%s HDR\n", pct, pct)
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%v\t%v\n", s.Parameter, s.PriorMean, s.PosteriorMean, s.Central, s.HighDensity)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !v.GetBool(plotFlag) {
		return nil
	}
	width, height := v.GetInt(plotWidthFlag), v.GetInt(plotHeightFlag)
	for _, name := range m.Parameters() {
		prior, err := conjugate.PriorPlot(m, name)
		if err != nil {
			return err
		}
		posterior, err := conjugate.PosteriorPlot(m, name, confidence)
		if err != nil {
			return err
		}
		for _, p := range []conjugate.Plot{prior, posterior} {
			fmt.Fprintln(w)
			if err := FprintPDF(w, p, width, height); err != nil {
				return err
			}
		}
	}
	return nil
}
