package main

import (
	"fmt"

	"github.com/spf13/cobra"

	coloc "github.com/k3ap/cooperative-localization"
	"github.com/k3ap/cooperative-localization/point"
	"github.com/k3ap/cooperative-localization/render"
	"github.com/k3ap/cooperative-localization/score"
)

type solveFlags struct {
	file       string
	algorithm  string
	sigma      float64
	visibility float64
	iterations int
	seed       int64
	image      string
}

func (f *solveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "sample file to localize (required)")
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "leastsquarescoop", "algorithm name")
	cmd.Flags().Float64VarP(&f.sigma, "sigma", "s", 1.0, "stddev of measurement noise")
	cmd.Flags().Float64VarP(&f.visibility, "visibility", "v", 0, "visibility limit, 0 for unlimited")
	cmd.Flags().IntVarP(&f.iterations, "iterations", "j", 0, "iteration count, 0 for the algorithm default")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed, omit for a fresh one")
	_ = cmd.MarkFlagRequired("file")
}

func (f *solveFlags) options(cmd *cobra.Command, log *coloc.Logger) []coloc.Option {
	opts := []coloc.Option{
		coloc.WithSigma(f.sigma),
		coloc.WithVisibility(f.visibility),
		coloc.WithIterations(f.iterations),
		coloc.WithLogger(log),
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, coloc.WithSeed(f.seed))
	}
	return opts
}

func solveCmd() *cobra.Command {
	var flags solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Localize a sample and print the error summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}

			truths, err := point.ReadFile(flags.file)
			if err != nil {
				return err
			}

			res, err := coloc.Solve(truths, flags.algorithm, flags.options(cmd, log)...)
			if err != nil {
				return err
			}

			sum, err := score.Summarize(truths, res.Estimate)
			if err != nil {
				return err
			}

			perAgent, err := score.PerAgent(truths, res.Estimate)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, row := range res.Estimate {
				if e, ok := perAgent[i]; ok {
					fmt.Fprintf(out, "%s -> %v (error %.4f)\n", truths[i], row, e)
				} else {
					fmt.Fprintf(out, "%s -> %v\n", truths[i], row)
				}
			}
			fmt.Fprintf(out, "position rmse: %g (max %g)\n", sum.PositionRMSE, sum.MaxPositionError)
			fmt.Fprintf(out, "distance rmse: %g (max %g)\n", sum.DistanceRMSE, sum.MaxDistanceError)
			for _, u := range res.UnderDetermined {
				fmt.Fprintf(out, "under-determined: %s\n", u)
			}

			if flags.image != "" {
				if err := render.Image(truths, res.Estimate, flags.image); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s\n", flags.image)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.image, "image", "i", "", "write a plot of the result to this file")
	return cmd
}
