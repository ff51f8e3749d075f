package main

import (
	"fmt"

	"github.com/spf13/cobra"

	coloc "github.com/k3ap/cooperative-localization"
	"github.com/k3ap/cooperative-localization/point"
	"github.com/k3ap/cooperative-localization/render"
)

func animateCmd() *cobra.Command {
	var (
		flags   solveFlags
		outDir  string
		archive string
	)
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Render every refinement step of an iterative algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}

			truths, err := point.ReadFile(flags.file)
			if err != nil {
				return err
			}

			frames, err := coloc.Animate(truths, flags.algorithm, flags.options(cmd, log)...)
			if err != nil {
				return err
			}

			paths, err := render.Frames(truths, frames, outDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", len(paths), outDir)

			if archive != "" {
				if err := render.Archive(outDir, archive); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", archive)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "o", "frames", "directory to write frames into")
	cmd.Flags().StringVar(&archive, "archive", "", "also pack the frames into this .tar.gz")
	return cmd
}
