package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/julia-bitmap/pkg/julia"
	"github.com/willbeason/julia-bitmap/pkg/sink"
	"github.com/willbeason/julia-bitmap/pkg/transforms"
	"io"
	"os"
	"path/filepath"
	"time"
)

const (
	dimFlag        = "dim"
	scaleFlag      = "scale"
	constantFlag   = "c"
	iterationsFlag = "iterations"
	thresholdFlag  = "threshold"
	workersFlag    = "workers"
	formatFlag     = "format"
	outFlag        = "out"
	timeoutFlag    = "timeout"
	statsFlag      = "stats"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "julia",
		Short: "Render the membership bitmap of a quadratic Julia set",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	d := julia.Default()
	c := complexValue(d.C)

	flags := cmd.Flags()
	flags.Int(dimFlag, d.Dim, "side length of the square output grid in pixels")
	flags.Float32(scaleFlag, d.Scale, "half-width of the sampled region of the complex plane")
	flags.Var(&c, constantFlag, "additive constant of z*z + c, as re,im")
	flags.Int(iterationsFlag, d.MaxIterations, "iterations before a point is considered a member")
	flags.Float32(thresholdFlag, d.Threshold, "squared magnitude beyond which a point has escaped")
	flags.Int(workersFlag, 0, "goroutines rendering rows; 0 for one per CPU")
	flags.String(formatFlag, sink.PNG.String(), "output format: text, png, bmp or tiff")
	flags.StringP(outFlag, "o", "", "output path, - for stdout; defaults to out/<timestamp>.<ext>")
	flags.Duration(timeoutFlag, 0, "give up if rendering takes longer than this; 0 for no limit")
	flags.Bool(statsFlag, false, "print how many pixels are members")

	return cmd
}

func paramsFromFlags(cmd *cobra.Command) (julia.Params, error) {
	flags := cmd.Flags()

	dim, err := flags.GetInt(dimFlag)
	if err != nil {
		return julia.Params{}, err
	}
	scale, err := flags.GetFloat32(scaleFlag)
	if err != nil {
		return julia.Params{}, err
	}
	iterations, err := flags.GetInt(iterationsFlag)
	if err != nil {
		return julia.Params{}, err
	}
	threshold, err := flags.GetFloat32(thresholdFlag)
	if err != nil {
		return julia.Params{}, err
	}

	c, ok := flags.Lookup(constantFlag).Value.(*complexValue)
	if !ok {
		return julia.Params{}, fmt.Errorf("flag --%s has unexpected type", constantFlag)
	}

	p := julia.Params{
		Dim:           dim,
		Scale:         scale,
		C:             transforms.Complex(*c),
		MaxIterations: iterations,
		Threshold:     threshold,
	}

	return p, p.Validate()
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	p, err := paramsFromFlags(cmd)
	if err != nil {
		return err
	}

	formatName, err := cmd.Flags().GetString(formatFlag)
	if err != nil {
		return err
	}
	format, err := sink.ParseFormat(formatName)
	if err != nil {
		return err
	}

	workers, err := cmd.Flags().GetInt(workersFlag)
	if err != nil {
		return err
	}
	timeout, err := cmd.Flags().GetDuration(timeoutFlag)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	bitmap, err := render(ctx, p, julia.WithWorkers(workers))
	if err != nil {
		return err
	}
	cmd.PrintErrf("rendered %dx%d in %v\n", p.Dim, p.Dim, time.Since(start))

	stats, err := cmd.Flags().GetBool(statsFlag)
	if err != nil {
		return err
	}
	if stats {
		members := bitmap.Members()
		cmd.PrintErrf("%d of %d pixels are members (%.2f%%)\n",
			members, len(bitmap), 100*float64(members)/float64(len(bitmap)))
	}

	out, err := cmd.Flags().GetString(outFlag)
	if err != nil {
		return err
	}

	return write(cmd.OutOrStdout(), out, format, bitmap, p.Dim)
}

// render runs julia.Render but returns early if ctx ends first. The
// abandoned render finishes in the background and is discarded.
func render(ctx context.Context, p julia.Params, opts ...julia.Option) (julia.Bitmap, error) {
	type result struct {
		bitmap julia.Bitmap
		err    error
	}

	done := make(chan result, 1)
	go func() {
		bitmap, err := julia.Render(p, opts...)
		done <- result{bitmap: bitmap, err: err}
	}()

	select {
	case r := <-done:
		return r.bitmap, r.err
	case <-ctx.Done():
		return nil, fmt.Errorf("rendering %dx%d: %w", p.Dim, p.Dim, ctx.Err())
	}
}

func write(stdout io.Writer, path string, format sink.Format, bitmap julia.Bitmap, dim int) error {
	if path == "-" {
		return sink.Encode(stdout, format, bitmap, dim)
	}

	if path == "" {
		path = filepath.Join("out", fmt.Sprintf("%s.%s", time.Now().
			Format("20060102150405"), format.Ext()))
	}

	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = sink.Encode(f, format, bitmap, dim)
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
