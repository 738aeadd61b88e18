package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/pkg/errors"

	"github.com/agiangrant/ctdlayout/render"
)

// Render implements the 'ctdlayout render' command
func Render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var lf layoutFlags
	lf.register(fs)
	output := fs.String("o", "", "Output PNG (single file only; default: <tree>.png)")
	scale := fs.Float64("scale", 1, "Pixel scale factor")
	labels := fs.Bool("labels", true, "Label frames with their node kind")
	showClipped := fs.Bool("show-clipped", false, "Fade clipped regions instead of hiding them")
	fs.Parse(args)

	files, err := requireFiles(fs)
	if err != nil {
		return err
	}
	if *output != "" && len(files) > 1 {
		return errors.New("render: -o needs exactly one tree file")
	}

	m, err := lf.metrics()
	if err != nil {
		return err
	}

	results, err := layoutAll(context.Background(), &lf, m, files)
	if err != nil {
		return err
	}

	opts := render.DefaultOptions()
	opts.Scale = *scale
	opts.Labels = *labels
	opts.ShowClipped = *showClipped

	for _, r := range results {
		dst := *output
		if dst == "" {
			dst = outputPath(r.path, ".png")
		}
		opts.Backgrounds = render.Backgrounds(r.doc.Root)
		if err := render.File(dst, r.result, r.container, opts); err != nil {
			return err
		}
		fmt.Printf("  ✓ %s → %s (%d nodes)\n", r.path, dst, r.result.Len())
	}
	return nil
}
