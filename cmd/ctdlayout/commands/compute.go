package commands

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/ctdlayout/config"
	"github.com/agiangrant/ctdlayout/treefile"
)

// Compute implements the 'ctdlayout compute' command
func Compute(args []string) error {
	fs := flag.NewFlagSet("compute", flag.ExitOnError)
	var lf layoutFlags
	lf.register(fs)
	output := fs.String("o", "", "Write JSON to this file instead of stdout")
	fs.Parse(args)

	files, err := requireFiles(fs)
	if err != nil {
		return err
	}

	m, err := lf.metrics()
	if err != nil {
		return err
	}

	results, err := layoutAll(context.Background(), &lf, m, files)
	if err != nil {
		return err
	}

	if *output == "" {
		return writeResults(os.Stdout, results)
	}

	f, err := os.Create(*output)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", *output)
	}
	if err := writeResults(f, results); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "failed to close %s", *output)
}

// layoutAll lays out every file concurrently, one engine per file. Results
// keep the order of files.
func layoutAll(ctx context.Context, lf *layoutFlags, m config.Metrics, files []string) ([]*laidOut, error) {
	results := make([]*laidOut, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := lf.layoutFile(path, lf.engineConfig(m))
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// writeResults prints a single file's frames as a JSON array, or an object
// keyed by file path when there are several.
func writeResults(w io.Writer, results []*laidOut) error {
	if len(results) == 1 {
		return treefile.EncodeResult(w, results[0].result)
	}

	byFile := make(map[string][]treefile.FrameRecord, len(results))
	for _, r := range results {
		byFile[r.path] = treefile.Records(r.result)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(byFile), "failed to encode layout results")
}
