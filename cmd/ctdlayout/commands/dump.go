package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/agiangrant/ctdlayout/layout"
)

// Dump implements the 'ctdlayout dump' command
func Dump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	var lf layoutFlags
	lf.register(fs)
	tree := fs.Bool("tree", false, "Dump the laid-out node tree instead of the result items")
	depth := fs.Int("depth", 0, "Maximum nesting depth to print (0 means unlimited)")
	defaults := fs.Bool("defaults", false, "Print the property defaults used for absent keys and exit")
	fs.Parse(args)

	cs := spew.ConfigState{
		Indent:                  "  ",
		MaxDepth:                *depth,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}

	if *defaults {
		return dumpDefaults(os.Stdout)
	}

	files, err := requireFiles(fs)
	if err != nil {
		return err
	}

	m, err := lf.metrics()
	if err != nil {
		return err
	}

	cfg := lf.engineConfig(m)
	for _, path := range files {
		out, err := lf.layoutFile(path, cfg)
		if err != nil {
			return err
		}

		fmt.Printf("== %s (%vx%v)\n", path, out.container.Width, out.container.Height)
		if *tree {
			cs.Dump(out.doc.Root)
			continue
		}
		cs.Dump(out.result.Items())
	}
	return nil
}

// dumpDefaults prints the default property table one key per line, sorted.
func dumpDefaults(w io.Writer) error {
	defaults := layout.Defaults()
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%-24s %v\n", k, defaults[k]); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
