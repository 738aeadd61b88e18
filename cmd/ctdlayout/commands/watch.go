package commands

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/agiangrant/ctdlayout/config"
	"github.com/agiangrant/ctdlayout/render"
)

const watchDebounce = 300 * time.Millisecond

// Watch implements the 'ctdlayout watch' command
func Watch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	var lf layoutFlags
	lf.register(fs)
	png := fs.Bool("png", false, "Re-render <tree>.png instead of writing <tree>.layout.json")
	scale := fs.Float64("scale", 1, "Pixel scale factor for -png")
	fs.Parse(args)

	files, err := requireFiles(fs)
	if err != nil {
		return err
	}

	w := &watcher{flags: &lf, png: *png, scale: *scale}
	if err := w.reloadMetrics(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return w.run(ctx, files)
}

type watcher struct {
	flags *layoutFlags
	png   bool
	scale float64

	metrics    config.Metrics
	configPath string
}

func (w *watcher) reloadMetrics() error {
	m, err := w.flags.metrics()
	if err != nil {
		return err
	}
	w.metrics = m
	w.configPath = w.flags.configPath
	if w.configPath == "" {
		w.configPath = config.Find()
	}
	return nil
}

func (w *watcher) run(ctx context.Context, files []string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer fw.Close()

	// Directories are watched rather than files: editors often save by
	// replacing the file, which drops a watch on the file itself.
	tracked := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return errors.WithStack(err)
		}
		tracked[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	if w.configPath != "" {
		if abs, err := filepath.Abs(w.configPath); err == nil {
			dirs[filepath.Dir(abs)] = true
		}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return errors.Wrapf(err, "failed to watch %s", dir)
		}
	}

	for _, f := range files {
		w.process(f)
	}

	fmt.Println()
	fmt.Println("👀 Watching for changes...")
	fmt.Println("   Press Ctrl+C to stop")
	fmt.Println()

	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()

	pending := make(map[string]bool)
	configChanged := false

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Stopped watching")
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			switch {
			case tracked[abs]:
				pending[abs] = true
			case w.isConfig(abs):
				configChanged = true
			default:
				continue
			}
			debounce.Reset(watchDebounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)

		case <-debounce.C:
			if configChanged {
				configChanged = false
				if err := w.reloadMetrics(); err != nil {
					log.Printf("config reload failed: %v", err)
				} else {
					log.Printf("reloaded %s", w.configPath)
					for f := range tracked {
						pending[f] = true
					}
				}
			}
			for f := range pending {
				w.process(f)
				delete(pending, f)
			}
		}
	}
}

func (w *watcher) isConfig(abs string) bool {
	if w.configPath == "" {
		return filepath.Base(abs) == config.FileName
	}
	cfgAbs, err := filepath.Abs(w.configPath)
	return err == nil && cfgAbs == abs
}

// process lays out one file and writes its output. Failures are logged so a
// broken save does not end the watch.
func (w *watcher) process(path string) {
	out, err := w.flags.layoutFile(path, w.flags.engineConfig(w.metrics))
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if w.png {
		opts := render.DefaultOptions()
		opts.Scale = w.scale
		opts.Backgrounds = render.Backgrounds(out.doc.Root)
		dst := outputPath(path, ".png")
		if err := render.File(dst, out.result, out.container, opts); err != nil {
			log.Printf("%v", err)
			return
		}
		log.Printf("rendered %s (%d nodes)", dst, out.result.Len())
		return
	}

	dst := outputPath(path, ".layout.json")
	f, err := os.Create(dst)
	if err != nil {
		log.Printf("failed to create %s: %v", dst, err)
		return
	}
	err = writeResults(f, []*laidOut{out})
	if cerr := f.Close(); err == nil && cerr != nil {
		err = errors.Wrapf(cerr, "failed to close %s", dst)
	}
	if err != nil {
		log.Printf("%v", err)
		return
	}
	log.Printf("computed %s (%d nodes)", dst, out.result.Len())
}
