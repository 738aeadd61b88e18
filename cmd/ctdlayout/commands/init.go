package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/agiangrant/ctdlayout"
	"github.com/agiangrant/ctdlayout/config"
	"github.com/agiangrant/ctdlayout/geometry"
	"github.com/agiangrant/ctdlayout/treefile"
)

// Init implements the 'ctdlayout init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	dir := fs.String("dir", ".", "Directory to initialize")
	tree := fs.String("tree", "tree.toml", "Name of the example tree file (.toml or .json)")
	force := fs.Bool("force", false, "Overwrite existing files")
	fs.Parse(args)

	cfgPath := filepath.Join(*dir, config.FileName)
	treePath := filepath.Join(*dir, *tree)

	for _, p := range []string{cfgPath, treePath} {
		if _, err := os.Stat(p); err == nil && !*force {
			return errors.Errorf("%s already exists (use --force to overwrite)", p)
		}
	}

	if err := config.Save(cfgPath, config.Default()); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", cfgPath)

	doc := &treefile.Document{
		Root:      exampleTree(),
		Container: geometry.NewSize(defaultWidth, defaultHeight),
	}
	if err := treefile.Save(treePath, doc); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", treePath)

	fmt.Println("")
	fmt.Println("Next steps:")
	fmt.Printf("  ctdlayout compute %s\n", treePath)
	fmt.Printf("  ctdlayout render %s\n", treePath)
	return nil
}

// exampleTree is a small settings screen touching every node kind.
func exampleTree() *ctdlayout.Node {
	header := ctdlayout.HStack("px-4 py-2 gap-2 md:px-8",
		ctdlayout.Image("size-8"),
		ctdlayout.Text("Settings", "text-title"),
		ctdlayout.Spacer(),
		ctdlayout.Button("Done", "").SetString("size_preset", "small"),
	)

	rows := ctdlayout.VStack("p-4 gap-3")
	for _, label := range []string{"Account", "Notifications", "Privacy", "Storage"} {
		rows.AddChild(ctdlayout.HStack("gap-2",
			ctdlayout.Text(label, ""),
			ctdlayout.Spacer(),
			ctdlayout.Text("›", "text-caption"),
		))
		rows.AddChild(ctdlayout.Divider(""))
	}

	badge := ctdlayout.ZStack("p-1",
		ctdlayout.Image("").SetNumber("aspect_ratio", 2).SetNumber("width", 120),
		ctdlayout.Text("New", "text-caption"),
	).SetString("alignment", "top_trailing")

	return ctdlayout.VStack("",
		header,
		ctdlayout.Divider(""),
		ctdlayout.ScrollView("", rows).SetNumber("flex_grow", 1),
		badge,
		ctdlayout.FixedSpacer(16),
	)
}
