package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/ctdlayout/cmd/ctdlayout/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "compute":
		err = commands.Compute(args)
	case "render":
		err = commands.Render(args)
	case "watch":
		err = commands.Watch(args)
	case "dump":
		err = commands.Dump(args)
	case "init":
		err = commands.Init(args)
	case "version", "-v", "--version":
		fmt.Printf("ctdlayout version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`ctdlayout - declarative UI layout engine

Usage: ctdlayout <command> [options] <tree files...>

Commands:
  compute   Lay out tree files and print frames as JSON
  render    Lay out tree files and paint the frames to PNG
  watch     Recompute (or re-render) tree files when they change
  dump      Print the laid-out tree and result structures
  init      Write a default layout.toml and an example tree
  version   Print version information
  help      Show this help message

Examples:
  ctdlayout compute tree.toml                 Frames for a 390x844 screen
  ctdlayout compute -width 1280 a.toml b.json Lay out several files in parallel
  ctdlayout render -scale 2 tree.toml         Write tree.png at 2x
  ctdlayout watch -png tree.toml              Re-render on every save

Configuration:
  Text and button metrics, breakpoints and default spacing are read from
  layout.toml (also config/layout.toml or .centered/layout.toml).
  Run 'ctdlayout init' to create one with the defaults.`)
}
