// Pith CLI - inspect classes and snapshots declared in a pith.toml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/chazu/pith/manifest"
	"github.com/chazu/pith/object"
	"github.com/chazu/pith/snapshot"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output (debug logging)")
	dir := flag.String("C", ".", "Project directory containing pith.toml")
	out := flag.String("o", "", "Output file for snapshot (default: <class>.snap)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pith [options] <command> [args]\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  classes             List declared classes with their digests\n")
		fmt.Fprintf(os.Stderr, "  inspect <class>     Construct a default instance and print it\n")
		fmt.Fprintf(os.Stderr, "  snapshot <class>    Capture a default instance to a CBOR snapshot\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		commonlog.Configure(1, nil)
	} else {
		commonlog.Configure(0, nil)
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	m, err := manifest.FindAndLoad(*dir)
	if err != nil {
		fatal("loading manifest: %v", err)
	}
	if m == nil {
		fatal("no pith.toml found in or above %s", *dir)
	}

	classes := object.NewClassTable()
	unbound, err := m.Build(classes, nil)
	if err != nil {
		fatal("building classes: %v", err)
	}
	for _, key := range unbound {
		commonlog.GetLogger("pith.cmd").Infof("method %s has no Go binding", key)
	}

	switch args[0] {
	case "classes":
		runClasses(m, classes)
	case "inspect":
		runInspect(classes, args[1:])
	case "snapshot":
		runSnapshot(classes, args[1:], *out)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		flag.Usage()
		os.Exit(2)
	}
}

func runClasses(m *manifest.Manifest, classes *object.ClassTable) {
	if m.Project.Name != "" {
		fmt.Printf("%s %s\n", m.Project.Name, m.Project.Version)
	}
	for _, name := range classes.Names() {
		c, _ := classes.Lookup(name)
		d := snapshot.DigestClass(c)
		fmt.Printf("%s  %x\n", name, d.Hash[:8])
		for _, f := range c.FieldNames() {
			fmt.Printf("  field  %s\n", f)
		}
		for _, mn := range c.Table().Names() {
			fmt.Printf("  method %s\n", mn)
		}
	}
}

func runInspect(classes *object.ClassTable, args []string) {
	c := lookupClass(classes, args)
	fmt.Print(object.Inspect(c.New()))
}

func runSnapshot(classes *object.ClassTable, args []string, out string) {
	c := lookupClass(classes, args)

	data, err := snapshot.Marshal(snapshot.Capture(c.New()))
	if err != nil {
		fatal("encoding snapshot: %v", err)
	}

	if out == "" {
		out = c.Name + ".snap"
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fatal("writing snapshot: %v", err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", out, len(data))
}

func lookupClass(classes *object.ClassTable, args []string) *object.Class {
	if len(args) != 1 {
		fatal("expected exactly one class name")
	}
	c, ok := classes.Lookup(args[0])
	if !ok {
		fatal("class %q not declared in manifest", args[0])
	}
	return c
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
