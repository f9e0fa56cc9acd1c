// Command sdsearch is a REPL host for the tag search engine: it loads one
// CSV dictionary into a fresh database and pretty-prints ranked matches for
// each query typed on stdin — a thin, flag-driven front end over the
// library.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"github.com/mattn/go-colorable"

	"github.com/sunho/sdsearch/config"
	"github.com/sunho/sdsearch/logging"
	"github.com/sunho/sdsearch/registry"
)

var version = "0.0.1"

type cliOptions struct {
	File    string `short:"f" long:"file" description:"CSV file to load into the database" value-name:"csv_file" required:"true"`
	DBName  string `long:"db-name" description:"Name to give the loaded database" value-name:"name" default:"default"`
	Config  string `long:"config" description:"YAML file overriding the engine's cutoffs" value-name:"config_file"`
	Verbose bool   `long:"verbose" description:"Log each load/search call and lower LOG_LEVEL to debug"`
	Help    bool   `long:"help" description:"Show this help"`
	Version bool   `long:"version" description:"Show this version"`
}

func parseOptions(args []string) *cliOptions {
	opts := &cliOptions{}
	parser := flags.NewParser(opts, flags.None)
	parser.Usage = "[options]"

	if _, err := parser.ParseArgs(args); err != nil {
		log.Fatal(err)
	}
	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}
	return opts
}

func main() {
	opts := parseOptions(os.Args[1:])

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Fatal(err)
	}

	os.Setenv("LOG_LEVEL", cfg.LogLevel)
	if opts.Verbose {
		os.Setenv("LOG_LEVEL", "debug")
	}
	logging.Init()

	csvData, err := os.ReadFile(opts.File)
	if err != nil {
		log.Fatalf("failed to read %s: %v", opts.File, err)
	}

	reg := registry.New()
	reg.Config = cfg
	if opts.Verbose {
		reg.Logger = logging.StdoutLogger{}
	}

	handle := reg.Create(opts.DBName)
	reg.Get(handle).Load(string(csvData))

	out := colorable.NewColorableStdout()
	printer := pp.New()
	printer.SetOutput(out)

	fmt.Fprintf(out, "loaded %q, type a query and press enter (:dbs lists loaded databases, Ctrl-D quits)\n", opts.DBName)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		query := scanner.Text()
		switch {
		case query == "":
			continue
		case query == ":dbs":
			for _, line := range reg.Dump() {
				fmt.Fprintln(out, line)
			}
		default:
			results := reg.Get(handle).Search(query)
			printer.Println(results)
		}
	}
}
