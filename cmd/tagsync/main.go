package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/jessevdk/go-flags"
	"golang.org/x/term"

	"github.com/sunho/sdsearch/util"
)

type options struct {
	Backend        string `long:"backend" description:"Backing store type" value-name:"mysql|postgres|sqlite3|mssql" default:"mysql"`
	User           string `short:"u" long:"user" description:"Database user" default:"root"`
	Password       string `short:"p" long:"password" description:"Database password, overridden by $TAGSYNC_PWD"`
	PasswordPrompt bool   `long:"password-prompt" description:"Force an interactive password prompt"`
	Host           string `short:"h" long:"host" description:"Database host" default:"127.0.0.1"`
	Port           int    `short:"P" long:"port" description:"Database port" default:"3306"`
	Socket         string `short:"S" long:"socket" description:"Unix socket path, overrides host/port"`
	SslMode        string `long:"ssl-mode" description:"SSL mode string passed through to the driver"`
	DBNames        string `long:"db-names" description:"Comma-separated logical dictionary names to snapshot" required:"true"`
	QueryTemplate  string `long:"query-template" description:"SQL selecting word,category,freq,redirect; %s is replaced with each db name's table" required:"true"`
	OutDir         string `long:"out-dir" description:"Directory to write <name>.csv snapshots into" default:"."`
	Concurrency    int    `long:"concurrency" description:"Max concurrent per-database snapshots (0 = unlimited)" default:"4"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}

	source, err := SourceFor(opts.Backend)
	if err != nil {
		log.Fatal(err)
	}

	password := opts.Password
	if v, ok := os.LookupEnv("TAGSYNC_PWD"); ok {
		password = v
	}
	if opts.PasswordPrompt {
		fmt.Print("Enter Password: ")
		pass, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println()
		password = string(pass)
	}

	names := strings.Split(opts.DBNames, ",")
	ctx := context.Background()

	type snapshot struct {
		name string
		csv  string
	}

	snapshots, err := util.ConcurrentMapFuncWithError(names, opts.Concurrency, func(name string) (snapshot, error) {
		name = strings.TrimSpace(name)
		cfg := ConnConfig{
			Backend:  opts.Backend,
			DBName:   name,
			User:     opts.User,
			Password: password,
			Host:     opts.Host,
			Port:     opts.Port,
			Socket:   opts.Socket,
			SslMode:  opts.SslMode,
		}

		db, err := source.Open(cfg)
		if err != nil {
			return snapshot{}, fmt.Errorf("tagsync: open %s: %w", name, err)
		}
		defer db.Close()

		query := fmt.Sprintf(opts.QueryTemplate, name)
		rows, err := FetchRows(ctx, db, query)
		if err != nil {
			return snapshot{}, fmt.Errorf("tagsync: fetch %s: %w", name, err)
		}

		return snapshot{name: name, csv: encodeCSV(rows)}, nil
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, snap := range snapshots {
		path := fmt.Sprintf("%s/%s.csv", opts.OutDir, snap.name)
		if err := os.WriteFile(path, []byte(snap.csv), 0o644); err != nil {
			log.Fatalf("tagsync: write %s: %v", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
}

// encodeCSV renders rows in the word,category,freq,redirect format
// tagdb.Database.Load expects.
func encodeCSV(rows []tagRow) string {
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s,%d,%d,%s\n", r.Word, r.Category, r.Freq, r.Redirect)
	}
	return b.String()
}
