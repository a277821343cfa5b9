package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

func main() {
	metarOnly := flag.Bool("metar", false, "Show only METAR")
	tafOnly := flag.Bool("taf", false, "Show only TAF")
	noRawFlag := flag.Bool("no-raw", false, "Hide raw data")
	flagNoColor := flag.Bool("no-color", false, "Disable color output")
	serveFlag := flag.Bool("serve", false, "Run the HTTP weather proxy")
	configPath := flag.String("config", "", "Path to TOML configuration file")
	flag.Parse()

	if *flagNoColor {
		color.NoColor = true // disables colorized output globally
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if !*serveFlag && *configPath == "" && os.Getenv("WXDECODE_LOG_LEVEL") == "" {
		// keep the terminal output readable unless asked otherwise
		cfg.Logging.Level = "warn"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := NewClient(cfg.Upstream, log)

	if *serveFlag {
		server := NewServer(client, cfg.Server, log)
		if err := server.ListenAndServe(ctx); err != nil {
			log.Error("HTTP server failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	if err := runCLI(ctx, client, *metarOnly, *tafOnly, *noRawFlag); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// runCLI resolves the station from stdin, args or a prompt and prints the
// requested reports
func runCLI(ctx context.Context, client *Client, metarOnly, tafOnly, noRaw bool) error {
	stationCode, rawInput, stdinHasData := readFromStdin()
	if err := checkReportFlags(metarOnly, tafOnly, stdinHasData); err != nil {
		return err
	}

	if !stdinHasData {
		var err error
		if args := flag.Args(); len(args) > 0 {
			stationCode, err = getStationCodeFromArgs(args)
		} else {
			stationCode, err = promptForStationCode(os.Stdin, os.Stdout)
		}
		if err != nil {
			return err
		}
	}

	if !tafOnly {
		if err := processMETAR(ctx, client, os.Stdout, stationCode, rawInput, noRaw); err != nil {
			return err
		}
	}

	// A piped report is always treated as a METAR
	if !metarOnly && !stdinHasData {
		if !tafOnly {
			fmt.Println("\n----------------------------------")
		}
		if err := processTAF(ctx, client, os.Stdout, stationCode, noRaw); err != nil {
			return err
		}
	}

	return nil
}
