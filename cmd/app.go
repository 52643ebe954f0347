// Package cmd implements the CLI application to manage an inventory.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stockroom"
	"github.com/google/subcommands"
)

// Commands lists the subcommands in registration order. A main package
// registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&removeCmd{},
	&restockCmd{},
	&sellCmd{},
	&searchCmd{},
	&listCmd{},
	&salesCmd{},
	&valueCmd{},
	&expireCmd{},
	&fmtCmd{},
	&serveCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "stockroom.yaml", "Path to the optional YAML config file")
var dataDir = flag.String("data", "", "Data directory holding the snapshot files (overrides the config file)")

// appConfig loads the config file and applies flag overrides.
func appConfig() (stockroom.Config, error) {
	cfg, err := stockroom.LoadConfig(*configFile)
	if err != nil {
		return cfg, err
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	return cfg, nil
}

// eventSink returns a sink appending one timestamped line per mutating
// operation to the configured log file. An empty log file name, or a file
// that cannot be opened, discards events.
func eventSink(cfg stockroom.Config) stockroom.EventSink {
	if cfg.LogFile == "" {
		return stockroom.DiscardEvents
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("warning: cannot open log file %q: %v", cfg.LogFile, err)
		return stockroom.DiscardEvents
	}
	logger := log.New(f, "", log.LstdFlags)
	return func(format string, args ...any) { logger.Printf(format, args...) }
}

// openStore builds the store for the configured data directory.
func openStore() (*stockroom.Store, stockroom.Config, error) {
	cfg, err := appConfig()
	if err != nil {
		return nil, cfg, err
	}
	return stockroom.NewStore(cfg.DataDir, eventSink(cfg)), cfg, nil
}

// loadInventory is the central function to load the inventory (with its
// sales ledger) from the data directory.
func loadInventory() (*stockroom.Inventory, *stockroom.Store, error) {
	store, _, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	inv, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return inv, store, nil
}

// saveInventory writes both snapshots back to the data directory.
func saveInventory(store *stockroom.Store, inv *stockroom.Inventory) subcommands.ExitStatus {
	if err := store.Save(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders a markdown string for the terminal and prints it.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
