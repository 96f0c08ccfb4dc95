// Command yamly is a structural diff tool for hierarchical documents
// and tree-shaped data files.
package main

import (
	"fmt"
	"os"

	"github.com/noamoss/yamly-sub000/internal/adapters/driven/config/file"
	"github.com/noamoss/yamly-sub000/internal/adapters/driven/fetch"
	"github.com/noamoss/yamly-sub000/internal/adapters/driven/linemap"
	"github.com/noamoss/yamly-sub000/internal/adapters/driven/loader"
	"github.com/noamoss/yamly-sub000/internal/adapters/driven/storage/memory"
	"github.com/noamoss/yamly-sub000/internal/adapters/driven/storage/sqlite"
	"github.com/noamoss/yamly-sub000/internal/adapters/driving/cli"
	"github.com/noamoss/yamly-sub000/internal/core/ports/driven"
	"github.com/noamoss/yamly-sub000/internal/core/services"
	"github.com/noamoss/yamly-sub000/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}

	// History falls back to memory when the database cannot be opened;
	// diffing still works, runs just aren't persisted.
	var history driven.HistoryStore
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("history disabled: %v", err)
		history = memory.NewHistoryStore()
	} else {
		history = store
	}
	defer history.Close()

	cli.SetServices(cli.Services{
		Diff:         services.NewDiffService(),
		DocLoader:    loader.NewDocumentLoader(),
		ValueLoader:  loader.NewValueLoader(),
		Rules:        configStore,
		History:      history,
		Fetcher:      fetch.NewHTTPFetcher(),
		LineResolver: linemap.NewResolver(),
	})

	return cli.Execute()
}
