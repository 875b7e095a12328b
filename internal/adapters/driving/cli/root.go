// Package cli implements the lexitree command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/aksara-labs/lexitree-cli/internal/adapters/driven/config/file"
	"github.com/aksara-labs/lexitree-cli/internal/adapters/driven/storage/memory"
	"github.com/aksara-labs/lexitree-cli/internal/core/ports/driven"
	"github.com/aksara-labs/lexitree-cli/internal/core/ports/driving"
	"github.com/aksara-labs/lexitree-cli/internal/core/services"
	"github.com/aksara-labs/lexitree-cli/internal/extensions"
	"github.com/aksara-labs/lexitree-cli/internal/logger"
)

// version is overridden at release time via -ldflags.
var version = "dev"

// Services the commands run against. Execute wires the real
// implementations; tests swap in their own.
var (
	pipelineService driving.PipelineService
	registryService driving.RegistryService
	configStore     driven.ConfigStore
	extBuilders     *extensions.Registry
)

var (
	verboseFlag bool
	configDir   string
)

var rootCmd = &cobra.Command{
	Use:   "lexitree",
	Short: "Enrich annotated document trees with extensions",
	Long: `Lexitree runs enrichment extensions over annotated document trees:
transliteration, word frequency, part-of-speech tags, glosses and
difficulty scores, with dependency ordering and conflict detection.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if verboseFlag {
			logger.SetVerbose(true)
		}
		if configDir != "" {
			store, err := configfile.NewConfigStore(configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			configStore = store
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.lexitree)")
}

// Execute wires the default services and runs the root command.
func Execute() error {
	if err := initDefaultServices(); err != nil {
		return err
	}
	return rootCmd.Execute()
}

// initDefaultServices builds the production wiring: builtin extension
// builders, an in-memory registry pre-loaded with default instances,
// the pipeline, and the user config store. Anything a test already
// injected is left alone.
func initDefaultServices() error {
	if extBuilders == nil {
		extBuilders = extensions.NewRegistry()
		extensions.RegisterDefaults(extBuilders)
	}

	if registryService == nil {
		ctx := context.Background()
		registry := services.NewRegistry(memory.NewExtensionStore())
		for _, id := range extBuilders.IDs() {
			ext, err := extBuilders.Build(id, nil)
			if err != nil {
				return fmt.Errorf("build extension %s: %w", id, err)
			}
			if err := registry.Register(ctx, ext); err != nil {
				return fmt.Errorf("register extension %s: %w", id, err)
			}
		}
		registryService = registry
	}

	if pipelineService == nil {
		pipelineService = services.NewPipeline(registryService)
	}

	if configStore == nil {
		store, err := configfile.NewConfigStore("")
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		configStore = store
	}

	return nil
}
