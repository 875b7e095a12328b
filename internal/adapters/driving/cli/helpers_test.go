package cli

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/aksara-labs/lexitree-cli/internal/adapters/driven/storage/memory"
	"github.com/aksara-labs/lexitree-cli/internal/core/services"
	"github.com/aksara-labs/lexitree-cli/internal/extensions"
)

// setupTestServices wires real in-memory services for command tests and
// returns a cleanup restoring the previous wiring. The config store is
// left nil so tests never read the user's real config file.
func setupTestServices() func() {
	prevPipeline := pipelineService
	prevRegistry := registryService
	prevConfig := configStore
	prevBuilders := extBuilders

	builders := extensions.NewRegistry()
	extensions.RegisterDefaults(builders)

	ctx := context.Background()
	registry := services.NewRegistry(memory.NewExtensionStore())
	for _, id := range builders.IDs() {
		ext, err := builders.Build(id, nil)
		if err != nil {
			panic(err)
		}
		if err := registry.Register(ctx, ext); err != nil {
			panic(err)
		}
	}

	extBuilders = builders
	registryService = registry
	pipelineService = services.NewPipeline(registry)
	configStore = nil

	return func() {
		pipelineService = prevPipeline
		registryService = prevRegistry
		configStore = prevConfig
		extBuilders = prevBuilders
	}
}

// resetProcessFlags clears the process command's flag state. Flag
// values and Changed bits persist across Execute calls within one test
// binary, so every process test starts from here.
func resetProcessFlags() {
	processExts = nil
	processPipeline = ""
	processLenient = false
	processStrategy = ""
	processDebug = false
	processOutput = ""
	processWatch = false
	processCmd.Flags().Visit(func(f *pflag.Flag) { f.Changed = false })
}
