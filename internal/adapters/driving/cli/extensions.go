package cli

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
)

var extensionsCmd = &cobra.Command{
	Use:   "extensions",
	Short: "Inspect available extensions",
	Long:  `List registered extensions or show what one reads, writes and depends on.`,
}

var extensionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered extensions",
	RunE:  runExtensionsList,
}

var extensionsInfoCmd = &cobra.Command{
	Use:   "info [extension-id]",
	Short: "Show extension details",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtensionsInfo,
}

func init() {
	extensionsCmd.AddCommand(extensionsListCmd)
	extensionsCmd.AddCommand(extensionsInfoCmd)
	rootCmd.AddCommand(extensionsCmd)
}

func runExtensionsList(cmd *cobra.Command, _ []string) error {
	if registryService == nil {
		return errors.New("registry service not configured")
	}

	exts, err := registryService.List(context.Background())
	if err != nil {
		return err
	}
	if len(exts) == 0 {
		cmd.Println("No extensions registered.")
		return nil
	}

	cmd.Println("Extensions:")
	for _, ext := range exts {
		info := ext.Info()
		cmd.Printf("  %-12s %s\n", info.ID, info.Name)
		if len(info.Dependencies) > 0 {
			cmd.Printf("  %-12s depends on: %s\n", "", strings.Join(info.Dependencies, ", "))
		}
	}
	return nil
}

func runExtensionsInfo(cmd *cobra.Command, args []string) error {
	if registryService == nil {
		return errors.New("registry service not configured")
	}

	ext, err := registryService.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	info := ext.Info()
	cmd.Printf("ID:          %s\n", info.ID)
	cmd.Printf("Name:        %s\n", info.Name)
	if info.Description != "" {
		cmd.Printf("Description: %s\n", info.Description)
	}
	if len(info.Dependencies) > 0 {
		cmd.Printf("Depends on:  %s\n", strings.Join(info.Dependencies, ", "))
	}
	printFieldSet(cmd, "Reads", info.Requires)
	printFieldSet(cmd, "Writes", info.Provides)
	if len(info.Options) > 0 {
		cmd.Println("Options:")
		for _, key := range sortedOptionKeys(info.Options) {
			cmd.Printf("  %s = %v\n", key, info.Options[key])
		}
	}
	return nil
}

func printFieldSet(cmd *cobra.Command, label string, fields domain.FieldSet) {
	var parts []string
	for _, f := range fields.Extras {
		parts = append(parts, "extras."+f)
	}
	for _, f := range fields.Metadata {
		parts = append(parts, "meta."+f)
	}
	if len(parts) > 0 {
		cmd.Printf("%-12s %s\n", label+":", strings.Join(parts, ", "))
	}
}

func sortedOptionKeys(options map[string]any) []string {
	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
