package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aksara-labs/lexitree-cli/internal/adapters/driven/watch"
	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
	"github.com/aksara-labs/lexitree-cli/internal/manifest"
	"github.com/aksara-labs/lexitree-cli/internal/treeio"
)

// maxConcurrentFiles bounds the per-file fan-out.
const maxConcurrentFiles = 4

var (
	processExts     []string
	processPipeline string
	processLenient  bool
	processStrategy string
	processDebug    bool
	processOutput   string
	processWatch    bool
)

var processCmd = &cobra.Command{
	Use:   "process [file...]",
	Short: "Run extensions over document trees",
	Long: `Loads each document tree, runs the requested extensions over it in
dependency order and writes the enriched tree back out.

Extensions come from --ext flags, a --pipeline manifest, or the
pipeline.extensions list in the config file. Multiple files are
processed concurrently; summaries print in input order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringSliceVarP(&processExts, "ext", "e", nil, "extension to run (repeatable)")
	processCmd.Flags().StringVarP(&processPipeline, "pipeline", "p", "", "pipeline manifest file")
	processCmd.Flags().BoolVar(&processLenient, "lenient", false, "skip failing extensions instead of stopping")
	processCmd.Flags().StringVar(&processStrategy, "conflict-strategy", "", "conflict strategy: error, warn or lastWins")
	processCmd.Flags().BoolVar(&processDebug, "debug", false, "verbose per-extension logging for the run")
	processCmd.Flags().StringVarP(&processOutput, "output", "o", "", "output directory, or - for stdout")
	processCmd.Flags().BoolVarP(&processWatch, "watch", "w", false, "reprocess files when they change")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if pipelineService == nil {
		return errors.New("pipeline service not configured")
	}

	var m *manifest.Manifest
	if processPipeline != "" {
		loaded, err := manifest.Load(processPipeline)
		if err != nil {
			return err
		}
		m = &loaded
	}

	opts, err := resolveRunOptions(cmd, m)
	if err != nil {
		return err
	}

	ctx := context.Background()
	exts, err := resolveExtensions(ctx, m)
	if err != nil {
		return err
	}

	if processOutput != "" && processOutput != "-" {
		if err := os.MkdirAll(processOutput, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	err = processFiles(ctx, cmd, args, exts, opts)
	if !processWatch {
		return err
	}
	if err != nil {
		cmd.PrintErrln(err)
	}
	return watchAndReprocess(ctx, cmd, args, exts, opts)
}

// resolveRunOptions layers the run options: built-in defaults, then the
// config file, then the manifest, then explicit flags.
func resolveRunOptions(cmd *cobra.Command, m *manifest.Manifest) (domain.Options, error) {
	opts := domain.DefaultOptions()

	if configStore != nil {
		opts.Lenient = configStore.GetBool("defaults.lenient")
		if s := configStore.GetString("defaults.conflict_strategy"); s != "" {
			opts.ConflictStrategy = domain.ConflictStrategy(s)
		}
	}

	if m != nil {
		opts = m.PipelineOptions()
	}

	flags := cmd.Flags()
	if flags.Changed("lenient") {
		opts.Lenient = processLenient
	}
	if flags.Changed("conflict-strategy") {
		opts.ConflictStrategy = domain.ConflictStrategy(processStrategy)
	}
	if flags.Changed("debug") {
		opts.Debug = processDebug
	}

	if !opts.ConflictStrategy.Valid() {
		return domain.Options{}, fmt.Errorf("unknown conflict strategy %q (use error, warn or lastWins)", opts.ConflictStrategy)
	}
	return opts, nil
}

// resolveExtensions assembles the extension list for the run. Manifest
// entries build configured instances; bare ids build with defaults, or
// fall back to the registry for externally registered extensions.
func resolveExtensions(ctx context.Context, m *manifest.Manifest) ([]domain.Extension, error) {
	if m != nil {
		exts := make([]domain.Extension, 0, len(m.Extensions))
		for _, ref := range m.Extensions {
			ext, err := buildExtension(ctx, ref.ID, ref.Options)
			if err != nil {
				return nil, err
			}
			exts = append(exts, ext)
		}
		return exts, nil
	}

	ids := processExts
	if len(ids) == 0 && configStore != nil {
		ids = configStore.GetStringSlice("pipeline.extensions")
	}
	if len(ids) == 0 {
		return nil, errors.New("no extensions requested (use --ext, --pipeline, or pipeline.extensions in the config file)")
	}

	exts := make([]domain.Extension, 0, len(ids))
	for _, id := range ids {
		ext, err := buildExtension(ctx, id, nil)
		if err != nil {
			return nil, err
		}
		exts = append(exts, ext)
	}
	return exts, nil
}

func buildExtension(ctx context.Context, id string, options map[string]any) (domain.Extension, error) {
	if extBuilders != nil && extBuilders.Has(id) {
		return extBuilders.Build(id, options)
	}
	if len(options) > 0 {
		return nil, fmt.Errorf("extension %q does not take options", id)
	}
	if registryService == nil {
		return nil, errors.New("registry service not configured")
	}
	return registryService.Get(ctx, id)
}

// fileOutcome is one file's run, kept so output prints in input order
// regardless of which worker finished first.
type fileOutcome struct {
	result *domain.ProcessingResult
	data   []byte
	err    error
}

func processFiles(ctx context.Context, cmd *cobra.Command, paths []string, exts []domain.Extension, opts domain.Options) error {
	outcomes := make([]fileOutcome, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFiles)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			outcomes[i] = processFile(gctx, path, exts, opts)
			return nil
		})
	}
	// Workers record failures in their outcome slot instead of
	// returning them, so one bad file never cancels the others.
	_ = g.Wait()

	var errs []error
	for i, path := range paths {
		out := outcomes[i]
		if out.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, out.err))
			continue
		}
		if err := emitResult(cmd, path, i > 0, out); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		if !opts.Lenient && len(out.result.Metadata.Errors) > 0 {
			errs = append(errs, fmt.Errorf("%s: %d extension error(s)", path, len(out.result.Metadata.Errors)))
		}
	}
	return errors.Join(errs...)
}

func processFile(ctx context.Context, path string, exts []domain.Extension, opts domain.Options) fileOutcome {
	doc, err := treeio.Load(path)
	if err != nil {
		return fileOutcome{err: err}
	}

	result, err := pipelineService.Process(ctx, doc, exts, opts)
	if err != nil {
		return fileOutcome{err: err}
	}

	data, err := treeio.Encode(result.Document)
	if err != nil {
		return fileOutcome{err: err}
	}
	return fileOutcome{result: result, data: data}
}

// emitResult writes one file's enriched tree and prints its summary.
// With --output - the tree streams to stdout and the summary is
// suppressed.
func emitResult(cmd *cobra.Command, path string, separator bool, out fileOutcome) error {
	dest := destinationFor(path)
	if dest == "-" {
		if separator {
			cmd.Print("---\n")
		}
		cmd.Print(string(out.data))
		return nil
	}

	if err := os.WriteFile(dest, out.data, 0644); err != nil {
		return err
	}
	printSummary(cmd, path, dest, out.result)
	return nil
}

// destinationFor picks where a file's enriched tree goes: stdout,
// the output directory, or next to the input with an .enriched suffix.
func destinationFor(path string) string {
	switch {
	case processOutput == "-":
		return "-"
	case processOutput != "":
		return filepath.Join(processOutput, filepath.Base(path))
	default:
		ext := filepath.Ext(path)
		return strings.TrimSuffix(path, ext) + ".enriched" + ext
	}
}

func printSummary(cmd *cobra.Command, path, dest string, result *domain.ProcessingResult) {
	md := result.Metadata
	cmd.Printf("Processed %s -> %s (%s)\n", path, dest, md.Duration.Round(time.Millisecond))
	if len(md.AppliedExtensions) > 0 {
		cmd.Printf("  applied: %s\n", strings.Join(md.AppliedExtensions, ", "))
	}
	if len(md.SkippedExtensions) > 0 {
		cmd.Printf("  skipped: %s\n", strings.Join(md.SkippedExtensions, ", "))
	}
	for _, w := range md.Warnings {
		cmd.Printf("  warning: %s: %s\n", w.ExtensionID, w.Message)
	}
	for i := range md.Errors {
		cmd.Printf("  error: %s\n", md.Errors[i].Error())
	}
}

// watchAndReprocess blocks, rerunning the pipeline for any input file
// that is created or written, until interrupted.
func watchAndReprocess(ctx context.Context, cmd *cobra.Command, paths []string, exts []domain.Extension, opts domain.Options) error {
	targets := make(map[string]string, len(paths))
	dirs := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}
		targets[abs] = path
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	for dir := range dirs {
		w, err := watch.New(dir, func(change watch.Change) {
			if change.Type == watch.ChangeRemoved {
				return
			}
			path, watched := targets[change.Path]
			if !watched {
				return
			}
			if err := processFiles(gctx, cmd, []string{path}, exts, opts); err != nil {
				cmd.PrintErrln(err)
			}
		})
		if err != nil {
			return err
		}
		defer w.Close()
		g.Go(func() error { return w.Run(gctx) })
	}

	cmd.Printf("Watching %d file(s) for changes. Press Ctrl+C to stop.\n", len(targets))
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
