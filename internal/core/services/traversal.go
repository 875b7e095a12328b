package services

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
)

// treeWalker drives one extension's visit callbacks across a document
// in pre-order: root, then each paragraph, then each sentence, then
// each word in sentence order. Leaves are not visited.
//
// Word visits are bracketed by a snapshot of the word's extras and meta
// maps so that top-level writes can be routed through the conflict
// tracker after the callback returns.
type treeWalker struct {
	ext      domain.Extension
	extID    string
	tracker  *fieldTracker
	strategy domain.ConflictStrategy
	warnings *[]domain.Warning

	rootV domain.RootVisitor
	paraV domain.ParagraphVisitor
	sentV domain.SentenceVisitor
	wordV domain.WordVisitor
}

// newTreeWalker asserts the extension's visit capabilities once so the
// walk itself is assertion-free.
func newTreeWalker(ext domain.Extension, tracker *fieldTracker, strategy domain.ConflictStrategy, warnings *[]domain.Warning) *treeWalker {
	w := &treeWalker{
		ext:      ext,
		extID:    ext.Info().ID,
		tracker:  tracker,
		strategy: strategy,
		warnings: warnings,
	}
	w.rootV, _ = ext.(domain.RootVisitor)
	w.paraV, _ = ext.(domain.ParagraphVisitor)
	w.sentV, _ = ext.(domain.SentenceVisitor)
	w.wordV, _ = ext.(domain.WordVisitor)
	return w
}

// hasVisitors reports whether the extension implements any visit
// capability at all. Walking is skipped entirely when it does not.
func (w *treeWalker) hasVisitors() bool {
	return w.rootV != nil || w.paraV != nil || w.sentV != nil || w.wordV != nil
}

// walk traverses the document pre-order, dispatching to whichever visit
// capabilities the extension implements. The first callback error stops
// the walk; mutations made before the failure stay in the document.
func (w *treeWalker) walk(ctx context.Context, doc *domain.Root) error {
	if w.rootV != nil {
		if err := w.rootV.VisitRoot(ctx, doc); err != nil {
			return fmt.Errorf("visit root: %w", err)
		}
	}
	for _, para := range doc.Paragraphs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.walkParagraph(ctx, para); err != nil {
			return err
		}
	}
	return nil
}

func (w *treeWalker) walkParagraph(ctx context.Context, para *domain.Paragraph) error {
	if w.paraV != nil {
		if err := w.paraV.VisitParagraph(ctx, para); err != nil {
			return fmt.Errorf("visit paragraph: %w", err)
		}
	}
	for _, sent := range para.Sentences {
		if err := w.walkSentence(ctx, sent); err != nil {
			return err
		}
	}
	return nil
}

func (w *treeWalker) walkSentence(ctx context.Context, sent *domain.Sentence) error {
	if w.sentV != nil {
		if err := w.sentV.VisitSentence(ctx, sent); err != nil {
			return fmt.Errorf("visit sentence: %w", err)
		}
	}
	if w.wordV == nil {
		return nil
	}
	for _, child := range sent.Children {
		word, ok := child.(*domain.Word)
		if !ok {
			continue
		}
		if err := w.visitWord(ctx, word); err != nil {
			return err
		}
	}
	return nil
}

// visitWord runs the word callback between snapshots of the word's
// tracked maps, then records every changed top-level key with the
// conflict tracker. A write rejected under the error strategy is
// reverted on the word before the walk fails.
func (w *treeWalker) visitWord(ctx context.Context, word *domain.Word) error {
	beforeExtras := cloneShallow(word.Extras)
	beforeMeta := cloneShallow(word.Meta)

	if err := w.wordV.VisitWord(ctx, word); err != nil {
		return fmt.Errorf("visit word: %w", err)
	}

	if err := w.commitTracked(word.ID, word.Extras, beforeExtras, extrasField); err != nil {
		return err
	}
	return w.commitTracked(word.ID, word.Meta, beforeMeta, metaField)
}

// commitTracked diffs a tracked map against its pre-visit snapshot and
// records each added or changed top-level key. Keys are committed in
// sorted order so conflicts surface deterministically. Deleted keys are
// not tracked.
func (w *treeWalker) commitTracked(nodeID string, after, before map[string]any, path func(string) string) error {
	if len(after) == 0 {
		return nil
	}
	keys := make([]string, 0, len(after))
	for k := range after {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		prev, had := before[k]
		if had && reflect.DeepEqual(prev, after[k]) {
			continue
		}
		warning, err := w.tracker.Record(nodeID, path(k), w.extID, after[k], w.strategy)
		if err != nil {
			if had {
				after[k] = prev
			} else {
				delete(after, k)
			}
			return err
		}
		if warning != nil {
			*w.warnings = append(*w.warnings, *warning)
		}
	}
	return nil
}

// cloneShallow copies a map's top-level entries. Values are shared with
// the original, which is enough to detect key-level replacement.
func cloneShallow(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
