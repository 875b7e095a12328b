package extensions

import (
	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
	"github.com/aksara-labs/lexitree-cli/internal/extensions/difficulty"
	"github.com/aksara-labs/lexitree-cli/internal/extensions/frequency"
	"github.com/aksara-labs/lexitree-cli/internal/extensions/gloss"
	"github.com/aksara-labs/lexitree-cli/internal/extensions/normalise"
	"github.com/aksara-labs/lexitree-cli/internal/extensions/postag"
	"github.com/aksara-labs/lexitree-cli/internal/extensions/translit"
)

// RegisterDefaults registers builders for all built-in extensions.
func RegisterDefaults(r *Registry) {
	r.Register(normalise.ID, buildNormalise)
	r.Register(frequency.ID, buildFrequency)
	r.Register(translit.ID, buildTranslit)
	r.Register(postag.ID, buildPostag)
	r.Register(gloss.ID, buildGloss)
	r.Register(difficulty.ID, buildDifficulty)
}

func buildNormalise(options map[string]any) (domain.Extension, error) {
	opts := []normalise.Option{}
	if collapse, ok := getBoolFromOptions(options, "collapse_whitespace"); ok {
		opts = append(opts, normalise.WithCollapseWhitespace(collapse))
	}
	if drop, ok := getBoolFromOptions(options, "drop_empty"); ok {
		opts = append(opts, normalise.WithDropEmpty(drop))
	}
	return normalise.New(opts...), nil
}

func buildFrequency(options map[string]any) (domain.Extension, error) {
	opts := []frequency.Option{}
	if skip, ok := getBoolFromOptions(options, "skip_existing"); ok {
		opts = append(opts, frequency.WithSkipExisting(skip))
	}
	if corpus, ok := getStringFromOptions(options, "corpus"); ok {
		opts = append(opts, frequency.WithCorpus(corpus))
	}
	return frequency.New(opts...), nil
}

func buildTranslit(options map[string]any) (domain.Extension, error) {
	opts := []translit.Option{}
	if scheme, ok := getStringFromOptions(options, "scheme"); ok {
		opts = append(opts, translit.WithScheme(scheme))
	}
	return translit.New(opts...), nil
}

func buildPostag(options map[string]any) (domain.Extension, error) {
	opts := []postag.Option{}
	if skip, ok := getBoolFromOptions(options, "skip_existing"); ok {
		opts = append(opts, postag.WithSkipExisting(skip))
	}
	return postag.New(opts...), nil
}

func buildGloss(options map[string]any) (domain.Extension, error) {
	opts := []gloss.Option{}
	if target, ok := getStringFromOptions(options, "target_lang"); ok {
		opts = append(opts, gloss.WithTargetLang(target))
	}
	if skip, ok := getBoolFromOptions(options, "skip_existing"); ok {
		opts = append(opts, gloss.WithSkipExisting(skip))
	}
	return gloss.New(opts...), nil
}

func buildDifficulty(options map[string]any) (domain.Extension, error) {
	opts := []difficulty.Option{}
	if skip, ok := getBoolFromOptions(options, "skip_existing"); ok {
		opts = append(opts, difficulty.WithSkipExisting(skip))
	}
	return difficulty.New(opts...), nil
}

// getStringFromOptions extracts a string value from an options map.
func getStringFromOptions(options map[string]any, key string) (string, bool) {
	if options == nil {
		return "", false
	}
	value, ok := options[key]
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// getBoolFromOptions extracts a bool value from an options map.
func getBoolFromOptions(options map[string]any, key string) (bool, bool) {
	if options == nil {
		return false, false
	}
	value, ok := options[key]
	if !ok {
		return false, false
	}
	b, ok := value.(bool)
	return b, ok
}
