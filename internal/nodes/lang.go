package nodes

import (
	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
)

// PropagateLang fills every empty Lang and Script field from the
// nearest ancestor that sets one. Fields already set are left alone,
// so mixed-language documents keep their overrides.
func PropagateLang(root *domain.Root) {
	if root == nil {
		return
	}
	for _, para := range root.Paragraphs {
		if para.Lang == "" {
			para.Lang = root.Lang
		}
		if para.Script == "" {
			para.Script = root.Script
		}
		for _, sent := range para.Sentences {
			if sent.Lang == "" {
				sent.Lang = para.Lang
			}
			if sent.Script == "" {
				sent.Script = para.Script
			}
			for _, child := range sent.Children {
				word, ok := child.(*domain.Word)
				if !ok {
					continue
				}
				if word.Lang == "" {
					word.Lang = sent.Lang
				}
				if word.Script == "" {
					word.Script = sent.Script
				}
			}
		}
	}
}
