// Package format renders the deterministic release-notes template used when
// AI generation is unavailable.
package format

import (
	"fmt"

	"relnotes/internal/model"
)

// Notes renders the structured fallback. It is a pure function of its input
// and succeeds for any values, including empty ones.
func Notes(h model.History) string {
	previous := h.PreviousTag
	if previous == "" {
		previous = "初版"
	}

	return fmt.Sprintf(`## %s

### 📝 変更内容 (Changes)

%s

### 📊 変更統計 (Change Statistics)

`+"```"+`
%s
`+"```"+`

> バージョン %s からの変更`, h.CurrentTag, h.CommitList(), h.Stats, previous)
}
