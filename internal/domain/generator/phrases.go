package generator

import (
	"strings"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/infrastructure/monitoring/logging"
)

// substitutePhrases scans the utterance for any phrase-table entry it
// contains and emits one new utterance per alternate phrase in the same
// equivalence class, replacing all occurrences of the matched phrase.
//
// Only alternates at indices 0 through len(class)-2 are offered: the class's
// final entry is never used as a replacement, even when some other entry
// matched.  No POS gating or similarity filtering applies here, and the
// output is not deduplicated.
func (g *Generator) substitutePhrases() []string {
	if g.table == nil || g.table.Len() == 0 {
		return nil
	}

	var out []string
	for _, class := range g.table.Classes() {
		for _, matched := range class.Phrases {
			if !strings.Contains(g.utterance, matched) {
				continue
			}
			g.logger.Debug("phrase match",
				logging.String("class", class.Name),
				logging.String("phrase", matched))

			for i := 0; i < len(class.Phrases)-1; i++ {
				if class.Phrases[i] == matched {
					continue
				}
				out = append(out, strings.ReplaceAll(g.utterance, matched, class.Phrases[i]))
			}
		}
	}
	return out
}
