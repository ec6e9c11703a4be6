package assessment

import "praxis/internal/model"

// ScoreOutcome applies the plurality rule of a SCORED_OUTCOME block: every
// question must carry a recorded answer id, otherwise no outcome forms at
// all. Each chosen answer's value tag casts one vote; the winner is the tag
// with the strict highest tally, ties resolved to the tag tallied first in
// question order.
func ScoreOutcome(block *model.Block, selections map[string]string) (string, bool) {
	if len(block.Questions) == 0 {
		return "", false
	}

	tally := make(map[string]int, len(block.Questions))
	order := make([]string, 0, len(block.Questions))

	for _, q := range block.Questions {
		chosen, ok := findAnswer(q, selections[q.ID])
		if !ok {
			// completeness gate: any gap voids the whole block
			return "", false
		}
		if _, seen := tally[chosen.Value]; !seen {
			order = append(order, chosen.Value)
		}
		tally[chosen.Value]++
	}

	winner := ""
	best := 0
	for _, value := range order {
		if tally[value] > best {
			winner = value
			best = tally[value]
		}
	}
	if winner == "" {
		return "", false
	}
	return winner, true
}
