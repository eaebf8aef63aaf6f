package main

// Chooser surfaces scored candidates for one unit to the operator and
// returns the selected index, or ok=false for an explicit skip. The
// engine never guesses among plausible options itself when a Chooser is
// installed; tests substitute a scripted one for a human.
type Chooser func(unit MediaUnit, candidates []Candidate, scores []float64) (int, bool)

type Resolver struct {
	Search Searcher

	// Choose handles disambiguation when a search returns more than one
	// candidate. nil selects the best-scored candidate without asking.
	Choose Chooser
}

// scoreCandidate is the similarity of the inferred title against the
// candidate's display name and alternate titles, best of all.
func scoreCandidate(title string, candidate Candidate) float64 {
	best := titleSimilarity(title, candidate.DisplayName)
	for _, alternate := range candidate.AlternateTitles {
		if score := titleSimilarity(title, alternate); score > best {
			best = score
		}
	}
	return best
}

// Resolve attaches a catalog identity to one unit. A transport error
// from the collaborator is returned to the caller, which decides
// whether the outage is total; an empty result set is a plain miss and
// leaves the unit untagged.
func (r *Resolver) Resolve(unit MediaUnit) (ResolvedUnit, error) {
	resolved := ResolvedUnit{MediaUnit: unit}

	candidates, err := r.Search.Search(unit.Title, unit.Year, unit.Kind)
	if err != nil {
		return resolved, err
	}
	if len(candidates) == 0 {
		Log("🚫 no catalog match for", unit.describe())
		return resolved, nil
	}

	scores := mapSlice(candidates, func(c Candidate) float64 {
		return scoreCandidate(unit.Title, c)
	})
	pick := func(idx int) {
		resolved.CatalogID = candidates[idx].ID
		resolved.Confidence = scores[idx]
		if resolved.Year == 0 {
			// the source path carried no year; the catalog entry names
			// the destination
			resolved.Year = candidates[idx].Year
		}
	}

	// a tag from a previous run pins the choice, keeping re-runs stable
	if unit.CatalogHint != "" {
		ids := mapSlice(candidates, func(c Candidate) string { return c.ID })
		if idx := findIndex(ids, unit.CatalogHint); idx != -1 {
			pick(idx)
			return resolved, nil
		}
	}

	if len(candidates) > 1 && r.Choose != nil {
		idx, ok := r.Choose(unit, candidates, scores)
		if !ok {
			// operator declined every candidate; stays untagged
			resolved.Ambiguous = true
			return resolved, nil
		}
		pick(idx)
		return resolved, nil
	}

	bestIdx := 0
	for idx, score := range scores {
		if score > scores[bestIdx] {
			bestIdx = idx
		}
	}
	// exact score ties fall back to the collaborator's ordering, first
	// wins; the selection is recorded as ambiguous either way
	for idx, score := range scores {
		if idx != bestIdx && score == scores[bestIdx] {
			resolved.Ambiguous = true
			break
		}
	}

	pick(bestIdx)
	return resolved, nil
}
