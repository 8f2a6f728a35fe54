package marker

// FilterRelevant keeps annotations whose scope intersects the changed-file
// set. Annotations with no declared scope have an unknown blast radius and
// are always kept.
func FilterRelevant(anns []Annotation, changed []string) []Annotation {
	set := make(map[string]struct{}, len(changed))
	for _, f := range changed {
		set[f] = struct{}{}
	}

	var out []Annotation
	for _, a := range anns {
		if len(a.Scope) == 0 {
			out = append(out, a)
			continue
		}
		for _, s := range a.Scope {
			if _, ok := set[s]; ok {
				out = append(out, a)
				break
			}
		}
	}
	return out
}
