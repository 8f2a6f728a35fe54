package judge

// Report is the aggregated outcome of one validation run.
type Report struct {
	Verdicts []Verdict `json:"verdicts"`
	Passed   int       `json:"passed"`
	Failed   int       `json:"failed"`
}

// NewReport builds a report from the collected verdicts.
func NewReport(verdicts []Verdict) *Report {
	r := &Report{Verdicts: verdicts}
	for _, v := range verdicts {
		if v.Valid {
			r.Passed++
		} else {
			r.Failed++
		}
	}
	return r
}

// OK reports whether every verdict is valid.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Failures returns the invalid verdicts, in report order.
func (r *Report) Failures() []Verdict {
	var out []Verdict
	for _, v := range r.Verdicts {
		if !v.Valid {
			out = append(out, v)
		}
	}
	return out
}
