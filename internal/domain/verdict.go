package domain

type Classification string

const (
	ClassificationHealthy       Classification = "healthy"
	ClassificationSuspect       Classification = "suspect"
	ClassificationFaulty        Classification = "faulty"
	ClassificationIndeterminate Classification = "indeterminate"
)

// Verdict is the outcome of one remediation run against one device subject.
type Verdict struct {
	RunID          string
	Device         string
	Subject        string
	Routine        string
	Classification Classification
	Diagnosis      string
	Commands       []string
	Err            error `json:"-"`
}

// Result maps a verdict onto the event result it should record. The second
// return value is false when the event must be left untouched.
func (v Verdict) Result() (Result, bool) {
	switch v.Classification {
	case ClassificationHealthy, ClassificationSuspect, ClassificationFaulty:
		return ResultRemediationCompleted, true
	}

	if IsTransportFailure(v.Err) {
		return ResultRemediationFailed, true
	}

	return ResultUnset, false
}

func (v Verdict) Concluded() bool {
	return v.Classification != ClassificationIndeterminate
}
