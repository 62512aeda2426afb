package valueobjects

// MarkOutcome is the per-announcement result of a mark-read request.
type MarkOutcome string

const (
	MarkOutcomeMarked      MarkOutcome = "marked"
	MarkOutcomeAlreadyRead MarkOutcome = "already_read"
	MarkOutcomeNotFound    MarkOutcome = "not_found"
)

func (o MarkOutcome) String() string {
	return string(o)
}

// Succeeded reports whether the announcement is read after the request.
func (o MarkOutcome) Succeeded() bool {
	return o == MarkOutcomeMarked || o == MarkOutcomeAlreadyRead
}
