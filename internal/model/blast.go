package model

// BlastRequest describes one sequence-similarity search.
type BlastRequest struct {
	Program      string `json:"program"`
	Database     string `json:"database"`
	SequenceType string `json:"sequence_type"`
	Sequence     string `json:"sequence"`
	Email        string `json:"email"`
	Title        string `json:"title,omitempty"`
	Expectation  string `json:"expectation,omitempty"`
	Alignments   int    `json:"alignments,omitempty"`
	Scores       int    `json:"scores,omitempty"`
	Matrix       string `json:"matrix,omitempty"`
}

// BlastJobStatus is the state of a remote BLAST job.
type BlastJobStatus string

const (
	BlastQueued   BlastJobStatus = "QUEUED"
	BlastRunning  BlastJobStatus = "RUNNING"
	BlastFinished BlastJobStatus = "FINISHED"
	BlastError    BlastJobStatus = "ERROR"
	BlastFailure  BlastJobStatus = "FAILURE"
	BlastNotFound BlastJobStatus = "NOT_FOUND"
)

// Done reports whether the job reached a terminal state.
func (s BlastJobStatus) Done() bool {
	switch s {
	case BlastFinished, BlastError, BlastFailure, BlastNotFound:
		return true
	}
	return false
}

// BlastHit is one aligned database sequence.
type BlastHit struct {
	Number      int     `json:"number"`
	Database    string  `json:"database,omitempty"`
	ID          string  `json:"id"`
	Accession   string  `json:"accession"`
	Description string  `json:"description,omitempty"`
	Length      int     `json:"length,omitempty"`
	Organism    string  `json:"organism,omitempty"`
	TaxID       int     `json:"tax_id,omitempty"`
	Score       float64 `json:"score,omitempty"`
	Bits        float64 `json:"bits"`
	Expectation float64 `json:"expectation"`
	Identity    float64 `json:"identity"`
	Positives   float64 `json:"positives,omitempty"`
	Gaps        int     `json:"gaps,omitempty"`
	GapOpens    int     `json:"gap_opens,omitempty"`
	AlignLength int     `json:"align_length"`
	QueryStart  int     `json:"query_start"`
	QueryEnd    int     `json:"query_end"`
	MatchStart  int     `json:"match_start"`
	MatchEnd    int     `json:"match_end"`
	QuerySeq    string  `json:"query_seq,omitempty"`
	MatchSeq    string  `json:"match_seq,omitempty"`
}

// BlastFilter selects hits. Zero values disable a criterion.
type BlastFilter struct {
	MinIdentity    float64 `json:"min_identity"`
	MaxExpectation float64 `json:"max_expectation"`
	MinAlignLength int     `json:"min_align_length"`
	TaxIDs         []int   `json:"tax_ids,omitempty"`
	Organism       string  `json:"organism,omitempty"`
}
