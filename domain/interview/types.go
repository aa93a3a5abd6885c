package interview

// Category classifies a question item within a role's bank.
type Category string

const (
	CategoryTechnical   Category = "technical"
	CategoryBehavioral  Category = "behavioral"
	CategorySituational Category = "situational"
)

// Categories returns the bank categories in queue-build order.
func Categories() []Category {
	return []Category{CategoryTechnical, CategoryBehavioral, CategorySituational}
}

// Difficulty is the tier a question is pitched at.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyExpert       Difficulty = "Expert"
)

// QuestionItem is a single immutable bank entry. IdealAnswer holds
// topic keywords used for embedding comparison and topic steering;
// it may be empty.
type QuestionItem struct {
	Text        string     `json:"text"`
	Category    Category   `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	IdealAnswer string     `json:"ideal_answer,omitempty"`
}

// Speaker identifies who produced a transcript turn.
type Speaker string

const (
	SpeakerSystem    Speaker = "system"
	SpeakerCandidate Speaker = "candidate"
)

// TranscriptTurn is one entry of the append-only conversation log.
// Turns usually alternate but are not forced to: a follow-up can put
// two system turns back to back when an answer is skipped.
type TranscriptTurn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// Rubric dimension names. Every breakdown carries exactly these four
// keys, each bounded 0-25.
const (
	DimRelevance      = "relevance"
	DimTechnicalDepth = "technical_depth"
	DimClarity        = "clarity"
	DimStructure      = "structure"
)

// Dimensions returns the rubric dimensions in canonical order.
func Dimensions() []string {
	return []string{DimRelevance, DimTechnicalDepth, DimClarity, DimStructure}
}

// Recommendation is the ternary hiring signal.
type Recommendation string

const (
	RecommendHire     Recommendation = "Hire"
	RecommendConsider Recommendation = "Consider"
	RecommendReject   Recommendation = "Reject"
)

// Evaluation is the scored judgment of one answer. Fallback marks
// evaluations produced by the local heuristic instead of the oracle,
// for diagnosis; the candidate-facing flow treats both the same.
type Evaluation struct {
	Score          float64            `json:"score"`
	Breakdown      map[string]float64 `json:"breakdown"`
	Strengths      []string           `json:"strengths"`
	Weaknesses     []string           `json:"weaknesses"`
	Recommendation Recommendation     `json:"recommendation"`
	Fallback       bool               `json:"fallback,omitempty"`
}

// Metrics is the live per-session adaptive state, recomputed after
// every answer. Confidence is always within [0,100].
type Metrics struct {
	Confidence   float64  `json:"confidence"`
	MissedTopics []string `json:"missed_topics,omitempty"`
}

// ReportItem pairs one question/answer with its evaluation.
type ReportItem struct {
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Evaluation Evaluation `json:"evaluation"`
}

// Report is the final aggregated outcome of a session. Built once at
// session end and never mutated afterwards.
type Report struct {
	Role         string             `json:"role"`
	TotalScore   float64            `json:"total_score"`
	BreakdownAvg map[string]float64 `json:"breakdown_avg"`
	Decision     Recommendation     `json:"decision"`
	Items        []ReportItem       `json:"items"`
}

// Decision thresholds shared by live score coloring and the final
// report. Both sides must use Decide so they can never disagree.
const (
	HireThreshold     = 75.0
	ConsiderThreshold = 50.0
)

// Decide maps a 0-100 score onto the ternary hiring decision.
func Decide(score float64) Recommendation {
	switch {
	case score >= HireThreshold:
		return RecommendHire
	case score >= ConsiderThreshold:
		return RecommendConsider
	default:
		return RecommendReject
	}
}
