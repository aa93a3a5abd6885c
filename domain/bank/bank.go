package bank

import (
	"math/rand"

	"hirescope/domain/interview"
)

// RoleQuestions groups a role's items by category.
type RoleQuestions struct {
	Technical   []interview.QuestionItem
	Behavioral  []interview.QuestionItem
	Situational []interview.QuestionItem
}

// Bank is an immutable role-keyed question catalog. It is injected
// into each orchestrator instance so tests can run against custom
// banks instead of process-wide state.
type Bank struct {
	roles map[string]RoleQuestions
}

// New builds a bank from role question sets. Category and default
// difficulty are normalized so lookups never see zero values.
func New(roles map[string]RoleQuestions) *Bank {
	normalized := make(map[string]RoleQuestions, len(roles))
	for role, rq := range roles {
		normalized[role] = RoleQuestions{
			Technical:   normalize(rq.Technical, interview.CategoryTechnical),
			Behavioral:  normalize(rq.Behavioral, interview.CategoryBehavioral),
			Situational: normalize(rq.Situational, interview.CategorySituational),
		}
	}
	return &Bank{roles: normalized}
}

func normalize(items []interview.QuestionItem, cat interview.Category) []interview.QuestionItem {
	out := make([]interview.QuestionItem, len(items))
	copy(out, items)
	for i := range out {
		out[i].Category = cat
		if out[i].Difficulty == "" {
			out[i].Difficulty = interview.DifficultyIntermediate
		}
	}
	return out
}

// Roles lists every role the bank knows about.
func (b *Bank) Roles() []string {
	roles := make([]string, 0, len(b.roles))
	for role := range b.roles {
		roles = append(roles, role)
	}
	return roles
}

// Has reports whether the bank holds at least one question for role.
func (b *Bank) Has(role string) bool {
	return len(b.Items(role)) > 0
}

// Items returns the role's questions flattened across categories in
// the order technical, behavioral, situational. The returned slice is
// a copy; callers may mutate it freely.
func (b *Bank) Items(role string) []interview.QuestionItem {
	rq, ok := b.roles[role]
	if !ok {
		return nil
	}
	items := make([]interview.QuestionItem, 0, len(rq.Technical)+len(rq.Behavioral)+len(rq.Situational))
	items = append(items, rq.Technical...)
	items = append(items, rq.Behavioral...)
	items = append(items, rq.Situational...)
	return items
}

// Queue builds a shuffled question queue for role using rng. The
// shuffle is a uniform permutation; pass a seeded rng for
// reproducible orderings in tests.
func (b *Bank) Queue(role string, rng *rand.Rand) []interview.QuestionItem {
	items := b.Items(role)
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return items
}

// IdealFor returns the ideal-answer keywords recorded for a question
// text within role, or "" when the text is not a bank question (a
// generated follow-up, for instance).
func (b *Bank) IdealFor(role, questionText string) string {
	for _, item := range b.Items(role) {
		if item.Text == questionText {
			return item.IdealAnswer
		}
	}
	return ""
}
