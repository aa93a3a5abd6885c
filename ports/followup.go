package ports

import "context"

// FollowupPort generates a question that deepens the preceding answer
// instead of advancing to the next bank item. An empty result means
// no follow-up; errors are treated the same way by the engine.
type FollowupPort interface {
	Followup(ctx context.Context, question, answer, role string) (string, error)
}
