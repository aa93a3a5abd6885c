package bank

import "hirescope/domain/interview"

// Default returns the built-in catalog covering the five supported
// roles. Ideal answers are keyword lists, not model answers; they
// feed topic steering and embedding comparison.
func Default() *Bank {
	return New(map[string]RoleQuestions{
		"Software Engineer": {
			Technical: []interview.QuestionItem{
				{Text: "Explain the difference between process and thread.", Difficulty: interview.DifficultyBeginner, IdealAnswer: "process isolation, memory, context switch cost, concurrency vs parallelism"},
				{Text: "Design a scalable URL shortener (high level).", Difficulty: interview.DifficultyIntermediate, IdealAnswer: "hashing, collisions, datastore, caching, short id generation, scaling, analytics"},
				{Text: "How would you optimize a slow SQL query?", Difficulty: interview.DifficultyExpert, IdealAnswer: "indexes, explain plan, denormalization, query rewrite, caching, partitioning"},
			},
			Behavioral: []interview.QuestionItem{
				{Text: "Tell me about a time you had to debug a hard production issue.", Difficulty: interview.DifficultyIntermediate, IdealAnswer: "monitoring, rollback, RCA, communication"},
				{Text: "Describe a situation where you disagreed with a teammate.", Difficulty: interview.DifficultyBeginner, IdealAnswer: "communication, compromise, data-driven"},
			},
			Situational: []interview.QuestionItem{
				{Text: "How would you approach estimating time for a complex feature?", Difficulty: interview.DifficultyIntermediate, IdealAnswer: "breakdown, assumptions, buffers, dependencies"},
			},
		},
		"Data Scientist": {
			Technical: []interview.QuestionItem{
				{Text: "Explain bias-variance tradeoff.", Difficulty: interview.DifficultyBeginner, IdealAnswer: "underfitting vs overfitting, validation, regularization"},
				{Text: "How do you validate a predictive model for production?", Difficulty: interview.DifficultyExpert, IdealAnswer: "metrics, monitoring, drift detection, A/B tests"},
			},
			Behavioral: []interview.QuestionItem{
				{Text: "Describe a time you turned messy data into insights.", Difficulty: interview.DifficultyIntermediate, IdealAnswer: "cleaning, feature engineering, impact"},
			},
			Situational: []interview.QuestionItem{
				{Text: "How would you prioritize features for a machine learning pipeline?", Difficulty: interview.DifficultyIntermediate, IdealAnswer: "business impact, data availability, effort"},
			},
		},
		"DevOps Engineer": {
			Technical: []interview.QuestionItem{
				{Text: "Explain how you would design CI/CD for a microservices app.", Difficulty: interview.DifficultyIntermediate, IdealAnswer: "pipelines, canary, blue-green, infra-as-code, observability"},
			},
			Behavioral: []interview.QuestionItem{
				{Text: "Tell me about a time you reduced deployment downtime.", Difficulty: interview.DifficultyIntermediate, IdealAnswer: "automation, rollback, monitoring"},
			},
			Situational: []interview.QuestionItem{
				{Text: "How would you respond to repeated flaky deployments?", Difficulty: interview.DifficultyExpert, IdealAnswer: "root cause, stabilization, test flakiness"},
			},
		},
		"Product Manager": {
			Technical: []interview.QuestionItem{
				{Text: "How do you perform prioritization between competing features?", Difficulty: interview.DifficultyIntermediate, IdealAnswer: "RICE, impact vs effort, stakeholder alignment"},
			},
			Behavioral: []interview.QuestionItem{
				{Text: "Describe a time you handled stakeholder conflict.", Difficulty: interview.DifficultyBeginner, IdealAnswer: "listening, data, compromise"},
			},
			Situational: []interview.QuestionItem{
				{Text: "How would you scope an MVP for a new product?", Difficulty: interview.DifficultyIntermediate, IdealAnswer: "core value, user journeys, metrics"},
			},
		},
		"Frontend Engineer": {
			Technical: []interview.QuestionItem{
				{Text: "Explain how the virtual DOM works.", Difficulty: interview.DifficultyBeginner, IdealAnswer: "diffing, reconciliation, render optimization"},
				{Text: "How do you approach performance optimization in web apps?", Difficulty: interview.DifficultyExpert, IdealAnswer: "lazy loading, critical rendering path, caching, bundle size"},
			},
			Behavioral: []interview.QuestionItem{
				{Text: "Tell me about a time you improved frontend accessibility.", Difficulty: interview.DifficultyIntermediate, IdealAnswer: "a11y standards, ARIA, testing"},
			},
			Situational: []interview.QuestionItem{
				{Text: "How would you migrate a legacy UI to a modern framework?", Difficulty: interview.DifficultyIntermediate, IdealAnswer: "incremental migration, adapters, tests"},
			},
		},
	})
}
