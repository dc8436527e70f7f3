package service

import "adaptive_learning_backend/internal/model"

// QuizTypeEntry marks a quiz whose question set is empty or mixes difficulty
// levels. Such quizzes place a student's initial level; quizzes whose
// questions all share one level advance or demote an already-placed student.
const QuizTypeEntry = 0

// ClassifyQuiz returns the shared difficulty level of the question set, or
// QuizTypeEntry when the levels are not all the same.
func ClassifyQuiz(questions []model.Question) int {
	levels := make(map[int]struct{}, model.MaxDifficultyLevel)
	for _, q := range questions {
		levels[q.DifficultyLevel] = struct{}{}
	}
	if len(levels) != 1 {
		return QuizTypeEntry
	}
	for level := range levels {
		return level
	}
	return QuizTypeEntry
}

// DetermineEntryLevel places an unplaced student from their entry-quiz score.
func DetermineEntryLevel(scorePct float64) int {
	switch {
	case scorePct >= 80:
		return 3
	case scorePct >= 60:
		return 2
	default:
		return 1
	}
}

// DetermineNextLevel moves a placed student up, down, or nowhere based on
// their score on a leveled quiz. current is the quiz's fixed difficulty tier.
func DetermineNextLevel(current int, scorePct float64) int {
	switch {
	case scorePct >= 80:
		if current+1 > model.MaxDifficultyLevel {
			return model.MaxDifficultyLevel
		}
		return current + 1
	case scorePct < 50:
		if current-1 < model.MinDifficultyLevel {
			return model.MinDifficultyLevel
		}
		return current - 1
	default:
		return current
	}
}

// ScorePercentage is 100 * correct / total. total must be positive; empty
// quizzes are rejected before scoring.
func ScorePercentage(correct, total int) float64 {
	return 100 * float64(correct) / float64(total)
}
