package service

import (
	"testing"

	"adaptive_learning_backend/internal/model"
)

func questionsWithLevels(levels ...int) []model.Question {
	qs := make([]model.Question, len(levels))
	for i, l := range levels {
		qs[i].DifficultyLevel = l
	}
	return qs
}

func TestClassifyQuiz(t *testing.T) {
	tests := []struct {
		name   string
		levels []int
		want   int
	}{
		{"all level 1", []int{1, 1, 1}, 1},
		{"all level 2", []int{2}, 2},
		{"all level 3", []int{3, 3}, 3},
		{"mixed levels", []int{1, 2}, QuizTypeEntry},
		{"all three levels", []int{1, 2, 3}, QuizTypeEntry},
		{"no questions", nil, QuizTypeEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyQuiz(questionsWithLevels(tt.levels...)); got != tt.want {
				t.Errorf("ClassifyQuiz() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDetermineEntryLevel(t *testing.T) {
	tests := []struct {
		scorePct float64
		want     int
	}{
		{100, 3},
		{80, 3},
		{79, 2},
		{60, 2},
		{59, 1},
		{0, 1},
	}
	for _, tt := range tests {
		if got := DetermineEntryLevel(tt.scorePct); got != tt.want {
			t.Errorf("DetermineEntryLevel(%v) = %d, want %d", tt.scorePct, got, tt.want)
		}
	}
}

func TestDetermineNextLevel(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		scorePct float64
		want     int
	}{
		{"promote", 2, 80, 3},
		{"promote capped", 3, 80, 3},
		{"promote from bottom", 1, 95, 2},
		{"demote", 2, 49, 1},
		{"demote floored", 1, 49, 1},
		{"demote from top", 3, 10, 2},
		{"hold mid score", 2, 65, 2},
		{"hold at lower bound of band", 2, 50, 2},
		{"hold just below promote", 2, 79.9, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineNextLevel(tt.current, tt.scorePct); got != tt.want {
				t.Errorf("DetermineNextLevel(%d, %v) = %d, want %d", tt.current, tt.scorePct, got, tt.want)
			}
		})
	}
}

func TestScorePercentage(t *testing.T) {
	tests := []struct {
		correct, total int
		want           float64
	}{
		{0, 4, 0},
		{1, 4, 25},
		{4, 4, 100},
		{2, 3, 100 * 2.0 / 3.0},
	}
	for _, tt := range tests {
		if got := ScorePercentage(tt.correct, tt.total); got != tt.want {
			t.Errorf("ScorePercentage(%d, %d) = %v, want %v", tt.correct, tt.total, got, tt.want)
		}
	}
}
