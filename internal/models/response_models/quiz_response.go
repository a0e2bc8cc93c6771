package response_models

import "traveldna/internal/quiz"

type QuizStepsResponse struct {
	Locale quiz.Locale `json:"locale"`
	Steps  []quiz.Step `json:"steps"`
}

type QuizSessionResponse struct {
	SessionID   string         `json:"session_id"`
	Locale      quiz.Locale    `json:"locale"`
	CurrentStep int            `json:"current_step"`
	TotalSteps  int            `json:"total_steps"`
	Step        quiz.Step      `json:"step"`
	Selected    []string       `json:"selected"`
	Answers     quiz.TravelDNA `json:"answers"`
	CanAdvance  bool           `json:"can_advance"`
	IsLastStep  bool           `json:"is_last_step"`
	Submitted   bool           `json:"submitted"`
}
