package services

import "strings"

// recommendationKeywords flags a message as a course recommendation request.
// Classification is plain substring membership over this closed set.
var recommendationKeywords = []string{
	"학습 추천", "과정 추천", "다음 학습", "추천해줘", "추천해주세요",
	"무엇을 공부", "다음에 뭘", "어떤 과정", "학습 계획", "커리큘럼",
	"어려워", "쉬운 과정", "기초부터", "다시 배우고",
}

// difficultyKeywords flags a message as a difficulty signal
var difficultyKeywords = []string{
	"어려워", "어렵다", "힘들어", "이해가 안", "쉬운", "기초", "다시",
}

// IsRecommendationRequest reports whether the message asks for a learning
// recommendation. Case-insensitive substring membership; an empty or
// keyword-free message is not a recommendation request.
func IsRecommendationRequest(message string) bool {
	return containsAny(message, recommendationKeywords)
}

// IsDifficultySignal reports whether the message signals that the learner
// finds their current material difficult
func IsDifficultySignal(message string) bool {
	return containsAny(message, difficultyKeywords)
}

func containsAny(message string, keywords []string) bool {
	lowered := strings.ToLower(message)
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
