package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRecommendationRequest(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected bool
	}{
		{name: "direct request", message: "다음 학습 추천해주세요", expected: true},
		{name: "course request", message: "어떤 과정을 들어야 할까요?", expected: true},
		{name: "curriculum request", message: "커리큘럼 좀 알려줘", expected: true},
		{name: "difficulty doubles as recommendation", message: "지금 과정이 너무 어려워", expected: true},
		{name: "general question", message: "쿠버네티스가 뭐야?", expected: false},
		{name: "empty message", message: "", expected: false},
		{name: "case-insensitive ascii", message: "AI 커리큘럼 추천해줘", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRecommendationRequest(tt.message))
		})
	}
}

func TestIsDifficultySignal(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected bool
	}{
		{name: "too hard", message: "이 과정 너무 어렵다", expected: true},
		{name: "struggling", message: "따라가기 힘들어요", expected: true},
		{name: "wants easier", message: "쉬운 과정 추천해주세요", expected: true},
		{name: "wants basics", message: "기초부터 다시 배우고 싶어요", expected: true},
		{name: "plain request", message: "다음 학습 추천해주세요", expected: false},
		{name: "empty message", message: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDifficultySignal(tt.message))
		})
	}
}

func TestIntent_BothSignalsAtOnce(t *testing.T) {
	// A message can be a recommendation request and a difficulty signal at
	// the same time
	message := "현재 과정이 어려워서 쉬운 과정 추천해주세요"
	assert.True(t, IsRecommendationRequest(message))
	assert.True(t, IsDifficultySignal(message))
}
