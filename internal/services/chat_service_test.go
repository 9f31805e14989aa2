package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ktgenius/learning-assistant/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockRecommender is a mock implementation of Recommender
type mockRecommender struct {
	response   string
	calledWith *struct {
		userID    string
		difficult bool
	}
}

func (m *mockRecommender) Recommend(ctx context.Context, userID string, difficult bool) string {
	m.calledWith = &struct {
		userID    string
		difficult bool
	}{userID, difficult}
	return m.response
}

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	user *models.User
	err  error
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

// mockCompleter is a mock implementation of Completer
type mockCompleter struct {
	reply    string
	err      error
	messages []models.ChatMessage
}

func (m *mockCompleter) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	m.messages = messages
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func TestNewChatService(t *testing.T) {
	recommender := &mockRecommender{}
	userRepo := &mockUserRepository{}
	completer := &mockCompleter{}
	logger := zap.NewNop()

	svc := NewChatService(recommender, userRepo, completer, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, recommender, svc.recommender)
	assert.Equal(t, userRepo, svc.userRepo)
	assert.Equal(t, completer, svc.completer)
	assert.Equal(t, logger, svc.logger)
}

func TestChatService_HandleTurn_RecommendationRequest(t *testing.T) {
	recommender := &mockRecommender{response: "추천 목록"}
	completer := &mockCompleter{}
	svc := NewChatService(recommender, &mockUserRepository{}, completer, zap.NewNop())

	reply := svc.HandleTurn(context.Background(), "10001", "다음 학습 추천해주세요", nil)

	assert.Equal(t, "추천 목록", reply)
	require.NotNil(t, recommender.calledWith)
	assert.Equal(t, "10001", recommender.calledWith.userID)
	assert.False(t, recommender.calledWith.difficult)
	assert.Nil(t, completer.messages, "completion must not be called for recommendation requests")
}

func TestChatService_HandleTurn_DifficultySignal(t *testing.T) {
	recommender := &mockRecommender{response: "쉬운 과정 목록"}
	svc := NewChatService(recommender, &mockUserRepository{}, &mockCompleter{}, zap.NewNop())

	reply := svc.HandleTurn(context.Background(), "10001", "현재 과정이 어려워요. 쉬운 과정 추천해주세요", nil)

	assert.Equal(t, "쉬운 과정 목록", reply)
	require.NotNil(t, recommender.calledWith)
	assert.True(t, recommender.calledWith.difficult)
}

func TestChatService_HandleTurn_RecommendationWithoutUserID(t *testing.T) {
	recommender := &mockRecommender{}
	svc := NewChatService(recommender, &mockUserRepository{}, &mockCompleter{}, zap.NewNop())

	reply := svc.HandleTurn(context.Background(), "", "학습 추천해주세요", nil)

	assert.Equal(t, msgUserIDRequired, reply)
	assert.Nil(t, recommender.calledWith)
}

func TestChatService_HandleTurn_GeneralQuestion(t *testing.T) {
	completer := &mockCompleter{reply: "TCP는 전송 계층 프로토콜입니다."}
	svc := NewChatService(&mockRecommender{}, &mockUserRepository{}, completer, zap.NewNop())

	history := []models.ChatMessage{
		{Role: models.RoleUser, Content: "안녕하세요"},
		{Role: models.RoleAssistant, Content: "안녕하세요! 무엇을 도와드릴까요?"},
	}
	reply := svc.HandleTurn(context.Background(), "10001", "TCP가 뭐야?", history)

	assert.Equal(t, "TCP는 전송 계층 프로토콜입니다.", reply)

	// system prompt, 2 history turns, user message, web-aware framing
	require.Len(t, completer.messages, 5)
	assert.Equal(t, models.RoleSystem, completer.messages[0].Role)
	assert.Equal(t, history[0], completer.messages[1])
	assert.Equal(t, history[1], completer.messages[2])
	assert.Equal(t, models.ChatMessage{Role: models.RoleUser, Content: "TCP가 뭐야?"}, completer.messages[3])
	assert.Equal(t, models.RoleSystem, completer.messages[4].Role)
	assert.Contains(t, completer.messages[4].Content, "TCP가 뭐야?")
	assert.Contains(t, completer.messages[4].Content, "최신 정보를 포함하여")
}

func TestChatService_HandleTurn_CompletionFailure(t *testing.T) {
	completer := &mockCompleter{err: errors.New("deployment unavailable")}
	svc := NewChatService(&mockRecommender{}, &mockUserRepository{}, completer, zap.NewNop())

	reply := svc.HandleTurn(context.Background(), "", "오늘 날씨 어때?", nil)

	assert.Equal(t, msgCompletionError, reply)
}

func TestChatService_Greet(t *testing.T) {
	tests := []struct {
		name     string
		userRepo *mockUserRepository
		expected string
	}{
		{
			name:     "known user",
			userRepo: &mockUserRepository{user: &models.User{ID: "10001", Name: "김민수"}},
			expected: "김민수님 안녕하세요!",
		},
		{
			name:     "unknown user",
			userRepo: &mockUserRepository{err: models.ErrUserNotFound},
			expected: msgUserNotFound,
		},
		{
			name:     "store failure",
			userRepo: &mockUserRepository{err: errors.New("connection refused")},
			expected: msgStoreError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewChatService(&mockRecommender{}, tt.userRepo, &mockCompleter{}, zap.NewNop())

			assert.Equal(t, tt.expected, svc.Greet(context.Background(), "10001"))
		})
	}
}
