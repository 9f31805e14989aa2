package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ktgenius/learning-assistant/internal/models"
	"go.uber.org/zap"
)

const (
	msgUserIDRequired  = "학습 추천을 받으려면 사번을 입력해주세요."
	msgUserNotFound    = "사용자 정보를 찾을 수 없습니다. 사번을 확인해주세요."
	msgCompletionError = "OpenAI 응답 생성 중 오류가 발생했습니다. 다시 시도해주세요."
)

// systemPrompt frames every completion call that is not a recommendation request
const systemPrompt = `당신은 KT Genius의 학습 도우미입니다.
학습자가 학습 추천을 요청하면 개인화된 추천을 제공하고,
다른 질문에는 웹에서 검색한 최신 정보로 답변해주세요.
다만 학습과 무관한 질문에는 "죄송합니다. 이해하지 못했습니다."라고 답변해주세요.
친근하고 도움이 되는 톤으로 대화해주세요.`

// Recommender is the interface that wraps the course recommendation entry point
type Recommender interface {
	// Recommend selects the next course(s) for a learner
	//
	// "ctx" is the context for the request.
	// "userID" is the employee ID of the learner.
	// "difficult" signals that the learner finds their current material difficult.
	//
	// Returns a user-facing message; failures degrade to explanatory text.
	Recommend(ctx context.Context, userID string, difficult bool) string
}

// UserRepository defines methods for user data access
type UserRepository interface {
	// GetByID retrieves a user by employee ID
	//
	// "ctx" is the context for the request.
	// "userID" is the employee ID of the user.
	//
	// Returns the user, models.ErrUserNotFound when no record matches,
	// or another error on store failure.
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

// Completer is the interface that wraps the language-model completion call
type Completer interface {
	// Complete generates a reply for an ordered transcript
	//
	// "ctx" is the context for the request.
	// "messages" is the ordered transcript including system framing.
	//
	// Returns the generated text and an error if any.
	Complete(ctx context.Context, messages []models.ChatMessage) (string, error)
}

type chatService struct {
	recommender Recommender
	userRepo    UserRepository
	completer   Completer
	logger      *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(recommender Recommender, userRepo UserRepository, completer Completer, logger *zap.Logger) *chatService {
	return &chatService{
		recommender: recommender,
		userRepo:    userRepo,
		completer:   completer,
		logger:      logger,
	}
}

// HandleTurn processes one chat turn: recommendation requests go to the
// recommender, everything else to the language model with web-aware framing.
// The transcript is caller-owned state passed in per turn.
func (s *chatService) HandleTurn(ctx context.Context, userID, message string, history []models.ChatMessage) string {
	if IsRecommendationRequest(message) {
		if userID == "" {
			return msgUserIDRequired
		}
		return s.recommender.Recommend(ctx, userID, IsDifficultySignal(message))
	}

	messages := make([]models.ChatMessage, 0, len(history)+3)
	messages = append(messages, models.ChatMessage{Role: models.RoleSystem, Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, models.ChatMessage{Role: models.RoleUser, Content: message})
	messages = append(messages, models.ChatMessage{
		Role:    models.RoleSystem,
		Content: fmt.Sprintf("사용자의 질문 '%s'에 대해 최신 정보를 포함하여 답변해주세요. 학습과 관련이 없는 질문인 경우 죄송합니다. 이해하지 못했습니다. 라는 답변을 해주세요.", message),
	})

	reply, err := s.completer.Complete(ctx, messages)
	if err != nil {
		s.logger.Error("completion call failed", zap.Error(err))
		return msgCompletionError
	}
	return reply
}

// Greet looks up a learner and returns a greeting for the sidebar
func (s *chatService) Greet(ctx context.Context, userID string) string {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, models.ErrUserNotFound) {
		return msgUserNotFound
	}
	if err != nil {
		s.logger.Error("failed to load user", zap.String("user_id", userID), zap.Error(err))
		return msgStoreError
	}
	return fmt.Sprintf("%s님 안녕하세요!", user.Name)
}
