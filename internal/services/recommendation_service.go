package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ktgenius/learning-assistant/internal/models"
	"go.uber.org/zap"
)

// User-facing messages. Store failures always degrade to msgStoreError
// without surfacing driver errors.
const (
	msgStoreError     = "오류가 발생하였습니다. 관리자에게 문의해주세요."
	msgNoHistory      = "학습 이력을 찾을 수 없습니다. 먼저 기초 과정부터 시작해보세요."
	msgNothingToOffer = "추천할 수 있는 과정이 없습니다."
)

// LearningHistoryRepository defines methods for learner history data access
type LearningHistoryRepository interface {
	// GetUserLearningHistory retrieves the full course history for a learner
	//
	// "ctx" is the context for the request.
	// "userID" is the employee ID of the learner.
	//
	// Returns the history ordered by status descending then level ascending,
	// and an error if any.
	GetUserLearningHistory(ctx context.Context, userID string) ([]models.ProgressRecord, error)
}

// CourseRepository defines methods for course catalog data access
type CourseRepository interface {
	// GetRecommended retrieves up to 3 courses in a category at a level
	//
	// "ctx" is the context for the request.
	// "category" is the category code to search.
	// "level" is the difficulty level to search.
	// "excludeIDs" is an optional set of course IDs to withhold.
	//
	// Returns the matching courses and an error if any.
	GetRecommended(ctx context.Context, category string, level models.Level, excludeIDs []string) ([]models.Course, error)
	// GetOtherCategories retrieves up to 3 category codes other than the given one
	//
	// "ctx" is the context for the request.
	// "excludeCategory" is the category code to leave out.
	//
	// Returns the category codes and an error if any.
	GetOtherCategories(ctx context.Context, excludeCategory string) ([]string, error)
}

type recommendationService struct {
	historyRepo LearningHistoryRepository
	courseRepo  CourseRepository
	logger      *zap.Logger
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(historyRepo LearningHistoryRepository, courseRepo CourseRepository, logger *zap.Logger) *recommendationService {
	return &recommendationService{
		historyRepo: historyRepo,
		courseRepo:  courseRepo,
		logger:      logger,
	}
}

// analyzeLearningState derives the learner's current state from the full
// history. An in-progress course takes precedence over any completed-course
// analysis; with only completed courses, the current category comes from the
// first completed record in query order while the current level is that
// category's maximum completed level.
func analyzeLearningState(history []models.ProgressRecord) models.LearnerState {
	if len(history) == 0 {
		return models.LearnerState{}
	}

	var completed []models.ProgressRecord
	var inProgress []models.ProgressRecord
	for _, record := range history {
		switch record.Status {
		case models.StatusCompleted:
			completed = append(completed, record)
		case models.StatusInProgress:
			inProgress = append(inProgress, record)
		}
	}

	if len(inProgress) > 0 {
		current := inProgress[0]
		excluded := make([]string, 0, len(history))
		for _, record := range history {
			excluded = append(excluded, record.ID)
		}
		return models.LearnerState{
			CurrentLevel:      current.Level,
			CurrentCategory:   current.Category,
			ExcludedCourseIDs: excluded,
			InProgress:        &current,
		}
	}

	if len(completed) == 0 {
		return models.LearnerState{
			CurrentLevel:    models.LevelLow,
			CurrentCategory: history[0].Category,
		}
	}

	// Per-category maximum level among completed courses
	categoryLevels := make(map[string]models.Level)
	for _, record := range completed {
		if best, ok := categoryLevels[record.Category]; !ok || record.Level.Compare(best) > 0 {
			categoryLevels[record.Category] = record.Level
		}
	}

	recentCategory := completed[0].Category
	recentLevel, ok := categoryLevels[recentCategory]
	if !ok {
		recentLevel = models.LevelLow
	}

	excluded := make([]string, 0, len(completed))
	for _, record := range completed {
		excluded = append(excluded, record.ID)
	}

	return models.LearnerState{
		CurrentLevel:      recentLevel,
		CurrentCategory:   recentCategory,
		ExcludedCourseIDs: excluded,
	}
}

// Recommend selects the next course(s) for a learner and renders them as a
// user-facing message. It never returns an error: store failures and empty
// results degrade to explanatory text.
func (s *recommendationService) Recommend(ctx context.Context, userID string, difficult bool) string {
	history, err := s.historyRepo.GetUserLearningHistory(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load learning history", zap.String("user_id", userID), zap.Error(err))
		return msgStoreError
	}
	if len(history) == 0 {
		return msgNoHistory
	}

	state := analyzeLearningState(history)

	if state.InProgress != nil {
		return s.recommendDuringCourse(ctx, state, difficult)
	}
	return s.recommendAfterCompletion(ctx, state, difficult)
}

// recommendDuringCourse handles learners with an active course: an easier
// alternative on a difficulty signal, otherwise same-level peers or a
// parallel track in another category.
func (s *recommendationService) recommendDuringCourse(ctx context.Context, state models.LearnerState, difficult bool) string {
	current := state.InProgress

	if difficult {
		easierLevel := current.Level.NextLevel(true)
		courses, err := s.courseRepo.GetRecommended(ctx, state.CurrentCategory, easierLevel, state.ExcludedCourseIDs)
		if err != nil {
			s.logger.Error("failed to query easier courses", zap.Error(err))
			return msgStoreError
		}
		if len(courses) > 0 {
			intro := fmt.Sprintf("현재 학습중인 '%s'이 어려우시다면, 더 쉬운 과정부터 시작해보세요:", current.Title)
			return formatRecommendation(courses, intro)
		}
	} else {
		// Siblings at the same level may be re-offered, so no exclusion here
		courses, err := s.courseRepo.GetRecommended(ctx, state.CurrentCategory, current.Level, nil)
		if err != nil {
			s.logger.Error("failed to query same-level courses", zap.Error(err))
			return msgStoreError
		}
		if len(courses) > 0 {
			intro := fmt.Sprintf("현재 '%s'을 학습중이시네요. 같은 수준의 다른 과정도 추천드립니다:", current.Title)
			return formatRecommendation(courses, intro)
		}

		otherCategories, err := s.courseRepo.GetOtherCategories(ctx, state.CurrentCategory)
		if err != nil {
			s.logger.Error("failed to query other categories", zap.Error(err))
			return msgStoreError
		}
		if len(otherCategories) > 2 {
			otherCategories = otherCategories[:2]
		}

		var parallel []models.Course
		for _, category := range otherCategories {
			courses, err := s.courseRepo.GetRecommended(ctx, category, current.Level, nil)
			if err != nil {
				s.logger.Error("failed to query parallel courses", zap.String("category", category), zap.Error(err))
				return msgStoreError
			}
			if len(courses) > 2 {
				courses = courses[:2]
			}
			parallel = append(parallel, courses...)
		}
		if len(parallel) > 0 {
			return formatRecommendation(parallel, "현재 학습중인 과정과 병행할 수 있는 다른 분야의 과정을 추천드립니다:")
		}
	}

	return fmt.Sprintf("현재 '%s'을 학습중입니다. 해당 과정을 완료한 후 다시 추천을 요청해주세요.", current.Title)
}

// recommendAfterCompletion handles learners whose history holds only
// completed courses: graduates of the High level branch into a new category,
// everyone else moves along the next-level rule.
func (s *recommendationService) recommendAfterCompletion(ctx context.Context, state models.LearnerState, difficult bool) string {
	if state.CurrentLevel == models.LevelHigh && !difficult {
		otherCategories, err := s.courseRepo.GetOtherCategories(ctx, state.CurrentCategory)
		if err != nil {
			s.logger.Error("failed to query other categories", zap.Error(err))
			return msgStoreError
		}

		var fresh []models.Course
		for _, category := range otherCategories {
			courses, err := s.courseRepo.GetRecommended(ctx, category, models.LevelLow, nil)
			if err != nil {
				s.logger.Error("failed to query graduation courses", zap.String("category", category), zap.Error(err))
				return msgStoreError
			}
			if len(courses) > 0 {
				fresh = append(fresh, courses[0])
			}
		}
		if len(fresh) > 0 {
			intro := fmt.Sprintf("%s 카테고리의 고급 과정을 완료하셨네요! 새로운 영역에 도전해보세요:", state.CurrentCategory)
			return formatRecommendation(fresh, intro)
		}
	}

	nextLevel := state.CurrentLevel.NextLevel(difficult)

	courses, err := s.courseRepo.GetRecommended(ctx, state.CurrentCategory, nextLevel, state.ExcludedCourseIDs)
	if err != nil {
		s.logger.Error("failed to query next-level courses", zap.Error(err))
		return msgStoreError
	}
	if len(courses) == 0 {
		return fmt.Sprintf("추천할 수 있는 %s 레벨 과정이 없습니다.", nextLevel)
	}

	difficultyMsg := "다음 단계"
	if difficult {
		difficultyMsg = "더 쉬운"
	}
	return formatRecommendation(courses, fmt.Sprintf("현재 수준에서 %s 과정을 추천드립니다:", difficultyMsg))
}

// formatRecommendation renders courses as a numbered list under an intro line
func formatRecommendation(courses []models.Course, intro string) string {
	if len(courses) == 0 {
		return msgNothingToOffer
	}

	var sb strings.Builder
	sb.WriteString(intro)
	sb.WriteString("\n\n")

	for i, course := range courses {
		sb.WriteString(fmt.Sprintf("%d. **%s** (%s)\n", i+1, course.Title, course.Level.Label()))
		sb.WriteString(fmt.Sprintf("   - 카테고리: %s\n", course.Category))
		sb.WriteString(fmt.Sprintf("   - 과정 설명: %s\n\n", course.Description))
	}

	return sb.String()
}
