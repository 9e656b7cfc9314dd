package tracker

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Dino-996/microservizi-tracker/internal/models"
)

var (
	ErrUsernameRequired    = errors.New("tracker: username is required")
	ErrDescriptionRequired = errors.New("tracker: description is required")
	ErrDurationInvalid     = errors.New("tracker: duration must be a number")
	ErrUserNotFound        = errors.New("tracker: user not found")
)

// Store is the persistence surface the service runs on. The mongo-backed
// implementation lives in internal/db; MemoryStore covers database-less runs
// and the unit tests.
type Store interface {
	InsertUser(ctx context.Context, user models.User) error
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUser(ctx context.Context, id string) (*models.User, error)
	InsertLog(ctx context.Context, entry models.LogEntry) error
	LogsByUser(ctx context.Context, userID string) ([]models.LogEntry, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) CreateUser(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: username,
	}

	if err := s.store.InsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// AddExerciseInput carries the raw request fields. Duration stays a string
// here because clients post urlencoded forms; it is coerced during Add.
type AddExerciseInput struct {
	UserID      string
	Description string
	Duration    string
	Date        string
}

// Exercise is a log entry denormalized with its owner, shaped for the
// creation response.
type Exercise struct {
	UserID      string `json:"_id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

func (s *Service) AddExercise(ctx context.Context, input AddExerciseInput) (*Exercise, error) {
	user, err := s.store.FindUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	duration, err := strconv.Atoi(strings.TrimSpace(input.Duration))
	if err != nil {
		return nil, ErrDurationInvalid
	}

	entry := models.LogEntry{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
		Date:        FormatDate(NormalizeDate(input.Date)),
	}

	if err := s.store.InsertLog(ctx, entry); err != nil {
		return nil, fmt.Errorf("add exercise: %w", err)
	}

	return &Exercise{
		UserID:      user.ID,
		Username:    user.Username,
		Date:        entry.Date,
		Duration:    entry.Duration,
		Description: entry.Description,
	}, nil
}

// LogFilter carries the raw query parameters of a log query. Bounds that do
// not parse and limits that are not non-negative integers are ignored.
type LogFilter struct {
	From  string
	To    string
	Limit string
}

// LogResult is the shaped response of a log query. Count always equals
// len(Log), i.e. the size after filtering and truncation.
type LogResult struct {
	UserID   string            `json:"_id"`
	Username string            `json:"username"`
	Count    int               `json:"count"`
	Log      []models.LogEntry `json:"log"`
}

// Logs fetches every entry owned by the user and filters in memory. Dates
// are persisted as display strings, so each one is re-parsed at filter time;
// bounds are inclusive at day granularity. No sort is applied: entries keep
// storage retrieval order.
func (s *Service) Logs(ctx context.Context, userID string, filter LogFilter) (*LogResult, error) {
	user, err := s.store.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.LogsByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}

	from, hasFrom := ParseDate(filter.From)
	to, hasTo := ParseDate(filter.To)

	if hasFrom || hasTo {
		kept := make([]models.LogEntry, 0, len(entries))
		for _, entry := range entries {
			day, err := time.Parse(DisplayDateLayout, entry.Date)
			if err != nil {
				continue
			}
			if hasFrom && day.Before(from) {
				continue
			}
			if hasTo && day.After(to) {
				continue
			}
			kept = append(kept, entry)
		}
		entries = kept
	}

	if limit, ok := parseLimit(filter.Limit); ok && limit < len(entries) {
		entries = entries[:limit]
	}

	if entries == nil {
		entries = []models.LogEntry{}
	}

	return &LogResult{
		UserID:   user.ID,
		Username: user.Username,
		Count:    len(entries),
		Log:      entries,
	}, nil
}

func parseLimit(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, false
	}

	return value, true
}
