package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/port"
)

// maxUsernameAttempts bounds the collision-retry loop: the requested name
// plus that many suffixed candidates.
const maxUsernameAttempts = 3

type userCreatorSrv struct {
	users   port.UserRepository
	newUUID port.UUIDGen
	now     func() time.Time
}

// compile-time check: *userCreatorSrv must satisfy port.UserCreator
var _ port.UserCreator = (*userCreatorSrv)(nil)

func NewUserCreator(users port.UserRepository, newUUID port.UUIDGen) port.UserCreator {
	return &userCreatorSrv{users: users, newUUID: newUUID, now: time.Now}
}

// CreateUser inserts a profile, mutating the username deterministically on
// unique-constraint collisions. If every candidate collides it re-reads by
// auth UID: a concurrent request for the same identity may have won the race,
// in which case that row is the answer.
func (s *userCreatorSrv) CreateUser(ctx context.Context, in port.CreateUserInput) (*model.User, error) {
	now := s.now().UTC()
	u := &model.User{
		ID:          s.newUUID(),
		AuthUID:     in.AuthUID,
		Username:    in.Username,
		DisplayName: in.DisplayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.AvatarURL != "" {
		avatar := in.AvatarURL
		u.AvatarURL = &avatar
	}

	for attempt := 0; attempt <= maxUsernameAttempts; attempt++ {
		u.Username = candidateUsername(in.Username, attempt)

		err := s.users.Create(ctx, u)
		if err == nil {
			logger.Infof(ctx, "✅ created profile #%s as %q", u.ID, u.Username)
			return u, nil
		}
		if !errors.Is(err, port.ErrDuplicateUsername) {
			return nil, fmt.Errorf("creating user: %w", err)
		}
		logger.Debugf(ctx, "username %q taken, retrying", u.Username)
	}

	// All candidates collided. A concurrent request with the same identity
	// may have created the profile already.
	existing, err := s.users.GetByAuthUID(ctx, in.AuthUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUsernameExhausted
		}
		return nil, fmt.Errorf("re-reading user by auth uid: %w", err)
	}
	return existing, nil
}

// candidateUsername derives the attempt'th candidate from the requested
// name. Deterministic so retries across requests probe the same sequence.
func candidateUsername(requested string, attempt int) string {
	if attempt == 0 {
		return requested
	}
	return fmt.Sprintf("%s_%d", requested, attempt)
}
