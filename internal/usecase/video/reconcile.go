package video

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/playback"
	"github.com/skundu42/doom-backend/internal/port"
)

// observation is a provider report normalised across the two entry points:
// the poll path fills it from a live API query, the webhook path from the
// delivered payload.
type observation struct {
	readyToStream   bool
	durationSeconds float64
	state           string
	errorCode       string
	errorText       string
	hls             string
	dash            string
	thumbnail       string
}

type reconcilerSrv struct {
	repo       port.VideoRepository
	stream     port.StreamClient
	resolver   port.PlaybackResolver
	dispatcher port.TaskDispatcher
	now        func() time.Time
}

// compile-time checks
var (
	_ port.VideoStatusGetter       = (*reconcilerSrv)(nil)
	_ port.WebhookApplier          = (*reconcilerSrv)(nil)
	_ port.VideoAttachmentVerifier = (*reconcilerSrv)(nil)
)

// Reconciler groups the three faces of status reconciliation: the client
// poll, the provider webhook, and the pre-attachment check.
type Reconciler interface {
	port.VideoStatusGetter
	port.WebhookApplier
	port.VideoAttachmentVerifier
}

func NewReconciler(repo port.VideoRepository, stream port.StreamClient, resolver port.PlaybackResolver, dispatcher port.TaskDispatcher) Reconciler {
	return &reconcilerSrv{repo: repo, stream: stream, resolver: resolver, dispatcher: dispatcher, now: time.Now}
}

// GetStatus is the client-poll reconciliation path. It enforces ownership,
// queries the provider, applies the duration backstop, persists the merged
// state and returns the read model with freshly signed playback URLs.
func (s *reconcilerSrv) GetStatus(ctx context.Context, uid string, requesterID db.UUID) (port.VideoStatusOutput, error) {
	local, err := s.loadOwned(ctx, uid, requesterID)
	if err != nil {
		return port.VideoStatusOutput{}, err
	}

	// terminal rows are served from the local projection; the remote
	// resource is gone or unusable either way
	if local.IsTerminal() {
		return s.readModel(local, playback.Provided{})
	}

	state, err := s.stream.GetVideo(ctx, uid)
	if errors.Is(err, port.ErrVideoNotFoundRemote) {
		msg := "removed by provider"
		local.Status = model.VideoStatusError
		local.ErrorMessage = &msg
		local.UpdatedAt = s.now().UTC()
		if upErr := s.repo.Upsert(ctx, local); upErr != nil {
			return port.VideoStatusOutput{}, fmt.Errorf("recording removed video %q: %w", uid, upErr)
		}
		return s.readModel(local, playback.Provided{})
	}
	if err != nil {
		return port.VideoStatusOutput{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	obs := observation{
		readyToStream:   state.ReadyToStream,
		durationSeconds: state.DurationSeconds,
		state:           state.State,
		errorCode:       state.ErrorCode,
		errorText:       state.ErrorText,
		hls:             state.HLS,
		dash:            state.Dash,
		thumbnail:       state.Thumbnail,
	}

	violated, err := s.apply(ctx, local, obs)
	if err != nil {
		return port.VideoStatusOutput{}, err
	}
	if violated {
		return port.VideoStatusOutput{}, ErrDurationExceeded
	}

	return s.readModel(local, playback.Provided{HLS: obs.hls, Dash: obs.dash, Thumbnail: obs.thumbnail})
}

// ApplyWebhook is the provider-webhook reconciliation path. It trusts the
// payload's UID, applies the same duration backstop as the poll path, and
// reports overflow as handled rather than as an error so the provider is
// never driven into retries.
func (s *reconcilerSrv) ApplyWebhook(ctx context.Context, in port.WebhookInput) error {
	local, err := s.repo.GetByUID(ctx, in.UID)
	if errors.Is(err, sql.ErrNoRows) {
		// no grant was ever issued for this UID; nothing to reconcile
		logger.Warnf(ctx, "⚠️  Webhook for unknown video %q ignored", in.UID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading video %q: %w", in.UID, err)
	}

	if local.IsTerminal() {
		// repeated or out-of-order delivery after a terminal decision
		return nil
	}

	obs := observation{}
	if in.ReadyToStream != nil {
		obs.readyToStream = *in.ReadyToStream
	}
	if in.DurationSeconds != nil {
		obs.durationSeconds = *in.DurationSeconds
	}
	if in.State != nil {
		obs.state = *in.State
	}

	violated, err := s.apply(ctx, local, obs)
	if err != nil {
		return err
	}
	if violated {
		logger.Warnf(ctx, "⚠️  Video %q purged: duration above the %ds cap", in.UID, model.MaxVideoDurationSeconds)
	}
	return nil
}

// VerifyAttachment re-checks ownership and readiness before a video is
// attached to a post.
func (s *reconcilerSrv) VerifyAttachment(ctx context.Context, uid string, authorID db.UUID) (*model.Video, error) {
	local, err := s.loadOwned(ctx, uid, authorID)
	if err != nil {
		return nil, err
	}

	switch local.Status {
	case model.VideoStatusReady:
		// ready rows always carry a duration; a row without one predates
		// confirmation and is not attachable yet
		if local.DurationSeconds == nil {
			return nil, ErrNotReady
		}
		// a stored overflow must never reach a post
		if *local.DurationSeconds > model.MaxVideoDurationSeconds {
			return nil, ErrDurationExceeded
		}
		return local, nil
	case model.VideoStatusError:
		return nil, ErrDurationExceeded
	default:
		return nil, ErrNotReady
	}
}

func (s *reconcilerSrv) loadOwned(ctx context.Context, uid string, requesterID db.UUID) (*model.Video, error) {
	local, err := s.repo.GetByUID(ctx, uid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading video %q: %w", uid, err)
	}
	if local.OwnerID != requesterID {
		return nil, ErrForbidden
	}
	return local, nil
}

// apply merges one provider observation into the local projection. It runs
// the duration backstop first: an over-limit duration purges the remote
// resource and drives the row to a terminal error, no matter which entry
// point delivered the observation. Returns whether the backstop fired.
func (s *reconcilerSrv) apply(ctx context.Context, local *model.Video, obs observation) (bool, error) {
	duration := int(math.Round(obs.durationSeconds))

	if duration > model.MaxVideoDurationSeconds {
		if err := s.stream.DeleteVideo(ctx, local.UID); err != nil {
			// best effort inline; hand the purge to the worker so the
			// remote resource still goes away
			logger.Warnf(ctx, "⚠️  Inline purge of video %q failed: %v", local.UID, err)
			if dErr := s.dispatcher.EnqueuePurgeVideo(ctx, local.UID); dErr != nil {
				logger.Errorf(ctx, "❌  Could not enqueue purge for video %q: %v", local.UID, dErr)
			}
		}

		msg := fmt.Sprintf("duration %ds exceeds the %ds maximum", duration, model.MaxVideoDurationSeconds)
		local.Status = model.VideoStatusError
		local.DurationSeconds = &duration
		local.ErrorMessage = &msg
		local.UpdatedAt = s.now().UTC()
		if err := s.repo.Upsert(ctx, local); err != nil {
			return false, fmt.Errorf("recording policy violation for video %q: %w", local.UID, err)
		}
		return true, nil
	}

	local.Status = deriveStatus(obs)
	if duration > 0 {
		local.DurationSeconds = &duration
	} else {
		local.DurationSeconds = nil
		// ready is only ready once the duration is confirmed within policy;
		// a readiness report without one stays at processing until a poll
		// fetches the full state
		if local.Status == model.VideoStatusReady {
			local.Status = model.VideoStatusProcessing
		}
	}
	if local.Status == model.VideoStatusError && obs.errorText != "" {
		text := obs.errorText
		local.ErrorMessage = &text
	}
	local.UpdatedAt = s.now().UTC()

	// last-write-wins upsert: the provider is the source of truth for
	// status, so repeated or out-of-order delivery is harmless
	if err := s.repo.Upsert(ctx, local); err != nil {
		return false, fmt.Errorf("persisting reconciled video %q: %w", local.UID, err)
	}
	return false, nil
}

// deriveStatus maps the provider's processing state onto the local enum.
// With no explicit state string, stream-readiness decides.
func deriveStatus(obs observation) model.VideoStatus {
	switch obs.state {
	case "ready":
		return model.VideoStatusReady
	case "error":
		return model.VideoStatusError
	case "":
		if obs.readyToStream {
			return model.VideoStatusReady
		}
		return model.VideoStatusProcessing
	default:
		return model.VideoStatusProcessing
	}
}

func (s *reconcilerSrv) readModel(local *model.Video, provided playback.Provided) (port.VideoStatusOutput, error) {
	out := port.VideoStatusOutput{
		UID:             local.UID,
		State:           string(local.Status),
		ReadyToStream:   local.Status == model.VideoStatusReady,
		DurationSeconds: local.DurationSeconds,
	}
	if local.Status == model.VideoStatusError {
		code := "processing_failed"
		out.ErrorCode = &code
		out.ErrorText = local.ErrorMessage
	}

	if out.ReadyToStream {
		urls, err := s.resolver.Resolve(local.UID, provided)
		if err != nil {
			return port.VideoStatusOutput{}, fmt.Errorf("resolving playback for video %q: %w", local.UID, err)
		}
		out.Playback = urls
	}

	return out, nil
}
