package post

// Page size clamps. Client-requested limits outside these bounds are pulled
// back in to bound page cost.
const (
	FeedDefaultLimit = 10
	FeedMaxLimit     = 30

	CommentsDefaultLimit = 20
	CommentsMaxLimit     = 50
)

func clampLimit(requested, def, max int) int {
	if requested <= 0 {
		return def
	}
	if requested > max {
		return max
	}
	return requested
}
