package sessions

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/soccerlab/rater-api/internal/models"
	"github.com/soccerlab/rater-api/internal/services/clips"
	"github.com/soccerlab/rater-api/internal/services/ratings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClipSource returns a fixed clip list without touching the filesystem.
type stubClipSource struct {
	clips []clips.Clip
	err   error
}

func (s *stubClipSource) Scan() ([]clips.Clip, error) {
	return s.clips, s.err
}

// failingStore wraps the filesystem store so writes can be forced to fail.
type failingStore struct {
	ratings.Store
	failWrites bool
}

func (f *failingStore) PutRating(ctx context.Context, rating *models.Rating) error {
	if f.failWrites {
		return errors.New("disk full")
	}
	return f.Store.PutRating(ctx, rating)
}

func newSessionService(t *testing.T, source ClipSource, maxPerClip int) (*ServiceImpl, *failingStore) {
	t.Helper()
	store := &failingStore{Store: ratings.NewFilesystemStore(t.TempDir())}
	dims := []models.RatingDimension{
		{Name: "creativity", Kind: models.DimensionKindDiscrete, Required: true, Min: -3, Max: 3},
	}
	ratingService := ratings.NewService(store, dims)
	return NewService(ratingService, source, maxPerClip, PolicyNone), store
}

func TestOpenSessionRequiresUserID(t *testing.T) {
	service, _ := newSessionService(t, &stubClipSource{}, 0)
	_, err := service.OpenSession(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestOpenSessionBuildsQueueSnapshot(t *testing.T) {
	source := &stubClipSource{clips: clipList("clip_a", "clip_b", "clip_c")}
	service, _ := newSessionService(t, source, 0)

	session, err := service.OpenSession(context.Background(), "anjo1257")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "anjo1257", session.UserID)
	assert.Equal(t, 3, session.Remaining())
	assert.False(t, session.Exhausted())

	got, err := service.GetSession(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Token, got.Token)
	assert.Equal(t, session.UserID, got.UserID)
	assert.Equal(t, 3, got.Remaining())
}

func TestGetSessionUnknownToken(t *testing.T) {
	service, _ := newSessionService(t, &stubClipSource{}, 0)
	_, err := service.GetSession("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSubmitCurrentAdvancesThroughQueue(t *testing.T) {
	ctx := context.Background()
	source := &stubClipSource{clips: clipList("clip_a", "clip_b")}
	service, _ := newSessionService(t, source, 0)

	session, err := service.OpenSession(ctx, "anjo1257")
	require.NoError(t, err)

	first, _ := session.Current()
	after, err := service.SubmitCurrent(ctx, session.Token, map[string]any{"creativity": float64(2)}, false)
	require.NoError(t, err)

	second, ok := after.Current()
	require.True(t, ok)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 1, after.Remaining())

	after, err = service.SubmitCurrent(ctx, session.Token, nil, true)
	require.NoError(t, err)
	assert.True(t, after.Exhausted())

	// Exhausted sessions reject further submissions.
	_, err = service.SubmitCurrent(ctx, session.Token, map[string]any{"creativity": float64(1)}, false)
	assert.ErrorIs(t, err, ErrSessionExhausted)
}

func TestSubmitCurrentValidationErrorDoesNotAdvance(t *testing.T) {
	ctx := context.Background()
	source := &stubClipSource{clips: clipList("clip_a")}
	service, _ := newSessionService(t, source, 0)

	session, err := service.OpenSession(ctx, "anjo1257")
	require.NoError(t, err)

	after, err := service.SubmitCurrent(ctx, session.Token, nil, false)
	assert.ErrorIs(t, err, ratings.ErrIncompleteRating)
	assert.Equal(t, 0, after.Index)
	assert.Nil(t, after.Pending)
}

func TestSubmitCurrentStorageFailureKeepsPending(t *testing.T) {
	ctx := context.Background()
	source := &stubClipSource{clips: clipList("clip_a")}
	service, store := newSessionService(t, source, 0)

	session, err := service.OpenSession(ctx, "anjo1257")
	require.NoError(t, err)

	store.failWrites = true
	after, err := service.SubmitCurrent(ctx, session.Token, map[string]any{"creativity": float64(2)}, false)
	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.Equal(t, 0, after.Index)
	require.NotNil(t, after.Pending)
	assert.Equal(t, "clip_a", after.Pending.ClipID)

	// Retry with the same answers succeeds once the disk recovers.
	store.failWrites = false
	after, err = service.SubmitCurrent(ctx, session.Token, after.Pending.Values, after.Pending.NotRecognized)
	require.NoError(t, err)
	assert.True(t, after.Exhausted())
	assert.Nil(t, after.Pending)
}

func TestSubmitCurrentIdempotentResubmission(t *testing.T) {
	ctx := context.Background()
	source := &stubClipSource{clips: clipList("clip_a")}
	service, store := newSessionService(t, source, 0)

	session, err := service.OpenSession(ctx, "anjo1257")
	require.NoError(t, err)
	_, err = service.SubmitCurrent(ctx, session.Token, map[string]any{"creativity": float64(-2)}, false)
	require.NoError(t, err)

	// A later session for the same rater no longer offers the clip, and
	// the store holds exactly one record for the pair.
	second, err := service.OpenSession(ctx, "anjo1257")
	require.NoError(t, err)
	assert.True(t, second.Exhausted())

	records, skipped, err := store.ListRatings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	assert.Len(t, records, 1)
}

func TestSkipCurrentAdvancesWithoutStoring(t *testing.T) {
	ctx := context.Background()
	source := &stubClipSource{clips: clipList("clip_a", "clip_b")}
	service, store := newSessionService(t, source, 0)

	session, err := service.OpenSession(ctx, "anjo1257")
	require.NoError(t, err)

	after, err := service.SkipCurrent(session.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Index)

	records, _, err := store.ListRatings(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = service.SkipCurrent(session.Token)
	require.NoError(t, err)
	_, err = service.SkipCurrent(session.Token)
	assert.ErrorIs(t, err, ErrSessionExhausted)
}

func TestSubmitCurrentConcurrentRequestsSerialize(t *testing.T) {
	ctx := context.Background()
	source := &stubClipSource{clips: clipList("clip_a", "clip_b")}
	service, store := newSessionService(t, source, 0)

	session, err := service.OpenSession(ctx, "anjo1257")
	require.NoError(t, err)

	// Two in-flight submissions for the same token must serialize: each
	// one rates the clip at the cursor and advances exactly once, so
	// neither clip is skipped or rated twice.
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.SubmitCurrent(ctx, session.Token, map[string]any{"creativity": float64(1)}, false)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final, err := service.GetSession(session.Token)
	require.NoError(t, err)
	assert.True(t, final.Exhausted())

	for _, clipID := range []string{"clip_a", "clip_b"} {
		has, err := store.HasRating(ctx, "anjo1257", clipID)
		require.NoError(t, err)
		assert.True(t, has, "expected a stored rating for %s", clipID)
	}
}

func TestCloseSessionDiscardsState(t *testing.T) {
	source := &stubClipSource{clips: clipList("clip_a")}
	service, _ := newSessionService(t, source, 0)

	session, err := service.OpenSession(context.Background(), "anjo1257")
	require.NoError(t, err)

	service.CloseSession(session.Token)
	_, err = service.GetSession(session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
