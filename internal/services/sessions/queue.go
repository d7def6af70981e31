package sessions

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/soccerlab/rater-api/internal/services/clips"
	"github.com/soccerlab/rater-api/internal/services/ratings"
)

// Queue ordering policies. The policy is an explicit configuration choice:
// the seeded shuffle makes presentation order reproducible across runs
// (raters with the same candidate set see the same order), the plain
// shuffle randomizes order per session, and "none" keeps the sorted scan
// order. Per-rater queues still diverge under any policy as clips get
// rated and drop out of the candidate set.
const (
	PolicySeeded = "seeded"
	PolicyRandom = "random"
	PolicyNone   = "none"
)

// shuffleSeed is the fixed seed used by PolicySeeded.
const shuffleSeed = 42

// BuildQueue computes the ordered queue of clips to present to a rater:
// every available clip the rater has not rated and that has not reached
// the saturation cap, ordered per policy. The result is a snapshot of the
// store at call time; it is intentionally never recomputed mid-session,
// so a clip saturated by another rater after the snapshot may still be
// shown (accepted cross-process race, bounded by the number of
// concurrently racing sessions).
func BuildQueue(ctx context.Context, available []clips.Clip, userID string, maxPerClip int, store ratings.Service, policy string) ([]clips.Clip, error) {
	var queue []clips.Clip
	for _, clip := range available {
		rated, err := store.HasRating(ctx, userID, clip.ID)
		if err != nil {
			return nil, fmt.Errorf("checking rating for %s: %w", clip.ID, err)
		}
		if rated {
			continue
		}

		if maxPerClip > 0 {
			count, err := store.CountRatings(ctx, clip.ID)
			if err != nil {
				return nil, fmt.Errorf("counting ratings for %s: %w", clip.ID, err)
			}
			if count >= maxPerClip {
				continue
			}
		}

		queue = append(queue, clip)
	}

	applyOrder(queue, policy)
	return queue, nil
}

func applyOrder(queue []clips.Clip, policy string) {
	switch policy {
	case PolicySeeded:
		rng := rand.New(rand.NewSource(shuffleSeed))
		rng.Shuffle(len(queue), func(i, j int) {
			queue[i], queue[j] = queue[j], queue[i]
		})
	case PolicyRandom:
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		rng.Shuffle(len(queue), func(i, j int) {
			queue[i], queue[j] = queue[j], queue[i]
		})
	default:
		// PolicyNone: keep the scanner's sorted order.
	}
}
