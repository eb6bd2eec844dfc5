package scoring

import (
	"fmt"

	apperrors "github.com/shipgate/site-api/pkg/util"
)

// Tier classifies a total score into one of three ordered bands.
type Tier string

const (
	TierGuessing       Tier = "Guessing"
	TierPartialClarity Tier = "Partial Clarity"
	TierDefensibleBet  Tier = "Defensible Bet"
)

// QuestionCount is the fixed length of a valid answers array.
const QuestionCount = 10

// Slug returns the storage form of the tier used by the external store.
func (t Tier) Slug() string {
	switch t {
	case TierDefensibleBet:
		return "defensible_bet"
	case TierPartialClarity:
		return "partial_clarity"
	default:
		return "guessing"
	}
}

// TierFromSlug maps a stored slug back to its display tier. Unknown
// slugs are returned unchanged so raw store values still render.
func TierFromSlug(slug string) string {
	switch slug {
	case "defensible_bet":
		return string(TierDefensibleBet)
	case "partial_clarity":
		return string(TierPartialClarity)
	case "guessing":
		return string(TierGuessing)
	default:
		return slug
	}
}

// TierFromScore partitions a total score into a tier. Band lower bounds
// are inclusive: 40 and 25 belong to the higher tier.
func TierFromScore(total int) Tier {
	if total >= 40 {
		return TierDefensibleBet
	}
	if total >= 25 {
		return TierPartialClarity
	}
	return TierGuessing
}

// Score validates the answers array and returns the authoritative total
// and tier. Exactly QuestionCount answers, each in [1,5]; anything else
// is rejected with INVALID_ANSWERS and no side effects.
func Score(answers []int) (int, Tier, error) {
	if len(answers) != QuestionCount {
		return 0, "", apperrors.NewInvalidAnswers(
			fmt.Sprintf("Invalid answers. Please complete all %d questions.", QuestionCount))
	}
	total := 0
	for _, a := range answers {
		if a < 1 || a > 5 {
			return 0, "", apperrors.NewInvalidAnswers(
				fmt.Sprintf("Invalid answers. Please complete all %d questions.", QuestionCount))
		}
		total += a
	}
	return total, TierFromScore(total), nil
}
