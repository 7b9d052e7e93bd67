package domain

// VoteDirection is the direction of a vote action.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// Stance is a voter's current position on an article.
type Stance string

const (
	StanceNone      Stance = "none"
	StanceUpvoted   Stance = "upvoted"
	StanceDownvoted Stance = "downvoted"
)

// VoteOutcome describes what a vote action did.
type VoteOutcome string

const (
	VoteAdded    VoteOutcome = "added"
	VoteRemoved  VoteOutcome = "removed"
	VoteSwitched VoteOutcome = "switched"
)

// StanceOf returns voter's stance on the article.
func (a *Article) StanceOf(voter string) Stance {
	switch {
	case contains(a.Upvoters, voter):
		return StanceUpvoted
	case contains(a.Downvoters, voter):
		return StanceDownvoted
	}
	return StanceNone
}

// ApplyVote toggles voter's vote in direction. Voting the held direction again
// removes it; voting the opposite direction moves the voter. Counters never go below zero.
func (a *Article) ApplyVote(voter string, direction VoteDirection) (VoteOutcome, error) {
	if voter == "" {
		return "", Validationf("voter is required")
	}

	var target, opposite *[]string
	var targetCount, oppositeCount *int
	switch direction {
	case VoteUp:
		target, targetCount = &a.Upvoters, &a.Upvotes
		opposite, oppositeCount = &a.Downvoters, &a.Downvotes
	case VoteDown:
		target, targetCount = &a.Downvoters, &a.Downvotes
		opposite, oppositeCount = &a.Upvoters, &a.Upvotes
	default:
		return "", Validationf("invalid vote direction %q", direction)
	}

	if contains(*target, voter) {
		*target = remove(*target, voter)
		*targetCount = floorZero(*targetCount - 1)
		return VoteRemoved, nil
	}

	outcome := VoteAdded
	if contains(*opposite, voter) {
		*opposite = remove(*opposite, voter)
		*oppositeCount = floorZero(*oppositeCount - 1)
		outcome = VoteSwitched
	}

	*target = append(*target, voter)
	*targetCount++
	return outcome, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func remove(set []string, v string) []string {
	out := set[:0:0]
	for _, s := range set {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

func floorZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
