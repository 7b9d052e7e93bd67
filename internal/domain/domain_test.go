package domain

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		status string
		valid  bool
	}{
		{"on-going", true},
		{"approved", true},
		{"rejected", true},
		{"deleted", false},
		{"", false},
		{"APPROVED", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsValidStatus(tt.status); got != tt.valid {
				t.Errorf("IsValidStatus(%q) = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestIsValidReportReason(t *testing.T) {
	for _, r := range ValidReportReasons {
		assert.True(t, IsValidReportReason(string(r)), r)
	}
	assert.False(t, IsValidReportReason("boring"))
	assert.False(t, IsValidReportReason(""))
}

func TestParsePrincipalKind(t *testing.T) {
	kind, err := ParsePrincipalKind("Local")
	require.NoError(t, err)
	assert.Equal(t, PrincipalLocal, kind)

	kind, err = ParsePrincipalKind("external")
	require.NoError(t, err)
	assert.Equal(t, PrincipalExternal, kind)

	_, err = ParsePrincipalKind("google")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NotFoundf("article %s not found", "x"))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, "article x not found", NotFoundf("article %s not found", "x").Error())
}

func TestBadgeFor(t *testing.T) {
	tests := []struct {
		count int
		want  Badge
	}{
		{0, BadgeIron},
		{9, BadgeIron},
		{10, BadgeBronze},
		{29, BadgeBronze},
		{30, BadgeSilver},
		{50, BadgeGold},
		{99, BadgeGold},
		{100, BadgePlatinum},
		{250, BadgePlatinum},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BadgeFor(tt.count), "count %d", tt.count)
	}
}

func TestBaseUsername(t *testing.T) {
	tests := []struct {
		given, family, email string
		want                 string
	}{
		{"John", "Doe", "jd@example.com", "john.doe"},
		{"Mary Ann", "Van Der Berg", "m@example.com", "maryann.vanderberg"},
		{"  Li ", "", "li@example.com", "li"},
		{"", "Smith", "s@example.com", "smith"},
		{"", "", "Jane.Roe@example.com", "jane.roe"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BaseUsername(tt.given, tt.family, tt.email))
	}
	assert.Equal(t, "john.doe", CandidateUsername("john.doe", 0))
	assert.Equal(t, "john.doe2", CandidateUsername("john.doe", 2))
}

func TestPrincipal_IsAdmin(t *testing.T) {
	assert.True(t, (&Principal{Kind: PrincipalLocal, Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&Principal{Kind: PrincipalLocal, Role: RoleUser}).IsAdmin())
	assert.False(t, (&Principal{Kind: PrincipalExternal, Role: RoleAdmin}).IsAdmin())

	var nilPrincipal *Principal
	assert.False(t, nilPrincipal.IsAdmin())
}

func TestArticle_ApplyVote(t *testing.T) {
	t.Run("upvote then toggle off", func(t *testing.T) {
		a := &Article{}

		outcome, err := a.ApplyVote("alice", VoteUp)
		require.NoError(t, err)
		assert.Equal(t, VoteAdded, outcome)
		assert.Equal(t, 1, a.Upvotes)
		assert.Equal(t, StanceUpvoted, a.StanceOf("alice"))

		outcome, err = a.ApplyVote("alice", VoteUp)
		require.NoError(t, err)
		assert.Equal(t, VoteRemoved, outcome)
		assert.Equal(t, 0, a.Upvotes)
		assert.Equal(t, StanceNone, a.StanceOf("alice"))
	})

	t.Run("switching direction moves the voter", func(t *testing.T) {
		a := &Article{}
		_, _ = a.ApplyVote("bob", VoteDown)

		outcome, err := a.ApplyVote("bob", VoteUp)
		require.NoError(t, err)
		assert.Equal(t, VoteSwitched, outcome)
		assert.Equal(t, 1, a.Upvotes)
		assert.Equal(t, 0, a.Downvotes)
		assert.Empty(t, a.Downvoters)
	})

	t.Run("counters floor at zero when desynchronized", func(t *testing.T) {
		a := &Article{Upvoters: []string{"carol"}, Upvotes: 0}

		_, err := a.ApplyVote("carol", VoteDown)
		require.NoError(t, err)
		assert.Equal(t, 0, a.Upvotes)
		assert.Equal(t, 1, a.Downvotes)
	})

	t.Run("rejects empty voter and bad direction", func(t *testing.T) {
		a := &Article{}
		_, err := a.ApplyVote("", VoteUp)
		assert.ErrorIs(t, err, ErrValidation)
		_, err = a.ApplyVote("dave", VoteDirection("sideways"))
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestArticle_ApplyVoteExclusivity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	voters := []string{"a", "b", "c", "d", "e"}
	directions := []VoteDirection{VoteUp, VoteDown}

	for run := 0; run < 200; run++ {
		a := &Article{}
		for step := 0; step < 50; step++ {
			voter := voters[rng.Intn(len(voters))]
			_, err := a.ApplyVote(voter, directions[rng.Intn(2)])
			require.NoError(t, err)

			for _, v := range voters {
				require.False(t, contains(a.Upvoters, v) && contains(a.Downvoters, v),
					"voter %s holds both stances", v)
			}
			require.Equal(t, len(a.Upvoters), a.Upvotes)
			require.Equal(t, len(a.Downvoters), a.Downvotes)
		}
	}
}

func TestArticle_ApplyVoteIdempotentToggle(t *testing.T) {
	for _, dir := range []VoteDirection{VoteUp, VoteDown} {
		t.Run(string(dir), func(t *testing.T) {
			a := &Article{Upvoters: []string{"x"}, Upvotes: 1, Downvoters: []string{"y"}, Downvotes: 1}

			_, err := a.ApplyVote("v", dir)
			require.NoError(t, err)
			_, err = a.ApplyVote("v", dir)
			require.NoError(t, err)

			assert.Equal(t, StanceNone, a.StanceOf("v"))
			assert.Equal(t, 1, a.Upvotes)
			assert.Equal(t, 1, a.Downvotes)
			assert.Equal(t, []string{"x"}, a.Upvoters)
			assert.Equal(t, []string{"y"}, a.Downvoters)
		})
	}
}

func TestArticle_StatusMachine(t *testing.T) {
	now := time.Now()

	t.Run("admin transitions", func(t *testing.T) {
		a := &Article{ID: "1", Status: StatusOngoing}
		require.NoError(t, a.Transition(StatusApproved, now))
		assert.Equal(t, StatusApproved, a.Status)
		require.NoError(t, a.Transition(StatusRejected, now))
		require.NoError(t, a.Transition(StatusApproved, now))
		assert.Equal(t, StatusApproved, a.Status)
	})

	t.Run("cannot move back to on-going", func(t *testing.T) {
		a := &Article{ID: "1", Status: StatusApproved}
		assert.ErrorIs(t, a.Transition(StatusOngoing, now), ErrInvalidState)
		assert.Equal(t, StatusApproved, a.Status)
	})

	t.Run("deleted articles reject status changes", func(t *testing.T) {
		for _, target := range []ArticleStatus{StatusApproved, StatusRejected} {
			a := &Article{ID: "1", Status: StatusOngoing}
			require.NoError(t, a.SoftDelete(now))
			assert.ErrorIs(t, a.Transition(target, now), ErrInvalidState)
			assert.Equal(t, StatusOngoing, a.Status)
		}
	})

	t.Run("soft delete is one-way", func(t *testing.T) {
		a := &Article{ID: "1"}
		require.NoError(t, a.SoftDelete(now))
		assert.True(t, a.Deleted)
		assert.NotNil(t, a.DeletedAt)
		assert.ErrorIs(t, a.SoftDelete(now), ErrInvalidState)
	})
}

func TestArticle_VisibleTo(t *testing.T) {
	author := &Principal{ID: "u1", Kind: PrincipalLocal, Role: RoleUser}
	other := &Principal{ID: "u2", Kind: PrincipalExternal, Role: RoleUser}
	admin := &Principal{ID: "u3", Kind: PrincipalLocal, Role: RoleAdmin}

	draft := &Article{Author: author.Ref(), Status: StatusOngoing}
	assert.True(t, draft.VisibleTo(author))
	assert.True(t, draft.VisibleTo(admin))
	assert.False(t, draft.VisibleTo(other))
	assert.False(t, draft.VisibleTo(nil))

	published := &Article{Author: author.Ref(), Status: StatusApproved}
	assert.True(t, published.VisibleTo(nil))
	assert.True(t, published.IsPublic())

	published.Deleted = true
	assert.False(t, published.VisibleTo(admin))
	assert.False(t, published.IsPublic())
}

func TestReport_Review(t *testing.T) {
	first := PrincipalRef{ID: "admin-1", Kind: PrincipalLocal}
	second := PrincipalRef{ID: "admin-2", Kind: PrincipalLocal}
	t0 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	r := &Report{Status: ReportPending}
	require.NoError(t, r.Review(ReportReviewed, "looking", first, t0))
	assert.Equal(t, ReportReviewed, r.Status)
	require.NotNil(t, r.ReviewedBy)
	assert.Equal(t, first, *r.ReviewedBy)
	assert.Equal(t, t0, *r.ReviewedAt)

	require.NoError(t, r.Review(ReportResolved, "", second, t1))
	assert.Equal(t, ReportResolved, r.Status)
	assert.Equal(t, first, *r.ReviewedBy)
	assert.Equal(t, t0, *r.ReviewedAt)
	assert.Equal(t, "looking", r.AdminNotes)

	assert.ErrorIs(t, r.Review(ReportStatus("closed"), "", first, t1), ErrValidation)
	assert.Equal(t, ReportResolved, r.Status)
}

func TestReport_ReviewStayingPendingDoesNotStamp(t *testing.T) {
	r := &Report{Status: ReportPending}
	require.NoError(t, r.Review(ReportPending, "note", PrincipalRef{ID: "a", Kind: PrincipalLocal}, time.Now()))
	assert.Nil(t, r.ReviewedBy)
	assert.Nil(t, r.ReviewedAt)
}

func TestFoldReportCounts(t *testing.T) {
	counts := FoldReportCounts([]ReportCountRow{
		{Status: ReportPending, Reason: ReasonSpam, Count: 3},
		{Status: ReportPending, Reason: ReasonOther, Count: 1},
		{Status: ReportResolved, Reason: ReasonSpam, Count: 2},
		{Status: ReportRejected, Reason: ReasonViolence, Count: 4},
		{Status: ReportReviewed, Reason: ReasonCopyright, Count: 5},
	})

	assert.Equal(t, 4, counts.Pending)
	assert.Equal(t, 5, counts.Reviewed)
	assert.Equal(t, 2, counts.Resolved)
	assert.Equal(t, 4, counts.Rejected)
	assert.Equal(t, 15, counts.Total)
	assert.Equal(t, 5, counts.ByReason[ReasonSpam])
	assert.Equal(t, 0, counts.ByReason[ReasonHateSpeech])

	var byReason int
	for _, n := range counts.ByReason {
		byReason += n
	}
	assert.Equal(t, counts.Total, byReason)
	assert.Equal(t, counts.Total, counts.Pending+counts.Reviewed+counts.Resolved+counts.Rejected)
}

func TestPage(t *testing.T) {
	p := Page{}.Normalize(20, 100)
	assert.Equal(t, Page{Number: 1, Size: 20}, p)
	assert.Equal(t, 0, p.Offset())

	p = Page{Number: 3, Size: 500}.Normalize(20, 100)
	assert.Equal(t, 100, p.Size)
	assert.Equal(t, 200, p.Offset())
	assert.Equal(t, 3, p.PageCount(201))
	assert.Equal(t, 0, p.PageCount(0))
}

func TestProfileUpdate_Apply(t *testing.T) {
	bio := "writes about databases"
	city := ""
	p := &Principal{
		DisplayName: "Ada",
		Profile:     Profile{Bio: "old", City: "London", Country: "UK"},
	}

	ProfileUpdate{Bio: &bio, City: &city}.Apply(p)

	assert.Equal(t, "Ada", p.DisplayName)
	assert.Equal(t, bio, p.Profile.Bio)
	assert.Empty(t, p.Profile.City)
	assert.Equal(t, "UK", p.Profile.Country)
}

func TestOverviewWindowStart(t *testing.T) {
	tests := []struct {
		now  time.Time
		want time.Time
	}{
		{time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC), time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)},
		// 01:00 in UTC+3 is still the previous day in UTC
		{time.Date(2024, time.March, 1, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*3600)), time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OverviewWindowStart(tt.now), tt.now.String())
	}
}

func TestMonthlySeries(t *testing.T) {
	now := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)

	series := MonthlySeries([]MonthCount{
		{Year: 2023, Month: 3, Count: 2},
		{Year: 2024, Month: 2, Count: 1},
		{Year: 2024, Month: 2, Count: 1},
		{Year: 2022, Month: 12, Count: 9},
	}, now)

	require.Len(t, series, OverviewMonths)
	assert.Equal(t, MonthCount{Year: 2023, Month: 3, Count: 2}, series[0])
	assert.Equal(t, MonthCount{Year: 2024, Month: 1}, series[10])
	assert.Equal(t, MonthCount{Year: 2024, Month: 2, Count: 2}, series[11])

	total := 0
	for _, m := range series {
		total += m.Count
	}
	assert.Equal(t, 4, total, "months outside the window are dropped")
}
