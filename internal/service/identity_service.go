package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"content-platform/internal/domain"
	"content-platform/internal/logger"
	"content-platform/internal/metrics"
	"content-platform/internal/repository"
	"content-platform/internal/validator"
)

const (
	// MaxUsernameProbes bounds the suffix search for a free external username.
	MaxUsernameProbes = 1000
	// UserSearchLimit caps the number of search hits returned.
	UserSearchLimit = 50
	// fallbackUsername is the stem used when a provider hands over no names and no e-mail.
	fallbackUsername = "user"
)

// IdentityService handles both principal kinds behind one interface.
type IdentityService struct {
	principals    repository.PrincipalRepository
	subscriptions repository.SubscriptionRepository
	articles      repository.ArticleRepository
	validator     *validator.Validator
	bcryptCost    int
	now           Clock
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(
	principals repository.PrincipalRepository,
	subscriptions repository.SubscriptionRepository,
	articles repository.ArticleRepository,
	v *validator.Validator,
) *IdentityService {
	return &IdentityService{
		principals:    principals,
		subscriptions: subscriptions,
		articles:      articles,
		validator:     v,
		bcryptCost:    bcrypt.DefaultCost,
		now:           utcNow,
	}
}

// SetBcryptCost overrides the password hashing cost.
func (s *IdentityService) SetBcryptCost(cost int) {
	s.bcryptCost = cost
}

// SetClock overrides the clock. Intended for tests.
func (s *IdentityService) SetClock(now Clock) {
	s.now = now
}

// RegisterLocal creates a password-based principal. Usernames and e-mails
// must be free in both principal tables.
func (s *IdentityService) RegisterLocal(ctx context.Context, in *domain.SignupInput) (*domain.Principal, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := s.validator.ValidateSignup(in); err != nil {
		return nil, err
	}

	taken, err := s.principals.UsernameTaken(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, domain.Conflictf("username %q is already taken", in.Username)
	}
	taken, err = s.principals.EmailTaken(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, domain.Conflictf("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, domain.Internal("hash password", err)
	}

	now := s.now()
	lp := &domain.LocalPrincipal{
		Principal: domain.Principal{
			ID:          uuid.NewString(),
			Kind:        domain.PrincipalLocal,
			Username:    in.Username,
			DisplayName: strings.TrimSpace(in.DisplayName),
			Email:       in.Email,
			Role:        domain.RoleUser,
			Active:      true,
			Badge:       domain.BadgeIron,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		PasswordHash: string(hash),
	}
	if err := s.principals.CreateLocal(ctx, lp); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "local principal registered", "principal_id", lp.ID, "username", lp.Username)
	return &lp.Principal, nil
}

// VerifyCredentials checks a username-or-email and password pair. Every
// failure is reported with the same message.
func (s *IdentityService) VerifyCredentials(ctx context.Context, login, password string) (*domain.Principal, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, domain.Validationf("login and password are required")
	}

	lp, err := s.principals.GetLocalByLogin(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("get principal: %w", err)
	}
	if lp == nil || !lp.Active {
		return nil, domain.Forbiddenf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(lp.PasswordHash), []byte(password)); err != nil {
		return nil, domain.Forbiddenf("invalid credentials")
	}
	return &lp.Principal, nil
}

// ProvisionExternal returns the external principal for an identity provider
// profile, creating it on first sight. Returning principals are matched by
// provider id, then by e-mail; only their provider-owned fields are refreshed.
func (s *IdentityService) ProvisionExternal(ctx context.Context, profile domain.ExternalProfile) (*domain.Principal, error) {
	profile.ProviderID = strings.TrimSpace(profile.ProviderID)
	profile.Email = strings.TrimSpace(profile.Email)
	if profile.ProviderID == "" {
		return nil, domain.Validationf("provider id is required")
	}

	existing, err := s.principals.GetExternalByProviderID(ctx, profile.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("get external principal: %w", err)
	}
	if existing == nil && profile.Email != "" {
		existing, err = s.principals.GetExternalByEmail(ctx, profile.Email)
		if err != nil {
			return nil, fmt.Errorf("get external principal: %w", err)
		}
	}
	if existing != nil {
		refreshed, err := s.principals.RefreshExternal(ctx, existing.ID, profile)
		if err != nil {
			return nil, err
		}
		if refreshed == nil {
			return nil, domain.NotFoundf("external principal %s vanished", existing.ID)
		}
		return &refreshed.Principal, nil
	}

	username, err := s.freeUsername(ctx, domain.BaseUsername(profile.GivenName, profile.FamilyName, profile.Email))
	if err != nil {
		return nil, err
	}

	displayName := strings.TrimSpace(profile.DisplayName)
	if displayName == "" {
		displayName = strings.TrimSpace(profile.GivenName + " " + profile.FamilyName)
	}

	now := s.now()
	ep := &domain.ExternalPrincipal{
		Principal: domain.Principal{
			ID:          uuid.NewString(),
			Kind:        domain.PrincipalExternal,
			Username:    username,
			DisplayName: displayName,
			Email:       profile.Email,
			Role:        domain.RoleUser,
			Active:      true,
			Badge:       domain.BadgeIron,
			Profile:     domain.Profile{ProfilePicture: profile.Avatar},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		ProviderID:    profile.ProviderID,
		EmailVerified: profile.EmailVerified,
	}
	if err := s.principals.CreateExternal(ctx, ep); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "external principal provisioned", "principal_id", ep.ID, "username", ep.Username)
	return &ep.Principal, nil
}

// freeUsername probes base, base1, base2, … across both principal tables.
func (s *IdentityService) freeUsername(ctx context.Context, base string) (string, error) {
	if base == "" {
		base = fallbackUsername
	}
	for n := 0; n < MaxUsernameProbes; n++ {
		candidate := domain.CandidateUsername(base, n)
		taken, err := s.principals.UsernameTaken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check username: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", domain.Conflictf("no free username for %q", base)
}

// Resolve loads the principal ref points at. Absent principals, including
// refs whose id is not a UUID, are (nil, nil).
func (s *IdentityService) Resolve(ctx context.Context, ref domain.PrincipalRef) (*domain.Principal, error) {
	if _, err := uuid.Parse(ref.ID); err != nil {
		return nil, nil
	}
	return s.principals.Get(ctx, ref)
}

// Lookup loads the principal ref points at, reporting absence as NotFound.
func (s *IdentityService) Lookup(ctx context.Context, ref domain.PrincipalRef) (*domain.Principal, error) {
	if err := s.validator.ValidateID("id", ref.ID); err != nil {
		return nil, err
	}
	p, err := s.principals.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFoundf("user not found")
	}
	return p, nil
}

// GetProfile returns the public profile of the named principal of either kind.
func (s *IdentityService) GetProfile(ctx context.Context, username string) (*PublicProfile, error) {
	p, err := s.byUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	subscribers, err := s.subscriptions.ListSubscribers(ctx, p.Ref())
	if err != nil {
		return nil, err
	}
	subscriptions, err := s.subscriptions.ListSubscriptions(ctx, p.Ref())
	if err != nil {
		return nil, err
	}

	return &PublicProfile{
		ID:                p.ID,
		Kind:              p.Kind,
		Username:          p.Username,
		DisplayName:       p.Name(),
		Badge:             p.Badge,
		Profile:           p.Profile,
		SubscriberCount:   len(subscribers),
		SubscriptionCount: len(subscriptions),
		CreatedAt:         p.CreatedAt,
	}, nil
}

// SearchUsers matches username, display name and e-mail of both kinds.
func (s *IdentityService) SearchUsers(ctx context.Context, query string) ([]UserSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.Validationf("search query is required")
	}

	found, err := s.principals.Search(ctx, query, UserSearchLimit)
	if err != nil {
		return nil, err
	}

	results := make([]UserSearchResult, 0, len(found))
	for i := range found {
		results = append(results, UserSearchResult{
			PrincipalSummary: found[i].Summary(),
			Email:            found[i].Email,
			IsExternal:       found[i].Kind == domain.PrincipalExternal,
		})
	}
	return results, nil
}

// UpdateProfile applies a partial profile change to a principal of either kind.
func (s *IdentityService) UpdateProfile(ctx context.Context, ref domain.PrincipalRef, update *domain.ProfileUpdate) (*domain.Principal, error) {
	if err := s.validator.ValidateProfileUpdate(update); err != nil {
		return nil, err
	}

	p, err := s.principals.Update(ctx, ref, func(p *domain.Principal) error {
		update.Apply(p)
		p.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFoundf("user not found")
	}
	return p, nil
}

// DeletePrincipal hard-deletes a local principal together with every
// subscription edge touching it.
func (s *IdentityService) DeletePrincipal(ctx context.Context, admin *domain.Principal, id string) error {
	if err := requireAdmin(admin); err != nil {
		return err
	}
	if err := s.validator.ValidateID("id", id); err != nil {
		return err
	}
	if admin.ID == id {
		return domain.InvalidOperationf("you cannot delete your own account")
	}

	deleted, err := s.principals.DeleteLocal(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFoundf("user not found")
	}

	metrics.ObserveModeration("delete_principal", 1)
	logger.WithPrincipal(string(admin.Kind), admin.ID).InfoContext(ctx, "local principal deleted", "deleted_id", id)
	return nil
}

// ComputeBadge recounts the author's highly rated articles and stores the
// matching badge when it changed.
func (s *IdentityService) ComputeBadge(ctx context.Context, username string) (*BadgeResult, error) {
	p, err := s.byUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	n, err := s.articles.CountRatedAtLeast(ctx, p.Ref(), domain.BadgeRatingThreshold)
	if err != nil {
		return nil, err
	}

	badge := domain.BadgeFor(n)
	if badge != p.Badge {
		if err := s.principals.SetBadge(ctx, p.Ref(), badge); err != nil {
			return nil, err
		}
	}
	return &BadgeResult{Username: p.Username, Badge: badge, HighlyRated: n}, nil
}

// Overview builds the author dashboard of the current principal.
func (s *IdentityService) Overview(ctx context.Context, current *domain.Principal) (*Overview, error) {
	if err := requirePrincipal(current); err != nil {
		return nil, err
	}

	now := s.now()
	stats, err := s.articles.AuthorStats(ctx, current.Ref(), domain.OverviewWindowStart(now))
	if err != nil {
		return nil, err
	}
	subscribers, err := s.subscriptions.ListSubscribers(ctx, current.Ref())
	if err != nil {
		return nil, err
	}
	subscriptions, err := s.subscriptions.ListSubscriptions(ctx, current.Ref())
	if err != nil {
		return nil, err
	}

	return &Overview{
		Username:           current.Username,
		DisplayName:        current.Name(),
		ProfilePicture:     current.Profile.ProfilePicture,
		Badge:              current.Badge,
		TotalArticles:      stats.TotalArticles,
		TotalLikes:         stats.TotalLikes,
		TotalViews:         stats.TotalViews,
		MostPopularArticle: stats.MostPopular,
		TotalComments:      stats.TotalComments,
		TotalSubscribers:   len(subscribers),
		TotalSubscriptions: len(subscriptions),
		ArticlesByMonth:    domain.MonthlySeries(stats.Monthly, now),
	}, nil
}

func (s *IdentityService) byUsername(ctx context.Context, username string) (*domain.Principal, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.Validationf("username is required")
	}
	p, err := findByUsername(ctx, s.principals, username)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFoundf("user %q not found", username)
	}
	return p, nil
}
