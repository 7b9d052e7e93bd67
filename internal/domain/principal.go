package domain

import (
	"fmt"
	"strings"
	"time"
)

// PrincipalKind tags which collection a principal lives in.
type PrincipalKind string

const (
	PrincipalLocal    PrincipalKind = "local"
	PrincipalExternal PrincipalKind = "external"
)

// PrincipalKinds lists kinds in probe order: local first, then external.
var PrincipalKinds = []PrincipalKind{PrincipalLocal, PrincipalExternal}

// ParsePrincipalKind parses a kind tag.
func ParsePrincipalKind(s string) (PrincipalKind, error) {
	switch PrincipalKind(strings.ToLower(strings.TrimSpace(s))) {
	case PrincipalLocal:
		return PrincipalLocal, nil
	case PrincipalExternal:
		return PrincipalExternal, nil
	}
	return "", Validationf("invalid principal kind %q", s)
}

// PrincipalRef identifies a principal of either kind. It is a lookup key, never ownership.
type PrincipalRef struct {
	ID   string        `json:"userId"`
	Kind PrincipalKind `json:"userModel"`
}

func (r PrincipalRef) String() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.ID)
}

// IsZero reports whether the ref is unset.
func (r PrincipalRef) IsZero() bool {
	return r.ID == "" && r.Kind == ""
}

// Role is a local principal's authorization role.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Badge is the author tier derived from highly rated articles.
type Badge string

const (
	BadgeIron     Badge = "Iron"
	BadgeBronze   Badge = "Bronze"
	BadgeSilver   Badge = "Silver"
	BadgeGold     Badge = "Gold"
	BadgePlatinum Badge = "Platinum"
)

// BadgeRatingThreshold is the minimum article rating that counts toward a badge.
const BadgeRatingThreshold = 75.0

// BadgeFor maps the number of highly rated articles to a badge.
func BadgeFor(highlyRated int) Badge {
	switch {
	case highlyRated >= 100:
		return BadgePlatinum
	case highlyRated >= 50:
		return BadgeGold
	case highlyRated >= 30:
		return BadgeSilver
	case highlyRated >= 10:
		return BadgeBronze
	}
	return BadgeIron
}

// Profile holds the profile fields both principal kinds carry.
type Profile struct {
	Bio            string     `json:"bio"`
	Phone          string     `json:"phone"`
	Website        string     `json:"website"`
	Gender         string     `json:"gender"`
	Country        string     `json:"country"`
	City           string     `json:"city"`
	ZipCode        string     `json:"zipCode"`
	Birthdate      *time.Time `json:"birthdate,omitempty"`
	ProfilePicture string     `json:"profilePicture"`
	ProfileBanner  string     `json:"profileBanner"`
}

// Principal is the kind-erased view of a user of either kind.
type Principal struct {
	ID          string        `json:"id"`
	Kind        PrincipalKind `json:"kind"`
	Username    string        `json:"username"`
	DisplayName string        `json:"displayname"`
	Email       string        `json:"email"`
	Role        Role          `json:"role"`
	Active      bool          `json:"isActive"`
	Badge       Badge         `json:"badge"`
	Profile     Profile       `json:"profile"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Ref returns the tagged reference to p.
func (p *Principal) Ref() PrincipalRef {
	return PrincipalRef{ID: p.ID, Kind: p.Kind}
}

// IsAdmin reports whether p may perform admin actions. Only local principals can be admins.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Kind == PrincipalLocal && p.Role == RoleAdmin
}

// Name returns the display name, falling back to the username.
func (p *Principal) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Username
}

// Summary returns the flattened listing view of p.
func (p *Principal) Summary() PrincipalSummary {
	return PrincipalSummary{
		ID:          p.ID,
		Username:    p.Username,
		DisplayName: p.Name(),
		Avatar:      p.Profile.ProfilePicture,
	}
}

// LocalPrincipal is a password-based principal.
type LocalPrincipal struct {
	Principal
	PasswordHash    string     `json:"-"`
	ResetOTP        *string    `json:"-"`
	ResetOTPExpires *time.Time `json:"-"`
}

// ExternalPrincipal is a principal authenticated by an external identity provider.
type ExternalPrincipal struct {
	Principal
	ProviderID    string `json:"providerId"`
	EmailVerified bool   `json:"emailVerified"`
}

// PrincipalSummary is the kind-erased listing shape.
type PrincipalSummary struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayname"`
	Avatar      string `json:"profilePicture"`
}

// UnknownPrincipal is the placeholder rendered for refs that no longer resolve.
var UnknownPrincipal = PrincipalSummary{Username: "unknown", DisplayName: "Unknown user"}

// ExternalProfile is what an identity provider hands over on authentication.
type ExternalProfile struct {
	ProviderID    string
	Email         string
	GivenName     string
	FamilyName    string
	DisplayName   string
	Avatar        string
	EmailVerified bool
}

// BaseUsername derives the username stem for a new external principal:
// given and family names with whitespace removed, joined by ".", lower-cased.
// If both names are empty the e-mail local part is used.
func BaseUsername(givenName, familyName, email string) string {
	given := stripSpace(givenName)
	family := stripSpace(familyName)

	var base string
	switch {
	case given != "" && family != "":
		base = given + "." + family
	case given != "":
		base = given
	case family != "":
		base = family
	default:
		base, _, _ = strings.Cut(email, "@")
		base = stripSpace(base)
	}
	return strings.ToLower(base)
}

// CandidateUsername returns the n-th probe for base: base itself for n == 0, base+n after.
func CandidateUsername(base string, n int) string {
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s%d", base, n)
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// ProfileUpdate is a partial profile change. Nil fields are left unchanged.
type ProfileUpdate struct {
	DisplayName    *string    `json:"displayname"`
	Bio            *string    `json:"bio"`
	Phone          *string    `json:"phone"`
	Website        *string    `json:"website"`
	Gender         *string    `json:"gender"`
	Country        *string    `json:"country"`
	City           *string    `json:"city"`
	ZipCode        *string    `json:"zipCode"`
	Birthdate      *time.Time `json:"birthdate"`
	ProfilePicture *string    `json:"profilePicture"`
	ProfileBanner  *string    `json:"profileBanner"`
}

// Apply copies the set fields onto p.
func (u ProfileUpdate) Apply(p *Principal) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.DisplayName, u.DisplayName)
	set(&p.Profile.Bio, u.Bio)
	set(&p.Profile.Phone, u.Phone)
	set(&p.Profile.Website, u.Website)
	set(&p.Profile.Gender, u.Gender)
	set(&p.Profile.Country, u.Country)
	set(&p.Profile.City, u.City)
	set(&p.Profile.ZipCode, u.ZipCode)
	set(&p.Profile.ProfilePicture, u.ProfilePicture)
	set(&p.Profile.ProfileBanner, u.ProfileBanner)
	if u.Birthdate != nil {
		b := *u.Birthdate
		p.Profile.Birthdate = &b
	}
}
