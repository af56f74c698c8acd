package entities

import (
	"fmt"
	"strings"
	"time"
)

// MembershipTier represents a member's VIP programme level
type MembershipTier string

const (
	MembershipTierNone     MembershipTier = "none"
	MembershipTierSilver   MembershipTier = "silver"
	MembershipTierGold     MembershipTier = "gold"
	MembershipTierPlatinum MembershipTier = "platinum"
)

// ParseMembershipTier normalizes a stored tier value.
// An empty value means the member never joined and maps to none.
func ParseMembershipTier(value string) (MembershipTier, error) {
	switch tier := MembershipTier(strings.ToLower(strings.TrimSpace(value))); tier {
	case "":
		return MembershipTierNone, nil
	case MembershipTierNone, MembershipTierSilver, MembershipTierGold, MembershipTierPlatinum:
		return tier, nil
	default:
		return "", fmt.Errorf("unknown membership tier %q", value)
	}
}

// Role represents an account's permission level
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleVIP   Role = "vip"
)

// ParseRole normalizes a stored role value; empty maps to user
func ParseRole(value string) (Role, error) {
	switch role := Role(strings.ToLower(strings.TrimSpace(value))); role {
	case "":
		return RoleUser, nil
	case RoleUser, RoleAdmin, RoleVIP:
		return role, nil
	default:
		return "", fmt.Errorf("unknown role %q", value)
	}
}

// Profile represents a member's account record
type Profile struct {
	ID               string         `json:"id" db:"id"`
	Email            string         `json:"email" db:"email"`
	FullName         string         `json:"full_name,omitempty" db:"full_name"`
	Phone            string         `json:"phone,omitempty" db:"phone"`
	AvatarURL        string         `json:"avatar_url,omitempty" db:"avatar_url"`
	Role             Role           `json:"role" db:"role"`
	MembershipTier   MembershipTier `json:"membership_tier" db:"membership_tier"`
	MembershipExpiry *time.Time     `json:"membership_expiry,omitempty" db:"membership_expiry"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

// IsMember reports whether the profile holds any paid membership tier
func (p *Profile) IsMember() bool {
	return p != nil && p.MembershipTier != "" && p.MembershipTier != MembershipTierNone
}
