// Package models defines the records persisted by the trainer.
package models

import (
	"strings"

	"github.com/dmitrijs2005/mockinterview/internal/common"
)

// ExperienceLevel is the seniority a user states at registration.
type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "Entry Level"
	ExperienceMid    ExperienceLevel = "Mid Level"
	ExperienceSenior ExperienceLevel = "Senior Level"
)

// ExperienceLevels lists the accepted levels in display order.
var ExperienceLevels = []ExperienceLevel{ExperienceEntry, ExperienceMid, ExperienceSenior}

// ParseExperienceLevel accepts a full label ("Mid Level") or its short tag
// ("mid"), ignoring case and surrounding blanks.
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, lvl := range ExperienceLevels {
		label := strings.ToLower(string(lvl))
		tag, _, _ := strings.Cut(label, " ")
		if v == label || v == tag {
			return lvl, nil
		}
	}
	return "", common.ErrInvalidExperienceLevel
}

// User is immutable after registration. Credential holds the encoded
// password hash, never the password itself.
type User struct {
	ID              int64
	UserName        string
	Credential      string
	ExperienceLevel ExperienceLevel
}
