package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Invalidf returns ErrInvalidArgument with description.
func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// ValidateUsername checks length and charset of profile name.
func ValidateUsername(name string) error {
	n := utf8.RuneCountInString(name)

	switch {
	case n == 0:
		return Invalidf("username is required")
	case n < entities.MinUsernameLength:
		return Invalidf("username must be at least %d characters", entities.MinUsernameLength)
	case n > entities.MaxUsernameLength:
		return Invalidf("username must be at most %d characters", entities.MaxUsernameLength)
	case !usernameRe.MatchString(name):
		return Invalidf("username may contain only letters, numbers, underscores and hyphens")
	}

	return nil
}

// ValidatePost checks post content.
func ValidatePost(t entities.PostType, description, url string) error {
	if t > entities.VideoPost {
		return Invalidf("unknown post type %d", t)
	}

	if utf8.RuneCountInString(description) > entities.MaxPostDescription {
		return Invalidf("description must be at most %d characters", entities.MaxPostDescription)
	}

	if t == entities.TextPost && strings.TrimSpace(description) == "" {
		return Invalidf("text post requires description")
	}

	if t != entities.TextPost && strings.TrimSpace(url) == "" {
		return Invalidf("%s post requires content url", t)
	}

	return nil
}

// ValidateText checks required text field.
func ValidateText(field, s string, max int) error {
	if strings.TrimSpace(s) == "" {
		return Invalidf("%s is required", field)
	}
	if utf8.RuneCountInString(s) > max {
		return Invalidf("%s must be at most %d characters", field, max)
	}
	return nil
}

// ValidateAddress ...
func ValidateAddress(field string, a common.Address) error {
	if a == (common.Address{}) {
		return Invalidf("%s must not be zero address", field)
	}
	return nil
}

// ValidateIndex ...
func ValidateIndex(field string, i int) error {
	if i < 0 {
		return Invalidf("%s must not be negative", field)
	}
	return nil
}
