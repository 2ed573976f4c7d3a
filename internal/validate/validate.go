package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MinPasswordLen = 8
	MaxPasswordLen = 72
	MaxUsernameLen = 64
	MaxTitleLen    = 255
)

var v = validator.New()

// SignUpForm checks everything needed to create an account and reports every problem at once.
func SignUpForm(name, password, email string) error {
	return errors.Join(
		Username(name),
		Email(email),
		Password(password),
	)
}

func Password(password string) error {
	l := len(password)
	switch {
	case l == 0:
		return errors.New("empty password")
	case l < MinPasswordLen:
		return fmt.Errorf("password too short; min %d characters", MinPasswordLen)
	case l > MaxPasswordLen:
		return fmt.Errorf("password too long; max %d characters", MaxPasswordLen)
	}
	return nil
}

func Email(email string) error {
	if len(email) == 0 {
		return errors.New("empty email")
	}
	if err := v.Var(email, "email"); err != nil {
		return fmt.Errorf("invalid email %q", email)
	}
	return nil
}

func Username(username string) error {
	if l := len(username); l == 0 {
		return errors.New("empty username")
	} else if l > MaxUsernameLen {
		return fmt.Errorf("username too long; max %d characters", MaxUsernameLen)
	}
	if err := v.Var(username, "printascii,excludesall=@/"); err != nil || strings.Contains(username, " ") {
		return fmt.Errorf("invalid username %q", username)
	}
	return nil
}

// Title checks a page title taken from a URL, after underscores have been turned into spaces.
func Title(title string) error {
	if l := len(title); l == 0 {
		return errors.New("empty title")
	} else if l > MaxTitleLen {
		return fmt.Errorf("title too long; max %d bytes", MaxTitleLen)
	}
	if strings.ContainsAny(title, "#<>[]{}|") {
		return fmt.Errorf("title %q contains a forbidden character", title)
	}
	if strings.ContainsFunc(title, isControl) {
		return fmt.Errorf("title %q contains a control character", title)
	}
	return nil
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
