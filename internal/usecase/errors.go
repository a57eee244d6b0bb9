package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternal            = errors.New("internal error")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrSkillAlreadyClaimed = errors.New("user already has this skill")
	ErrUnknownReference    = errors.New("referenced user or skill does not exist")
)
