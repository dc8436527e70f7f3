package util

import "errors"

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrInvalidResetToken    = errors.New("invalid or expired reset token")
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrQuizHasNoQuestions   = errors.New("quiz has no questions")
	ErrUnknownQuestion      = errors.New("answer references a question outside this quiz")
	ErrEnrollmentNotFound   = errors.New("enrollment not found for user and schedule")
	ErrEnrollmentExists     = errors.New("user already enrolled in this schedule")
	ErrUnknownHari          = errors.New("unknown day name")
	ErrAttendanceClosed     = errors.New("attendance window is closed")
	ErrAttendanceDuplicate  = errors.New("attendance already submitted this week")
	ErrInvalidStatusAbsensi = errors.New("invalid attendance status")
	ErrCorrectAnswerMissing = errors.New("correct_answer is not one of the option keys")
)
