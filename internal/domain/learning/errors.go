package learning

import "errors"

var (
	ErrModuleNotFound   = errors.New("learning module not found")
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrQuestionNotFound = errors.New("question not found")
)
