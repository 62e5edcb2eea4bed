package compare

import "errors"

var (
	ErrInvalidRange                = errors.New("invalid match range")
	ErrInvalidSortKey              = errors.New("invalid sort key")
	ErrInvalidDirection            = errors.New("invalid sort direction")
	ErrInvalidRecord               = errors.New("invalid match record")
	ErrTooManyResumes              = errors.New("too many resumes selected")
	ErrInsufficientResumes         = errors.New("not enough resumes selected")
	ErrInsufficientResumesForShare = errors.New("not enough resumes selected to share")
	ErrUnknownAction               = errors.New("unknown comparison action")
	ErrInvalidResumeID             = errors.New("invalid resume id")
)
