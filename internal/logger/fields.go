package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldLocale is the structured log field key for the output locale.
	FieldLocale = "locale"
	// FieldVacancy is the structured log field key for the compared vacancy.
	FieldVacancy = "vacancy_id"
	// FieldResumes is the structured log field key for the selected resume ids.
	FieldResumes = "resumes"
)

// StringField is a key/value pair that becomes a zap string field when
// both sides are non-blank.
type StringField struct {
	Key   string
	Value string
}

// StringFields keeps the pairs with a non-blank key and value, trimmed.
// Comparison context such as an unset vacancy id is dropped this way instead
// of being logged as "".
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		key, value := strings.TrimSpace(f.Key), strings.TrimSpace(f.Value)
		if key == "" || value == "" {
			continue
		}
		result = append(result, zap.String(key, value))
	}
	return result
}

// WithFields returns logger extended with fields. Filtering steps and the
// saved-comparison exporter accept a nil logger, so nil becomes a no-op one.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// CommonFields describes the comparison being worked on. Empty values are left out.
func CommonFields(locale, vacancy string) []zap.Field {
	return StringFields(
		StringField{Key: FieldLocale, Value: locale},
		StringField{Key: FieldVacancy, Value: vacancy},
	)
}

// WithCommonFields attaches CommonFields to logger.
func WithCommonFields(logger *zap.Logger, locale, vacancy string) *zap.Logger {
	return WithFields(logger, CommonFields(locale, vacancy)...)
}

// Resumes is the field for a resume selection; nil when it is empty.
func Resumes(ids []string) []zap.Field {
	if len(ids) == 0 {
		return nil
	}
	return []zap.Field{zap.Strings(FieldResumes, ids)}
}
