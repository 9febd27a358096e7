package response

import (
	"terranova_lotes/internal/domain/views"
	"terranova_lotes/pkg"
)

// Envelope is the uniform body every endpoint answers with, success or
// failure. AffectedViews carries the view identifiers a client should
// refresh after a mutation.
type Envelope struct {
	Success       bool                `json:"success"`
	Message       string              `json:"message,omitempty"`
	Data          any                 `json:"data,omitempty"`
	Errors        map[string][]string `json:"errors,omitempty"`
	AffectedViews []string            `json:"affected_views,omitempty"`
}

func OK(message string, data any, affected []views.View) Envelope {
	return Envelope{
		Success:       true,
		Message:       message,
		Data:          data,
		AffectedViews: viewNames(affected),
	}
}

func Fail(appErr *pkg.AppError) Envelope {
	return Envelope{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.FieldErrors,
	}
}

func viewNames(affected []views.View) []string {
	if len(affected) == 0 {
		return nil
	}
	names := make([]string, len(affected))
	for i, v := range affected {
		names[i] = string(v)
	}
	return names
}
