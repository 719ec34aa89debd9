package model

// FieldErrors maps a request field name to what is wrong with it.
type FieldErrors map[string]string

const (
	errRequired = "this field is required"
	errBlank    = "this field may not be blank"
)

func requireString(errs FieldErrors, field string, value *string, partial bool) {
	if value == nil {
		if !partial {
			errs[field] = errRequired
		}
		return
	}
	if *value == "" {
		errs[field] = errBlank
	}
}
