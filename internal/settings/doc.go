package settings

// Package settings describes the backend configuration form: its sections and
// fields, the storefront and language pickers, how stored values are shown in
// widgets, and how edited strings are coerced back to typed JSON values before
// they are submitted.
