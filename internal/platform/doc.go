package platform

// Package platform contains OS integration glue: filesystem helpers for
// exported files and revealing them in the system file manager.
