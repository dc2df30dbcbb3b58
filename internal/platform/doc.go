package platform

// Package platform contains OS integration: locating the nearest existing
// path on disk and revealing it in the system file manager.
