package model

// Package model defines domain data structures used across the app: tracked
// champions, per-ability cooldown state, and countdown states. Structures are
// plain values owned by the roster; the UI only ever receives copies.
