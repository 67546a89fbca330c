package model

// Package model defines domain data structures used across the app: the image
// status enumeration shared by all file checks and the per-image check record
// rendered by the UI and the CLI report.
