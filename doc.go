// Package main provides the entry point for the unofitmx dashboard.
// It runs a web server using the Fiber framework that serves a small
// role-gated JSON API (system status, users, income overview, activity log)
// together with its single page client. The application uses gorm for data
// persistence and a static permission table for authorization.
package main
