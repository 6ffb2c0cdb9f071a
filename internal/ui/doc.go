// Package ui holds the color themes shared by the CLI and the dashboard.
// A theme is chosen once per run with Select; CLI output reads the ANSI
// palette through the role helpers and the dashboard reads Current().Dashboard.
package ui
