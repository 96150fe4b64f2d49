// Package extract derives normalized sheet values from a D&D Beyond
// character. Every function tolerates missing data and falls back to a
// stated default instead of failing.
package extract
