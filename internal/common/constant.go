// Package common contains shared constants and sentinel errors used across
// forestadmin components.
package common

// ResultCodeOK is the RESULT_CODE value the backend reports on success.
const ResultCodeOK = "00"

// Flag values the backend uses for Y/N columns.
const (
	FlagYes = "Y"
	FlagNo  = "N"
)
