package core

// convert.go provides the cell-level rules applied to campaign data.
//
// Every function here is pure and total: it never fails and never looks at
// more than the cells it is given. Missing values are reported through an ok
// flag or an invalid pgtype value so callers can emit the missing marker.

import (
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// CampaignYear is the year every last contact date falls in.
const CampaignYear = 2022

// contactDateLayout parses candidates such as "2022-may-15".
// Month abbreviations match case-insensitively.
const contactDateLayout = "2006-Jan-2"

// dateOutputLayout is the format written to campaign.csv.
const dateOutputLayout = "2006-01-02"

// NormalizeJob drops every "." and replaces every "-" with "_".
//
//	"admin."       -> "admin"
//	"blue-collar." -> "blue_collar"
func NormalizeJob(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, "-", "_")
}

// NormalizeEducation replaces every "." with "_". A result of "unknown" is
// reported as missing (ok == false).
func NormalizeEducation(s string) (string, bool) {
	s = strings.ReplaceAll(s, ".", "_")
	if s == "unknown" {
		return "", false
	}
	return s, true
}

// Flag returns 1 when value is exactly match and 0 otherwise.
// No trimming or case folding is applied.
func Flag(value, match string) int {
	if value == match {
		return 1
	}
	return 0
}

// ContactDateCandidate joins month and day into the text parsed by
// LastContactDate, e.g. ("may", "15") -> "2022-may-15".
func ContactDateCandidate(month, day string) string {
	return strconv.Itoa(CampaignYear) + "-" + month + "-" + day
}

// LastContactDate builds the candidate string for month and day and parses it.
// Any combination that is not a real calendar date in CampaignYear, including
// empty parts, yields an invalid (missing) date.
func LastContactDate(month, day string) pgtype.Date {
	candidate := ContactDateCandidate(month, day)

	t, err := time.Parse(contactDateLayout, candidate)
	if err != nil || t.Year() != CampaignYear {
		return pgtype.Date{Valid: false}
	}
	return pgtype.Date{Time: t, Valid: true}
}

// FormatDate renders a valid date as YYYY-MM-DD.
// Returns ok == false for an invalid date.
func FormatDate(d pgtype.Date) (string, bool) {
	if !d.Valid {
		return "", false
	}
	return d.Time.Format(dateOutputLayout), true
}
