package service

import (
	"strings"
	"time"

	"coverage_migrator/internal/domain"
)

// matchPolicy decides whether an existing coverage record plausibly
// represents the same real-world item as a freshly mapped payload. The
// predicates are approximate; keeping them named and separate from the
// orchestration loop lets them be tightened independently.
type matchPolicy func(candidate *domain.Coverage, payload *domain.CoverageCreateRequest) bool

// policyFor returns the legacy-match policy for a medium type group.
// Print coverage has no stable URL, so it matches on normalized headline
// plus same-calendar-day publication; everything else matches on URL
// equality.
func policyFor(group domain.MediumTypeGroup) matchPolicy {
	if group == domain.MediumTypeGroupPrint {
		return matchPrint
	}
	return matchByURL
}

func matchByURL(candidate *domain.Coverage, payload *domain.CoverageCreateRequest) bool {
	if payload.URL == nil || candidate.URL == nil {
		return false
	}
	return *candidate.URL == *payload.URL
}

func matchPrint(candidate *domain.Coverage, payload *domain.CoverageCreateRequest) bool {
	if normalizeHeadline(candidate.Headline) != normalizeHeadline(payload.Headline) {
		return false
	}
	return sameCalendarDay(candidate.PublishedAt, payload.PublishedAt)
}

// normalizeHeadline trims, case-folds, and collapses runs of whitespace
// so that cosmetic differences between sync runs don't defeat the match.
func normalizeHeadline(headline string) string {
	return strings.ToLower(strings.Join(strings.Fields(headline), " "))
}

func sameCalendarDay(a, b string) bool {
	timeA, errA := time.Parse(time.RFC3339, a)
	timeB, errB := time.Parse(time.RFC3339, b)
	if errA != nil || errB != nil {
		return false
	}

	yearA, monthA, dayA := timeA.UTC().Date()
	yearB, monthB, dayB := timeB.UTC().Date()
	return yearA == yearB && monthA == monthB && dayA == dayB
}

// searchFilterFor builds the destination-side filter narrowing the
// candidate set before the policy is applied client-side.
func searchFilterFor(group domain.MediumTypeGroup, payload *domain.CoverageCreateRequest) map[string]any {
	if group == domain.MediumTypeGroupPrint {
		if payload.Headline == "" {
			return nil
		}
		return map[string]any{"headline": map[string]any{"$eq": payload.Headline}}
	}

	if payload.URL == nil {
		return nil
	}
	return map[string]any{"url": map[string]any{"$eq": *payload.URL}}
}
