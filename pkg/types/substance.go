// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the casresolve pipeline:
// identifiers read from the input file, lookup results written to the
// report, and the configuration handed to each stage.
package types

import "strings"

// Sentinel names written in place of a resolved name.
const (
	NameNotFound = "Not Found"
	NameAPIError = "API Error"
)

// MaxSynonyms is the number of synonyms kept per identifier.
const MaxSynonyms = 3

// SynonymSeparator joins the synonyms column of the report.
const SynonymSeparator = ", "

// Identifier is a CAS registry number as read from the input file.
type Identifier string

// NewIdentifier trims surrounding whitespace from raw.
func NewIdentifier(raw string) Identifier {
	return Identifier(strings.TrimSpace(raw))
}

// IsBlank reports whether the identifier is empty after trimming.
func (id Identifier) IsBlank() bool { return id == "" }

func (id Identifier) String() string { return string(id) }

// LookupStatus classifies how a lookup ended.
type LookupStatus string

const (
	StatusFound    LookupStatus = "found"
	StatusNotFound LookupStatus = "not_found"
	StatusAPIError LookupStatus = "api_error"
)

// LookupResult is the resolved name and synonyms for one identifier.
// Name is either Synonyms[0] or one of the sentinel names.
type LookupResult struct {
	// CAS is the identifier the result belongs to.
	CAS Identifier `json:"cas" yaml:"cas"`

	// Name is the first synonym, or NameNotFound / NameAPIError.
	Name string `json:"name" yaml:"name"`

	// Synonyms holds at most MaxSynonyms names in service order.
	Synonyms []string `json:"synonyms" yaml:"synonyms"`

	// Status records which branch produced the result.
	Status LookupStatus `json:"status" yaml:"status"`
}

// FoundResult builds a result from the synonyms returned by the service.
// An empty list yields a NameNotFound result.
func FoundResult(cas Identifier, synonyms []string) LookupResult {
	if len(synonyms) == 0 {
		return NotFoundResult(cas)
	}
	n := len(synonyms)
	if n > MaxSynonyms {
		n = MaxSynonyms
	}
	kept := make([]string, n)
	copy(kept, synonyms[:n])
	return LookupResult{CAS: cas, Name: kept[0], Synonyms: kept, Status: StatusFound}
}

// NotFoundResult is the result for a non-200 response or an empty synonym list.
func NotFoundResult(cas Identifier) LookupResult {
	return LookupResult{CAS: cas, Name: NameNotFound, Synonyms: []string{}, Status: StatusNotFound}
}

// APIErrorResult is the result for a transport or parse failure.
func APIErrorResult(cas Identifier) LookupResult {
	return LookupResult{CAS: cas, Name: NameAPIError, Synonyms: []string{}, Status: StatusAPIError}
}

// JoinedSynonyms returns the synonyms column value.
func (r LookupResult) JoinedSynonyms() string {
	return strings.Join(r.Synonyms, SynonymSeparator)
}
