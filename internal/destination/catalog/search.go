// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package catalog

const (
	qualifiedNameAttribute = "qualifiedName"
	typeNameField          = "__typeName.keyword"
	stateField             = "__state"
	guidField              = "__guid"
	activeState            = "ACTIVE"
)

// searchRequest is the body of the index search endpoint.
type searchRequest struct {
	DSL          searchDSL `json:"dsl"`
	Attributes   []string  `json:"attributes"`
	SuppressLogs bool      `json:"suppressLogs"`
}

type searchDSL struct {
	From  int              `json:"from"`
	Size  int              `json:"size"`
	Query map[string]any   `json:"query"`
	Sort  []map[string]any `json:"sort"`
}

type searchResponse struct {
	ApproximateCount int            `json:"approximateCount"`
	Entities         []searchEntity `json:"entities"`
}

type searchEntity struct {
	TypeName   string `json:"typeName"`
	GUID       string `json:"guid"`
	Attributes struct {
		QualifiedName string `json:"qualifiedName"`
	} `json:"attributes"`
}

// newSearchRequest selects one page of the active assets of typeName, sorted by guid
// so that pages are stable.
func newSearchRequest(typeName string, from, size int) *searchRequest {
	return &searchRequest{
		DSL: searchDSL{
			From: from,
			Size: size,
			Query: map[string]any{
				"bool": map[string]any{
					"filter": []any{
						term(typeNameField, typeName),
						term(stateField, activeState),
					},
				},
			},
			Sort: []map[string]any{
				{guidField: map[string]any{"order": "asc"}},
			},
		},
		Attributes:   []string{qualifiedNameAttribute},
		SuppressLogs: true,
	}
}

func term(field, value string) map[string]any {
	return map[string]any{
		"term": map[string]any{
			field: map[string]any{"value": value},
		},
	}
}
