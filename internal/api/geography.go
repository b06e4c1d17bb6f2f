package api

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

// StateCount is the per-state user split.
type StateCount struct {
	Clients int `json:"clients"`
	Lawyers int `json:"lawyers"`
}

// GeographyData maps state keys to counts. The API is loose about the
// key: it may be a USPS code or a full state name, so callers should
// run it through NormalizeGeography first.
type GeographyData map[string]StateCount

// Geography fetches the per-state distribution.
func (c *Client) Geography(ctx context.Context) (GeographyData, error) {
	var resp struct {
		Data GeographyData `json:"data"`
	}
	if err := c.Get(ctx, "/admin/geography", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

var stateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming", "DC": "District of Columbia",
}

var stateNameToAbbr = func() map[string]string {
	m := make(map[string]string, len(stateNames))
	for abbr, name := range stateNames {
		m[strings.ToLower(name)] = abbr
	}
	return m
}()

var abbrPattern = regexp.MustCompile(`^[A-Z]{2}$`)

// StateName returns the full name for a USPS code, or the code itself
// when unknown.
func StateName(abbr string) string {
	if name, ok := stateNames[abbr]; ok {
		return name
	}
	return abbr
}

// NormalizeGeography folds full state names into USPS codes, merging
// counts when the API reports the same state under both forms.
func NormalizeGeography(raw GeographyData) GeographyData {
	merged := GeographyData{}
	for key, value := range raw {
		trimmed := strings.TrimSpace(key)
		abbr := trimmed
		if !abbrPattern.MatchString(trimmed) {
			if a, ok := stateNameToAbbr[strings.ToLower(trimmed)]; ok {
				abbr = a
			}
		}
		count := merged[abbr]
		count.Clients += value.Clients
		count.Lawyers += value.Lawyers
		merged[abbr] = count
	}
	return merged
}

// StateRow is one row of the geography table.
type StateRow struct {
	State   string
	Name    string
	Clients int
	Lawyers int
	Total   int
}

// SortedStates flattens normalized geography data into rows ordered by
// total count, largest first.
func SortedStates(data GeographyData) []StateRow {
	rows := make([]StateRow, 0, len(data))
	for state, count := range data {
		rows = append(rows, StateRow{
			State:   state,
			Name:    StateName(state),
			Clients: count.Clients,
			Lawyers: count.Lawyers,
			Total:   count.Clients + count.Lawyers,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].State < rows[j].State
	})
	return rows
}
