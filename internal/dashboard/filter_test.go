package dashboard

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bizdash/internal/constants"
	"bizdash/internal/storage"
	"bizdash/internal/storage/sample"
)

func customerFixture() []storage.Customer {
	return []storage.Customer{
		{ID: 1, Name: "Acme Corporation", Contact: "John Smith", Email: "john@acme.com", Status: constants.CustomerActive},
		{ID: 2, Name: "Global Industries", Contact: "Sarah Johnson", Email: "sarah@global.com", Status: constants.CustomerActive},
		{ID: 3, Name: "Tech Solutions Ltd", Contact: "Michael Brown", Email: "michael@techsolutions.com", Status: constants.CustomerInactive},
	}
}

func names(cs []storage.Customer) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func TestFilter_SearchTech(t *testing.T) {
	got := Filter(customerFixture(), Query{Search: "tech", Status: constants.FilterAll})
	assert.Equal(t, []string{"Tech Solutions Ltd"}, names(got))
}

func TestFilter_StatusActive(t *testing.T) {
	got := Filter(customerFixture(), Query{Status: constants.CustomerActive})
	assert.Equal(t, []string{"Acme Corporation", "Global Industries"}, names(got))
}

func TestFilter_StatusIsCaseSensitive(t *testing.T) {
	got := Filter(customerFixture(), Query{Status: "active"})
	assert.Empty(t, got)
}

func TestFilter_EmptyStatusMeansAll(t *testing.T) {
	assert.Len(t, Filter(customerFixture(), Query{}), 3)
	assert.Len(t, Filter(customerFixture(), Query{Status: constants.FilterAll}), 3)
}

func TestFilter_SearchMatchesAnySearchableField(t *testing.T) {
	cases := map[string][]string{
		"SARAH":     {"Global Industries"},
		"@acme.com": {"Acme Corporation"},
		"o":         {"Acme Corporation", "Global Industries", "Tech Solutions Ltd"},
		"zzz":       {},
	}
	for search, want := range cases {
		t.Run(search, func(t *testing.T) {
			got := names(Filter(customerFixture(), Query{Search: search}))
			assert.ElementsMatch(t, want, got)
		})
	}
}

func TestFilter_PhoneIsNotSearchable(t *testing.T) {
	cs := []storage.Customer{{ID: 1, Name: "A", Phone: "+1 555-123-4567", Status: constants.CustomerActive}}
	assert.Empty(t, Filter(cs, Query{Search: "555"}))
}

// Search with "All" returns exactly the records with a substring hit in some field.
func TestFilter_SearchIsExactlyTheSubstringSet(t *testing.T) {
	ds := sample.Default()
	for _, search := range []string{"", "a", "E", "ltd", "corp", "industries", "x", "  "} {
		got := Filter(ds.Tickets, Query{Search: search, Status: constants.FilterAll})

		var want []storage.Ticket
		for _, tk := range ds.Tickets {
			for _, f := range tk.SearchFields() {
				if strings.Contains(strings.ToLower(f), strings.ToLower(search)) {
					want = append(want, tk)
					break
				}
			}
		}
		assert.Equal(t, len(want), len(got), "search %q", search)
		assert.Subset(t, want, got)
	}
}

// A status filter yields exactly the records with that status, a subset of the unfiltered set.
func TestFilter_StatusIsExactlyTheStatusSet(t *testing.T) {
	ds := sample.Default()
	all := Filter(ds.Orders, Query{})
	for _, s := range constants.OrderStatuses {
		got := Filter(ds.Orders, Query{Status: s})
		assert.Subset(t, all, got)

		n := 0
		for _, o := range ds.Orders {
			if o.Status == s {
				n++
			}
		}
		assert.Len(t, got, n, "status %q", s)
		for _, o := range got {
			assert.Equal(t, s, o.Status)
		}
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	cs := customerFixture()
	_ = Filter(cs, Query{Search: "tech"})
	assert.Equal(t, customerFixture(), cs)
}

func TestParseQuery(t *testing.T) {
	v := url.Values{}
	v.Set("search", "  tech ")
	v.Set("status", "Active")

	assert.Equal(t, Query{Search: "  tech ", Status: "Active"}, ParseQuery(v))
	assert.Equal(t, Query{}, ParseQuery(url.Values{}))
}

func TestFilter_ParsedSearchKeepsSpaces(t *testing.T) {
	cases := []struct {
		search string
		want   []string
	}{
		{search: "ltd ", want: []string{}},
		{search: " ltd", want: []string{"Tech Solutions Ltd"}},
		{search: "   ", want: []string{}},
		{search: " ", want: []string{"Acme Corporation", "Global Industries", "Tech Solutions Ltd"}},
	}

	for _, tc := range cases {
		t.Run(strings.ReplaceAll(tc.search, " ", "_"), func(t *testing.T) {
			got := Filter(customerFixture(), ParseQuery(url.Values{"search": {tc.search}}))
			assert.Equal(t, tc.want, names(got))
		})
	}
}
