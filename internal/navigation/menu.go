// Package navigation holds the menu tree and the minimal page shells served
// for each route.
package navigation

import (
	"sort"
	"strings"
)

type Item struct {
	Label    string `json:"label"`
	Route    string `json:"route"`
	Tool     string `json:"tool,omitempty"` //assist operation behind the page
	Children []Item `json:"children,omitempty"`
}

type Group struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

var menu = []Group{
	{
		Name: "MAIN",
		Items: []Item{
			{Label: "Dashboard", Route: "/dashboard"},
		},
	},
	{
		Name: "SERVICES",
		Items: []Item{
			{
				Label: "Civil Law",
				Route: "/civil-menu-page",
				Children: []Item{
					{Label: "BNS Search", Route: "/bns-search", Tool: "ipc-classifier"},
					{Label: "HeadNote Generator", Route: "/headnote-generation", Tool: "headnote"},
					{Label: "Summarizer", Route: "/summarizer", Tool: "text-summarizer"},
					{Label: "Legal Assistant", Route: "/legal-assistant", Tool: "upload-document"},
					{Label: "Lex Citation", Route: "/lex-citation", Tool: "legal-research"},
				},
			},
			{
				Label: "Corporate Law",
				Route: "/corporate-menu-page",
				Children: []Item{
					{Label: "AI Contract Navigator", Route: "/ai-contract-generator"},
					{Label: "Legal Lens", Route: "/legal-lens", Tool: "legal-lens"},
					{Label: "Summarise Contract", Route: "/summarise-contract", Tool: "summarize-contract"},
					{Label: "Compare Contract", Route: "/compare-contract", Tool: "compare-contracts"},
					{Label: "Recommend Clause", Route: "/recommend-clause", Tool: "recommend-clauses"},
					{Label: "Identify Risk", Route: "/identify-risk"},
					{Label: "Review Contract", Route: "/review-contract"},
				},
			},
		},
	},
	{
		Name: "OTHERS",
		Items: []Item{
			{Label: "Storage", Route: "/storage"},
			{Label: "Profile", Route: "/profile"},
		},
	},
}

// pages that are gated but not in the menu
var unlisted = []Item{
	{Label: "Contract Generator", Route: "/contract-generator"},
	{Label: "Employee Agreement", Route: "/employee-agreement", Tool: "employee-agreement"},
	{Label: "Lease Contract", Route: "/lease-contract"},
	{Label: "NDA", Route: "/nda", Tool: "nda"},
}

// Menu returns a copy of the menu tree.
func Menu() []Group {
	out := make([]Group, len(menu))
	for i, g := range menu {
		out[i] = Group{Name: g.Name, Items: copyItems(g.Items)}
	}
	return out
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = item
		if item.Children != nil {
			out[i].Children = copyItems(item.Children)
		}
	}
	return out
}

// Pages flattens the menu plus the unlisted pages.
func Pages() []Item {
	var pages []Item
	var walk func(items []Item)
	walk = func(items []Item) {
		for _, item := range items {
			pages = append(pages, Item{Label: item.Label, Route: item.Route, Tool: item.Tool})
			walk(item.Children)
		}
	}
	for _, g := range menu {
		walk(g.Items)
	}
	walk(unlisted)
	return pages
}

func Lookup(route string) (Item, bool) {
	for _, p := range Pages() {
		if p.Route == route {
			return p, true
		}
	}
	return Item{}, false
}

// ProtectedPrefixes is every page route, sorted.
func ProtectedPrefixes() []string {
	seen := make(map[string]bool)
	var prefixes []string
	for _, p := range Pages() {
		if !seen[p.Route] {
			seen[p.Route] = true
			prefixes = append(prefixes, p.Route)
		}
	}
	sort.Strings(prefixes)
	return prefixes
}

func IsProtected(path string) bool {
	for _, prefix := range ProtectedPrefixes() {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
