package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chromedp/chromedp"
)

// Raw accessibility-tree types. The tree is fetched with a raw CDP call
// and decoded by hand to avoid cdproto deserialization issues with the
// Accessibility domain.

type rawAXNode struct {
	NodeID           string      `json:"nodeId"`
	Ignored          bool        `json:"ignored"`
	Role             *rawAXValue `json:"role"`
	Name             *rawAXValue `json:"name"`
	Properties       []rawAXProp `json:"properties"`
	BackendDOMNodeID int64       `json:"backendDOMNodeId"`
}

type rawAXValue struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

type rawAXProp struct {
	Name  string      `json:"name"`
	Value *rawAXValue `json:"value"`
}

func (v *rawAXValue) String() string {
	if v == nil || v.Value == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(v.Value, &s); err == nil {
		return s
	}
	// Number or bool
	return strings.Trim(string(v.Value), `"`)
}

// Roles that accept activation. Locating a control requires both the
// accessible name and one of these, so a StaticText that happens to
// read "Rectangle" never gets clicked.
var interactiveRoles = map[string]bool{
	"button": true, "link": true, "textbox": true, "searchbox": true,
	"combobox": true, "listbox": true, "option": true, "checkbox": true,
	"radio": true, "switch": true, "slider": true, "spinbutton": true,
	"menuitem": true, "menuitemcheckbox": true, "menuitemradio": true,
	"tab": true, "treeitem": true,
}

// control is an interactive element located by accessible name.
type control struct {
	Role          string
	Name          string
	Disabled      bool
	BackendNodeID int64
}

// fetchAXTree pulls the full accessibility tree for the current page.
func fetchAXTree(ctx context.Context) ([]rawAXNode, error) {
	var raw json.RawMessage
	if err := chromedp.Run(ctx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			return chromedp.FromContext(ctx).Target.Execute(ctx,
				"Accessibility.getFullAXTree", nil, &raw)
		}),
	); err != nil {
		return nil, fmt.Errorf("a11y tree: %w", err)
	}

	var resp struct {
		Nodes []rawAXNode `json:"nodes"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("parse a11y tree: %w", err)
	}
	return resp.Nodes, nil
}

// findControl scans the tree for an interactive node whose accessible
// name matches exactly. Returns false when absent or when the node has
// no backing DOM element to act on.
func findControl(nodes []rawAXNode, name string) (control, bool) {
	for _, n := range nodes {
		if n.Ignored {
			continue
		}
		role := n.Role.String()
		if !interactiveRoles[role] {
			continue
		}
		if n.Name.String() != name {
			continue
		}
		if n.BackendDOMNodeID == 0 {
			continue
		}

		c := control{Role: role, Name: name, BackendNodeID: n.BackendDOMNodeID}
		for _, prop := range n.Properties {
			if prop.Name == "disabled" && prop.Value.String() == "true" {
				c.Disabled = true
			}
		}
		return c, true
	}
	return control{}, false
}
