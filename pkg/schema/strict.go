package schema

import (
	"maps"
	"slices"
	"sort"
)

// Strictify rewrites normalized parameters in place to satisfy OpenAI structured-output
// strict mode, and returns them.
//
// Every object schema gets "additionalProperties": false and lists all of its properties
// in "required". A property that was not required before is made nullable instead, so the
// model can still leave it out by sending null: a "type" gains "null", and a schema without
// a "type" is wrapped as {"anyOf": [schema, {"type": "null"}]}. Nested property schemas,
// array items, composition branches and definitions are rewritten too.
func Strictify(m map[string]any) map[string]any {
	strictify(m)
	return m
}

func strictify(v any) {
	switch node := v.(type) {
	case map[string]any:
		props, hasProps := node["properties"].(map[string]any)
		if node["type"] == "object" || hasProps {
			wasRequired := requiredSet(node["required"])
			node["additionalProperties"] = false
			required := make([]any, 0, len(props))
			for _, name := range sortedKeys(props) {
				required = append(required, name)
				strictify(props[name])
				if prop, ok := props[name].(map[string]any); ok && !wasRequired[name] {
					allowNull(prop)
				}
			}
			node["required"] = required
		}
		for _, key := range []string{"items", "not"} {
			if child, ok := node[key]; ok {
				strictify(child)
			}
		}
		for _, key := range []string{"anyOf", "oneOf", "allOf", "prefixItems"} {
			if branches, ok := node[key].([]any); ok {
				for _, branch := range branches {
					strictify(branch)
				}
			}
		}
		for _, key := range []string{"$defs", "definitions"} {
			if defs, ok := node[key].(map[string]any); ok {
				for _, def := range defs {
					strictify(def)
				}
			}
		}
	case []any:
		for _, child := range node {
			strictify(child)
		}
	}
}

func requiredSet(v any) map[string]bool {
	set := map[string]bool{}
	switch names := v.(type) {
	case []any:
		for _, name := range names {
			if s, ok := name.(string); ok {
				set[s] = true
			}
		}
	case []string:
		for _, name := range names {
			set[name] = true
		}
	}
	return set
}

// allowNull widens a schema in place so that null is also accepted.
func allowNull(node map[string]any) {
	switch t := node["type"].(type) {
	case string:
		if t != "null" {
			node["type"] = []any{t, "null"}
			allowNullEnum(node)
		}
		return
	case []any:
		if !slices.Contains(t, any("null")) {
			node["type"] = append(t, "null")
			allowNullEnum(node)
		}
		return
	}

	if branches, ok := node["anyOf"].([]any); ok && len(node) == 1 {
		for _, branch := range branches {
			if b, ok := branch.(map[string]any); ok && b["type"] == "null" {
				return
			}
		}
		node["anyOf"] = append(branches, map[string]any{"type": "null"})
		return
	}
	inner := maps.Clone(node)
	clear(node)
	node["anyOf"] = []any{inner, map[string]any{"type": "null"}}
}

// an enum restricts values on top of the type, so null has to be listed there as well
func allowNullEnum(prop map[string]any) {
	if values, ok := prop["enum"].([]any); ok && !slices.Contains(values, nil) {
		prop["enum"] = append(values, nil)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
