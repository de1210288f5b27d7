package lshw

// Node is one entry in an lshw device tree. lshw output is loosely
// structured, so nodes stay as open maps and accessors tolerate missing
// or wrongly-typed fields instead of failing.
type Node map[string]any

// Str returns the string value for key, or "" when absent or not a string.
func (n Node) Str(key string) string {
	v, ok := n[key].(string)
	if !ok {
		return ""
	}
	return v
}

// Class returns the device class of the node ("disk", "memory", ...).
func (n Node) Class() string {
	return n.Str("class")
}

// Size returns the numeric size field in bytes. lshw emits sizes as JSON
// numbers; anything else is treated as absent.
func (n Node) Size() (int64, bool) {
	switch v := n["size"].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

// Config returns the nested configuration map, or nil.
func (n Node) Config() map[string]any {
	m, _ := n["configuration"].(map[string]any)
	return m
}

func asNode(v any) (Node, bool) {
	switch m := v.(type) {
	case Node:
		return m, true
	case map[string]any:
		return Node(m), true
	}
	return nil, false
}
