package mcgen

// Json is any JSON-compatible shorthand value accepted by the normalizers:
// a string, a number, a bool, a JsonObject, a []any sequence (arbitrarily
// nested), or nil as the absent marker.
type Json = any

// JsonObject is one canonical document or document fragment. Absent optional
// fields are omitted entirely; nil values only appear when raw passthrough
// input contained them, and the writer strips them before serialization.
type JsonObject = map[string]any

// DefaultDomain is the domain inferred when an identifier carries none.
const DefaultDomain = "minecraft"
