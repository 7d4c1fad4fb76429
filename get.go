package mcgen

// Get fetches an optional key from a mapping. If the key is absent the
// default is returned untransformed. If the key is present and a transform is
// supplied, the transform is applied and its error propagated. This is the
// uniform optional-field idiom the dialect normalizers use to keep output
// mappings free of placeholder entries for absent input fields.
func Get(m JsonObject, key string, def Json, fn func(Json) (Json, error)) (Json, error) {
	v, ok := m[key]
	if !ok {
		return def, nil
	}
	if fn == nil {
		return v, nil
	}
	return fn(v)
}

// SetFrom copies key from src into dst when present, applying the optional
// transform. Absent keys leave dst untouched, so optional fields are built by
// omission rather than stripped later.
func SetFrom(dst, src JsonObject, key string, fn func(Json) (Json, error)) error {
	v, ok := src[key]
	if !ok {
		return nil
	}
	if fn != nil {
		mapped, err := fn(v)
		if err != nil {
			return err
		}
		v = mapped
	}
	dst[key] = v
	return nil
}
