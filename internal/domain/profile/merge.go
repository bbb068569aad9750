package profile

import (
	"encoding/json"
	"fmt"
)

// Patch is a partial Profile update: top-level field name to raw JSON value.
// Fields absent from the patch keep their prior values; list-valued fields
// present in the patch replace the stored list wholesale.
type Patch map[string]json.RawMessage

// reserved keys a client must not control directly.
var reservedPatchKeys = map[string]bool{
	"lastSync": true,
	"_id":      true,
}

// Merge applies patch onto base and returns the merged document. base is not
// mutated. Unknown field names are ignored, matching the schemaless store the
// document originally lived in.
func Merge(base *Profile, patch Patch) (*Profile, error) {
	raw, err := json.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("marshal base profile: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode base profile: %w", err)
	}

	for key, value := range patch {
		if reservedPatchKeys[key] {
			continue
		}
		doc[key] = value
	}

	mergedRaw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal merged profile: %w", err)
	}

	merged := &Profile{}
	if err := json.Unmarshal(mergedRaw, merged); err != nil {
		return nil, fmt.Errorf("patch does not fit profile shape: %w", err)
	}
	merged.Normalize()
	return merged, nil
}
