package export

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DeepMerge merges patch over base. Maps merge recursively with the patch
// value winning per key; any other kind of value is replaced wholesale,
// so lists are never concatenated. A nil patch value keeps the base.
func DeepMerge(base, patch interface{}) interface{} {
	baseMap, baseOK := base.(map[string]interface{})
	patchMap, patchOK := patch.(map[string]interface{})
	if baseOK && patchOK {
		out := make(map[string]interface{}, len(baseMap)+len(patchMap))
		for k, v := range baseMap {
			out[k] = v
		}
		for k, v := range patchMap {
			out[k] = DeepMerge(out[k], v)
		}
		return out
	}
	if patch != nil {
		return patch
	}
	return base
}

const generatorNote = "Generated by conops"

// BuildFullSpec merges the patch over a base mission profile. With no base
// the patch stands alone, unannotated; when a base was merged, the study
// section records the generator.
func BuildFullSpec(patch Patch, base map[string]interface{}) (map[string]interface{}, error) {
	raw, err := yaml.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("marshaling patch: %w", err)
	}
	var patchMap map[string]interface{}
	if err := yaml.Unmarshal(raw, &patchMap); err != nil {
		return nil, fmt.Errorf("rebuilding patch map: %w", err)
	}

	if base == nil {
		return patchMap, nil
	}

	merged, ok := DeepMerge(base, patchMap).(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("merged spec is not a mapping")
	}
	study, ok := merged["study"].(map[string]interface{})
	if !ok {
		study = make(map[string]interface{})
		merged["study"] = study
	}
	study["notes"] = generatorNote
	return merged, nil
}
