package codec

import (
	"fmt"

	"github.com/SpaceArchitect/tudat/internal/propspec"
	"github.com/SpaceArchitect/tudat/internal/proptree"
)

// MergeExportVariables collects the variables of all export targets into one
// list, removing duplicates by identity. Targets are visited in declaration
// order, each target's variables in declaration order, and the first
// occurrence of each identity keeps its position.
func MergeExportVariables(sets []propspec.ExportSet) []propspec.Variable {
	seen := map[string]bool{}
	var merged []propspec.Variable
	for _, set := range sets {
		for _, v := range set.Variables {
			id := v.ID()
			if seen[id] {
				continue
			}
			seen[id] = true
			merged = append(merged, v)
		}
	}
	return merged
}

// decodeExport reads the export-target list, if declared.
func decodeExport(tree proptree.Object) ([]propspec.ExportSet, error) {
	if !tree.HasPath(KeyExport) {
		return nil, nil
	}
	list, err := tree.ListAt(KeyExport)
	if err != nil {
		return nil, err
	}

	sets := make([]propspec.ExportSet, 0, len(list))
	for i, elem := range list {
		path := fmt.Sprintf("%s.%d", KeyExport, i)
		obj, ok := elem.(proptree.Object)
		if !ok {
			return nil, &proptree.KeyError{Path: path, Message: fmt.Sprintf("expected object, found %T", elem)}
		}
		set, err := decodeExportSet(obj, path)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func decodeExportSet(obj proptree.Object, path string) (propspec.ExportSet, error) {
	var set propspec.ExportSet

	file, err := obj.StringAt(KeyFile)
	if err != nil {
		return set, err
	}
	set.File = file

	if set.Header, err = obj.BoolAtOr(KeyHeader, false); err != nil {
		return set, err
	}
	if set.EpochsInFirstColumn, err = obj.BoolAtOr(KeyEpochsInFirstColumn, true); err != nil {
		return set, err
	}

	vars, err := obj.ListAt(KeyVariables)
	if err != nil {
		return set, err
	}
	for i, elem := range vars {
		varPath := fmt.Sprintf("%s.%s.%d", path, KeyVariables, i)
		varObj, ok := elem.(proptree.Object)
		if !ok {
			return set, &proptree.KeyError{Path: varPath, Message: fmt.Sprintf("expected object, found %T", elem)}
		}
		v, err := decodeVariable(varObj, varPath)
		if err != nil {
			return set, err
		}
		set.Variables = append(set.Variables, v)
	}
	return set, nil
}

// decodeVariable reads one derived-quantity description.
func decodeVariable(obj proptree.Object, path string) (propspec.Variable, error) {
	var v propspec.Variable

	quantity, err := obj.StringAt(KeyQuantity)
	if err != nil {
		return v, &proptree.KeyError{Path: proptree.Join(path, KeyQuantity), Message: "not defined"}
	}
	body, err := obj.StringAt(KeyBody)
	if err != nil {
		return v, &proptree.KeyError{Path: proptree.Join(path, KeyBody), Message: "not defined"}
	}
	relative, err := obj.StringAtOr(KeyRelativeBody, "")
	if err != nil {
		return v, err
	}

	v.Quantity = quantity
	v.Body = body
	v.RelativeBody = relative
	return v, nil
}

// encodeExport writes the export-target list.
func encodeExport(sets []propspec.ExportSet) proptree.List {
	list := make(proptree.List, len(sets))
	for i, set := range sets {
		vars := make(proptree.List, len(set.Variables))
		for j, v := range set.Variables {
			vars[j] = encodeVariable(v)
		}
		obj := proptree.Object{
			KeyFile:      proptree.String(set.File),
			KeyVariables: vars,
		}
		if set.Header {
			obj[KeyHeader] = proptree.Bool(true)
		}
		if !set.EpochsInFirstColumn {
			obj[KeyEpochsInFirstColumn] = proptree.Bool(false)
		}
		list[i] = obj
	}
	return list
}

func encodeVariable(v propspec.Variable) proptree.Object {
	obj := proptree.Object{
		KeyQuantity: proptree.String(v.Quantity),
		KeyBody:     proptree.String(v.Body),
	}
	if v.RelativeBody != "" {
		obj[KeyRelativeBody] = proptree.String(v.RelativeBody)
	}
	return obj
}
