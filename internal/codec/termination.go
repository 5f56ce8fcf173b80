package codec

import (
	"fmt"

	"github.com/SpaceArchitect/tudat/internal/propspec"
	"github.com/SpaceArchitect/tudat/internal/proptree"
)

// ComposeTermination builds the effective termination condition from the
// user-declared condition (nil when none) and the declared final epoch (nil
// when none).
//
// A time condition is synthesized from the final epoch when the user
// declared no condition at all, or when a final epoch is declared and no
// time condition is present among the user's conditions. One user condition
// plus one synthesized condition combine into a fulfil-any hybrid; a single
// candidate is returned verbatim.
func ComposeTermination(user propspec.Termination, finalEpoch *float64) (propspec.Termination, error) {
	var candidates []propspec.Termination
	if user != nil {
		candidates = append(candidates, user)
	}

	if user == nil || (finalEpoch != nil && !hasDirectTimeCondition(user)) {
		if finalEpoch == nil {
			return nil, &proptree.KeyError{Path: KeyFinalEpoch, Message: "not defined"}
		}
		candidates = append(candidates, &propspec.TimeTermination{Epoch: *finalEpoch})
	}

	if len(candidates) == 1 {
		return candidates[0], nil
	}
	return &propspec.HybridTermination{Conditions: candidates, FulfilAny: true}, nil
}

// hasDirectTimeCondition reports whether the condition is a time condition
// or a hybrid with a time condition among its direct children. Deliberately
// inspects one nesting level only: deepening the check silently changes
// which user conditions get merged with the synthesized one.
func hasDirectTimeCondition(t propspec.Termination) bool {
	switch cond := t.(type) {
	case *propspec.TimeTermination:
		return true
	case *propspec.HybridTermination:
		for _, child := range cond.Conditions {
			if _, ok := child.(*propspec.TimeTermination); ok {
				return true
			}
		}
	}
	return false
}

// FirstTimeEpoch returns the epoch of the first time condition found in a
// depth-first traversal of the condition tree, or false when the tree
// contains none.
func FirstTimeEpoch(t propspec.Termination) (float64, bool) {
	switch cond := t.(type) {
	case *propspec.TimeTermination:
		return cond.Epoch, true
	case *propspec.HybridTermination:
		for _, child := range cond.Conditions {
			if epoch, ok := FirstTimeEpoch(child); ok {
				return epoch, true
			}
		}
	}
	return 0, false
}

// decodeTermination decodes a termination-condition object, recursing into
// hybrid children.
func decodeTermination(obj proptree.Object, path string) (propspec.Termination, error) {
	condType, err := obj.StringAt(KeyConditionType)
	if err != nil {
		return nil, &proptree.KeyError{Path: proptree.Join(path, KeyConditionType), Message: "not defined"}
	}

	switch condType {
	case ConditionTime:
		epoch, err := obj.FloatAt(KeyEpoch)
		if err != nil {
			return nil, err
		}
		return &propspec.TimeTermination{Epoch: epoch}, nil

	case ConditionVariable:
		varObj, err := obj.ObjectAt(KeyVariable)
		if err != nil {
			return nil, err
		}
		variable, err := decodeVariable(varObj, proptree.Join(path, KeyVariable))
		if err != nil {
			return nil, err
		}
		limit, err := obj.FloatAt(KeyLimit)
		if err != nil {
			return nil, err
		}
		lower, err := obj.BoolAtOr(KeyUseAsLowerLimit, false)
		if err != nil {
			return nil, err
		}
		return &propspec.VariableTermination{
			Variable:        variable,
			Limit:           limit,
			UseAsLowerLimit: lower,
		}, nil

	case ConditionHybrid:
		children, err := obj.ListAt(KeyConditions)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return nil, &proptree.KeyError{Path: proptree.Join(path, KeyConditions), Message: "must not be empty"}
		}
		fulfilAny, err := obj.BoolAtOr(KeyFulfilAny, true)
		if err != nil {
			return nil, err
		}
		hybrid := &propspec.HybridTermination{FulfilAny: fulfilAny}
		for i, child := range children {
			childPath := fmt.Sprintf("%s.%s.%d", path, KeyConditions, i)
			childObj, ok := child.(proptree.Object)
			if !ok {
				return nil, &proptree.KeyError{Path: childPath, Message: fmt.Sprintf("expected object, found %T", child)}
			}
			cond, err := decodeTermination(childObj, childPath)
			if err != nil {
				return nil, err
			}
			hybrid.Conditions = append(hybrid.Conditions, cond)
		}
		return hybrid, nil

	default:
		return nil, &proptree.KeyError{
			Path:    proptree.Join(path, KeyConditionType),
			Message: fmt.Sprintf("unknown termination condition type %q", condType),
		}
	}
}

// encodeTermination writes a termination condition back as a tree object,
// recursing into hybrid children.
func encodeTermination(t propspec.Termination) (proptree.Object, error) {
	switch cond := t.(type) {
	case *propspec.TimeTermination:
		return proptree.Object{
			KeyConditionType: proptree.String(ConditionTime),
			KeyEpoch:         proptree.Number(cond.Epoch),
		}, nil

	case *propspec.VariableTermination:
		obj := proptree.Object{
			KeyConditionType: proptree.String(ConditionVariable),
			KeyVariable:      encodeVariable(cond.Variable),
			KeyLimit:         proptree.Number(cond.Limit),
		}
		if cond.UseAsLowerLimit {
			obj[KeyUseAsLowerLimit] = proptree.Bool(true)
		}
		return obj, nil

	case *propspec.HybridTermination:
		children := make(proptree.List, len(cond.Conditions))
		for i, child := range cond.Conditions {
			enc, err := encodeTermination(child)
			if err != nil {
				return nil, err
			}
			children[i] = enc
		}
		return proptree.Object{
			KeyConditionType: proptree.String(ConditionHybrid),
			KeyConditions:    children,
			KeyFulfilAny:     proptree.Bool(cond.FulfilAny),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported termination condition type %T", t)
	}
}
