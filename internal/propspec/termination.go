package propspec

// Termination is a sealed interface over the recursive termination-condition
// variant. Only TimeTermination, VariableTermination, and HybridTermination
// implement it. The variant forms a finite tree; hybrids nest arbitrarily
// deep but never cyclically.
type Termination interface {
	termination() // Sealed - only these types implement it
}

// TimeTermination stops propagation once the independent variable reaches
// Epoch.
type TimeTermination struct {
	Epoch float64
}

func (*TimeTermination) termination() {}

// VariableTermination stops propagation once a dependent variable crosses
// Limit. UseAsLowerLimit selects the crossing direction: when true the
// condition fires as the variable drops below Limit.
type VariableTermination struct {
	Variable        Variable
	Limit           float64
	UseAsLowerLimit bool
}

func (*VariableTermination) termination() {}

// HybridTermination combines child conditions. With FulfilAny set,
// propagation stops as soon as any child is satisfied; otherwise all
// children must be satisfied. Conditions is non-empty once constructed
// through composition.
type HybridTermination struct {
	Conditions []Termination
	FulfilAny  bool
}

func (*HybridTermination) termination() {}
