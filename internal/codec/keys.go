package codec

// Well-known key paths of the configuration tree. The codec reads and writes
// only these; it never parses raw text.
const (
	// Top-level keys.
	KeyPropagators   = "propagators"
	KeyTermination   = "termination"
	KeyFinalEpoch    = "finalEpoch"
	KeyExport        = "export"
	KeyBodies        = "bodies"
	KeyPrintInterval = "options.printInterval"

	// Per-propagator keys.
	KeyIntegratedStateType = "integratedStateType"
	KeyBodiesToPropagate   = "bodiesToPropagate"
	KeyCentralBodies       = "centralBodies"
	KeyInitialStates       = "initialStates"
	KeyAccelerations       = "accelerations"
	KeyMassRateModels      = "massRateModels"
	KeyTorques             = "torques"
	KeyPropagatorType      = "type"

	// Termination-condition keys.
	KeyConditionType   = "type"
	KeyEpoch           = "epoch"
	KeyVariable        = "variable"
	KeyLimit           = "limit"
	KeyUseAsLowerLimit = "useAsLowerLimit"
	KeyConditions      = "conditions"
	KeyFulfilAny       = "fulfilAny"

	// Export and variable keys.
	KeyFile                = "file"
	KeyVariables           = "variables"
	KeyHeader              = "header"
	KeyEpochsInFirstColumn = "epochsInFirstColumn"
	KeyQuantity            = "quantity"
	KeyBody                = "body"
	KeyRelativeBody        = "relativeBody"
)

// Termination-condition type tags.
const (
	ConditionTime     = "time"
	ConditionVariable = "variable"
	ConditionHybrid   = "hybrid"
)
