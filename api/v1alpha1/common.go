package v1alpha1

const (
	LabelPolicy    = "stepscaler.medium.engineering/policy"
	LabelRuleType  = "stepscaler.medium.engineering/ruleType"
	LabelDirection = "stepscaler.medium.engineering/direction"
	LabelIgnore    = "stepscaler.medium.engineering/ignore"

	// LabelOwnerName and LabelOwnerNamespace identify the policy of resources
	// created outside of its namespace.
	LabelOwnerName      = "stepscaler.medium.engineering/ownerName"
	LabelOwnerNamespace = "stepscaler.medium.engineering/ownerNamespace"

	// AnnotationAdjustments holds the JSON encoded ladder of an alarm.
	AnnotationAdjustments = "stepscaler.medium.engineering/adjustments"
	// AnnotationAction holds the JSON encoded settings of the action an alarm triggers.
	AnnotationAction = "stepscaler.medium.engineering/action"

	FinalizerStepScalingPolicy = "stepscaler.medium.engineering/stepscalingpolicy"

	// RuleTypeStepScaling is the value of the LabelRuleType label for step scaling rules.
	RuleTypeStepScaling = "stepscaling"

	ConditionReady = "Ready"

	ReasonSynced        = "Synced"
	ReasonInvalidPolicy = "InvalidPolicy"
	ReasonSyncFailed    = "SyncFailed"
)

const (
	DefaultStatistic      = "Average"
	DefaultAdjustmentType = "ChangeInCapacity"
)
