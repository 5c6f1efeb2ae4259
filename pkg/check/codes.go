package check

// Machine codes attached to issues. The set is open: custom validators may
// introduce their own codes, callers translate codes to user-facing text.
const (
	CodeTypeError         = "type_error"
	CodeNullNotAllowed    = "null_not_allowed"
	CodeLiteralError      = "literal_error"
	CodeUnionError        = "union_error"
	CodeMissingField      = "missing_field"
	CodeExtraField        = "extra_field"
	CodeLengthError       = "length_error"
	CodeArityError        = "arity_error"
	CodeCircularReference = "circular_reference"
	CodeMaxDepthExceeded  = "max_depth_exceeded"
	CodeDepthTruncated    = "depth_truncated"
	CodeTransformError    = "transform_error"
	CodeCustomFailed      = "custom_validation_failed"
	CodeTaskError         = "task_error"
	CodeValueCoerced      = "value_coerced"
)
