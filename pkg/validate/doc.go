// Package validate turns raw environment strings into typed values under
// the constraints declared by a schema rule.
//
// The pipeline has three stages. A missing value is checked against the
// rule's required flag. A present value is coerced into the rule's target
// type. A coerced value is checked against the rule's constraints in a
// fixed order: gt, ge, lt, le, multiple_of, min_length, max_length,
// pattern. The first violated constraint short-circuits the rest.
//
// Every failure is reported as an *Error carrying the field name, the
// failure kind, and, for constraint failures, the name of the violated
// constraint. Eager container validation aggregates per-field errors into
// an *Errors value that formats them as one report.
package validate
