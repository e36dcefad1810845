// Package schema defines the declarative model for environment-backed
// configuration containers.
//
// A Schema lists the environment variables a container manages. Each Field
// names one variable and may carry a default value and a validation Rule
// describing the target type and its constraints. Container-level policy
// (the .env overlay path, environment propagation, eager validation) lives
// on the Schema itself.
//
// Schemas are plain data. They can be written as literals, assembled with
// the fluent Builder, or loaded from a YAML file with LoadFile. A Schema is
// checked once, at container construction time, by Check; all definition
// problems (duplicate names, constraint/type mismatches, bad patterns) are
// collected and reported together as a DefinitionError.
//
// Example:
//
//	s := schema.NewSchema().
//		WithDotEnv(".env").
//		WithField("DB_HOST", schema.Required(schema.TypeString)).
//		WithFieldDefault("DB_PORT", "3306", &schema.Rule{
//			Type: schema.TypeInt,
//			GE:   schema.FloatPtr(1024),
//			LE:   schema.FloatPtr(65535),
//		}).
//		Build()
package schema
