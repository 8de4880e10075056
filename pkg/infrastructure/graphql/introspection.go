package graphql

import (
	"context"

	gqlgen "github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
)

// introspectionObjects resolves the fields of the introspection types over the
// gqlgen introspection wrappers.
var introspectionObjects = map[string]map[string]FieldResolver{
	"__Schema": {
		"description": schemaField(func(s *introspection.Schema) interface{} { return s.Description() }),
		"types":       schemaField(func(s *introspection.Schema) interface{} { return s.Types() }),
		"queryType":   schemaField(func(s *introspection.Schema) interface{} { return s.QueryType() }),
		"mutationType": schemaField(func(s *introspection.Schema) interface{} {
			return s.MutationType()
		}),
		"subscriptionType": schemaField(func(s *introspection.Schema) interface{} {
			return s.SubscriptionType()
		}),
		"directives": schemaField(func(s *introspection.Schema) interface{} { return s.Directives() }),
	},
	"__Type": {
		"kind":           typeField(func(_ context.Context, t *introspection.Type) interface{} { return t.Kind() }),
		"name":           typeField(func(_ context.Context, t *introspection.Type) interface{} { return t.Name() }),
		"description":    typeField(func(_ context.Context, t *introspection.Type) interface{} { return t.Description() }),
		"specifiedByURL": typeField(func(_ context.Context, t *introspection.Type) interface{} { return t.SpecifiedByURL() }),
		"fields": typeField(func(ctx context.Context, t *introspection.Type) interface{} {
			return t.Fields(includeDeprecated(ctx))
		}),
		"interfaces":    typeField(func(_ context.Context, t *introspection.Type) interface{} { return t.Interfaces() }),
		"possibleTypes": typeField(func(_ context.Context, t *introspection.Type) interface{} { return t.PossibleTypes() }),
		"enumValues": typeField(func(ctx context.Context, t *introspection.Type) interface{} {
			return t.EnumValues(includeDeprecated(ctx))
		}),
		"inputFields": typeField(func(_ context.Context, t *introspection.Type) interface{} { return t.InputFields() }),
		"ofType":      typeField(func(_ context.Context, t *introspection.Type) interface{} { return t.OfType() }),
		"isOneOf":     typeField(func(_ context.Context, t *introspection.Type) interface{} { return t.IsOneOf() }),
	},
	"__Field": {
		"name":              fieldField(func(f *introspection.Field) interface{} { return f.Name }),
		"description":       fieldField(func(f *introspection.Field) interface{} { return f.Description() }),
		"args":              fieldField(func(f *introspection.Field) interface{} { return f.Args }),
		"type":              fieldField(func(f *introspection.Field) interface{} { return f.Type }),
		"isDeprecated":      fieldField(func(f *introspection.Field) interface{} { return f.IsDeprecated() }),
		"deprecationReason": fieldField(func(f *introspection.Field) interface{} { return f.DeprecationReason() }),
	},
	"__InputValue": {
		"name":              inputValueField(func(v *introspection.InputValue) interface{} { return v.Name }),
		"description":       inputValueField(func(v *introspection.InputValue) interface{} { return v.Description() }),
		"type":              inputValueField(func(v *introspection.InputValue) interface{} { return v.Type }),
		"defaultValue":      inputValueField(func(v *introspection.InputValue) interface{} { return v.DefaultValue }),
		"isDeprecated":      inputValueField(func(v *introspection.InputValue) interface{} { return v.IsDeprecated() }),
		"deprecationReason": inputValueField(func(v *introspection.InputValue) interface{} { return v.DeprecationReason() }),
	},
	"__EnumValue": {
		"name":              enumValueField(func(v *introspection.EnumValue) interface{} { return v.Name }),
		"description":       enumValueField(func(v *introspection.EnumValue) interface{} { return v.Description() }),
		"isDeprecated":      enumValueField(func(v *introspection.EnumValue) interface{} { return v.IsDeprecated() }),
		"deprecationReason": enumValueField(func(v *introspection.EnumValue) interface{} { return v.DeprecationReason() }),
	},
	"__Directive": {
		"name":         directiveField(func(d *introspection.Directive) interface{} { return d.Name }),
		"description":  directiveField(func(d *introspection.Directive) interface{} { return d.Description() }),
		"isRepeatable": directiveField(func(d *introspection.Directive) interface{} { return d.IsRepeatable }),
		"locations":    directiveField(func(d *introspection.Directive) interface{} { return d.Locations }),
		"args":         directiveField(func(d *introspection.Directive) interface{} { return d.Args }),
	},
}

func includeDeprecated(ctx context.Context) bool {
	fc := gqlgen.GetFieldContext(ctx)
	if fc == nil {
		return false
	}
	v, _ := fc.Args["includeDeprecated"].(bool)
	return v
}

func schemaField(f func(*introspection.Schema) interface{}) FieldResolver {
	return func(_ context.Context, obj interface{}) (interface{}, error) {
		return f(obj.(*introspection.Schema)), nil
	}
}

func typeField(f func(context.Context, *introspection.Type) interface{}) FieldResolver {
	return func(ctx context.Context, obj interface{}) (interface{}, error) {
		return f(ctx, obj.(*introspection.Type)), nil
	}
}

func fieldField(f func(*introspection.Field) interface{}) FieldResolver {
	return func(_ context.Context, obj interface{}) (interface{}, error) {
		return f(obj.(*introspection.Field)), nil
	}
}

func inputValueField(f func(*introspection.InputValue) interface{}) FieldResolver {
	return func(_ context.Context, obj interface{}) (interface{}, error) {
		return f(obj.(*introspection.InputValue)), nil
	}
}

func enumValueField(f func(*introspection.EnumValue) interface{}) FieldResolver {
	return func(_ context.Context, obj interface{}) (interface{}, error) {
		return f(obj.(*introspection.EnumValue)), nil
	}
}

func directiveField(f func(*introspection.Directive) interface{}) FieldResolver {
	return func(_ context.Context, obj interface{}) (interface{}, error) {
		return f(obj.(*introspection.Directive)), nil
	}
}
