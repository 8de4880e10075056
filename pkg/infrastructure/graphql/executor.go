package graphql

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	gqlgen "github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/hashicorp/go-multierror"
	"github.com/vektah/gqlparser/v2/ast"
)

// Resolver resolves a field of the Query or Mutation type from its arguments.
type Resolver func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// FieldResolver resolves a field of an object type from the parent value.
// Field arguments are available from gqlgen.GetFieldContext(ctx).Args.
type FieldResolver func(ctx context.Context, obj interface{}) (interface{}, error)

// ScalarMarshaler writes the value of a custom scalar.
type ScalarMarshaler func(v interface{}) (gqlgen.Marshaler, error)

// FieldMiddleware wraps the resolution of every Query and Mutation field.
type FieldMiddleware func(ctx context.Context, obj interface{}, next gqlgen.Resolver) (interface{}, error)

// Config is the static registration of everything a schema needs to execute.
type Config struct {
	Schema     *ast.Schema
	Query      map[string]Resolver
	Mutation   map[string]Resolver
	Objects    map[string]map[string]FieldResolver
	Scalars    map[string]ScalarMarshaler
	Middleware FieldMiddleware
}

// Executor runs operations against a Config. It is a gqlgen ExecutableSchema,
// so parsing, validation and transports are left to a gqlgen handler.
type Executor struct {
	cfg Config
}

var _ gqlgen.ExecutableSchema = (*Executor)(nil)

var errIntrospectionDisabled = errors.New("introspection disabled")

// NewExecutor checks that every field and custom scalar of the schema is
// registered in cfg.
func NewExecutor(cfg Config) (*Executor, error) {
	if cfg.Schema == nil {
		return nil, errors.New("graphql: schema is required")
	}

	var result *multierror.Error
	check := func(def *ast.Definition, has func(name string) bool) {
		if def == nil {
			return
		}
		for _, f := range def.Fields {
			if strings.HasPrefix(f.Name, "__") {
				continue
			}
			if !has(f.Name) {
				result = multierror.Append(result, fmt.Errorf("missing resolver for %s.%s", def.Name, f.Name))
			}
		}
	}

	check(cfg.Schema.Query, func(name string) bool { _, ok := cfg.Query[name]; return ok })
	check(cfg.Schema.Mutation, func(name string) bool { _, ok := cfg.Mutation[name]; return ok })
	if cfg.Schema.Subscription != nil {
		result = multierror.Append(result, errors.New("subscriptions are not supported"))
	}

	for name, def := range cfg.Schema.Types {
		if def.BuiltIn || strings.HasPrefix(name, "__") {
			continue
		}
		switch def.Kind {
		case ast.Object:
			if def == cfg.Schema.Query || def == cfg.Schema.Mutation {
				continue
			}
			fields := cfg.Objects[name]
			check(def, func(field string) bool { _, ok := fields[field]; return ok })
		case ast.Scalar:
			if _, ok := cfg.Scalars[name]; !ok {
				result = multierror.Append(result, fmt.Errorf("missing marshaler for scalar %s", name))
			}
		case ast.Interface, ast.Union:
			result = multierror.Append(result, fmt.Errorf("abstract type %s is not supported", name))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	objects := make(map[string]map[string]FieldResolver, len(cfg.Objects)+len(introspectionObjects))
	for name, fields := range introspectionObjects {
		objects[name] = fields
	}
	for name, fields := range cfg.Objects {
		objects[name] = fields
	}
	cfg.Objects = objects

	if cfg.Middleware == nil {
		cfg.Middleware = func(ctx context.Context, _ interface{}, next gqlgen.Resolver) (interface{}, error) {
			return next(ctx)
		}
	}
	return &Executor{cfg: cfg}, nil
}

func (e *Executor) Schema() *ast.Schema {
	return e.cfg.Schema
}

func (e *Executor) Complexity(_ context.Context, _, _ string, _ int, _ map[string]any) (int, bool) {
	return 0, false
}

// Exec runs the operation of the context. Field errors are added to the
// response context and never escape as Go errors.
func (e *Executor) Exec(ctx context.Context) gqlgen.ResponseHandler {
	opCtx := gqlgen.GetOperationContext(ctx)
	ex := &execution{cfg: &e.cfg, opCtx: opCtx}

	var (
		def       *ast.Definition
		resolvers map[string]Resolver
	)
	switch opCtx.Operation.Operation {
	case ast.Query:
		def, resolvers = e.cfg.Schema.Query, e.cfg.Query
	case ast.Mutation:
		def, resolvers = e.cfg.Schema.Mutation, e.cfg.Mutation
	}
	if def == nil {
		return gqlgen.OneShot(gqlgen.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	first := true
	return func(ctx context.Context) *gqlgen.Response {
		if !first {
			return nil
		}
		first = false

		data := ex.executeRoot(ctx, def, resolvers, opCtx.Operation.SelectionSet)
		var buf bytes.Buffer
		data.MarshalGQL(&buf)
		return &gqlgen.Response{Data: buf.Bytes()}
	}
}

type execution struct {
	cfg   *Config
	opCtx *gqlgen.OperationContext
}

// executeRoot resolves the root fields one after the other, so mutations run serially.
func (ex *execution) executeRoot(
	ctx context.Context,
	def *ast.Definition,
	resolvers map[string]Resolver,
	sel ast.SelectionSet,
) gqlgen.Marshaler {
	fields := gqlgen.CollectFields(ex.opCtx, sel, []string{def.Name})
	out := gqlgen.NewFieldSet(fields)

	for i, field := range fields {
		if field.Name == "__typename" {
			out.Values[i] = gqlgen.MarshalString(def.Name)
			continue
		}

		args := field.ArgumentMap(ex.opCtx.Variables)
		ctx := gqlgen.WithFieldContext(ctx, &gqlgen.FieldContext{
			Object:     def.Name,
			Field:      field,
			Args:       args,
			IsMethod:   true,
			IsResolver: true,
		})

		var next gqlgen.Resolver
		switch field.Name {
		case "__schema":
			next = func(context.Context) (interface{}, error) {
				if ex.opCtx.DisableIntrospection {
					return nil, errIntrospectionDisabled
				}
				return introspection.WrapSchema(ex.cfg.Schema), nil
			}
		case "__type":
			next = func(context.Context) (interface{}, error) {
				if ex.opCtx.DisableIntrospection {
					return nil, errIntrospectionDisabled
				}
				name, _ := args["name"].(string)
				return introspection.WrapTypeFromDef(ex.cfg.Schema, ex.cfg.Schema.Types[name]), nil
			}
		default:
			resolve := resolvers[field.Name]
			next = func(ctx context.Context) (interface{}, error) {
				return ex.cfg.Middleware(ctx, nil, func(ctx context.Context) (interface{}, error) {
					return resolve(ctx, args)
				})
			}
		}

		m, ok := ex.resolveField(ctx, field, next)
		if !ok {
			return gqlgen.Null
		}
		out.Values[i] = m
	}
	return out
}

// resolveField runs next through the operation's field middleware and
// completes the result. ok is false when a null has to propagate to the parent.
func (ex *execution) resolveField(
	ctx context.Context,
	field gqlgen.CollectedField,
	next gqlgen.Resolver,
) (m gqlgen.Marshaler, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if ex.opCtx.RecoverFunc == nil {
				panic(r)
			}
			gqlgen.AddError(ctx, ex.opCtx.Recover(ctx, r))
			m, ok = nullable(field.Definition.Type)
		}
	}()

	if ex.opCtx.ResolverMiddleware != nil {
		resolve := next
		next = func(ctx context.Context) (interface{}, error) {
			return ex.opCtx.ResolverMiddleware(ctx, resolve)
		}
	}
	v, err := next(ctx)
	return ex.complete(ctx, field.Definition.Type, field.Selections, v, err)
}

// complete turns a resolved value into its response form. ok is false when a
// null has to propagate to the parent.
func (ex *execution) complete(
	ctx context.Context,
	typ *ast.Type,
	sel ast.SelectionSet,
	v interface{},
	err error,
) (gqlgen.Marshaler, bool) {
	if err != nil {
		gqlgen.AddError(ctx, err)
		return nullable(typ)
	}
	m, ok := ex.completeValue(ctx, typ, sel, v)
	if !ok {
		return nullable(typ)
	}
	return m, true
}

func nullable(typ *ast.Type) (gqlgen.Marshaler, bool) {
	if typ.NonNull {
		return nil, false
	}
	return gqlgen.Null, true
}

func (ex *execution) completeValue(
	ctx context.Context,
	typ *ast.Type,
	sel ast.SelectionSet,
	v interface{},
) (gqlgen.Marshaler, bool) {
	if isNil(v) {
		if typ.NonNull {
			gqlgen.AddErrorf(ctx, "must not be null")
			return nil, false
		}
		return gqlgen.Null, true
	}

	if typ.Elem != nil {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			gqlgen.AddErrorf(ctx, "expected a list, got %T", v)
			return nil, false
		}
		arr := make(gqlgen.Array, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			el := rv.Index(i)
			if el.Kind() == reflect.Struct && el.CanAddr() {
				el = el.Addr()
			}
			idx := i
			ctx := gqlgen.WithFieldContext(ctx, &gqlgen.FieldContext{Index: &idx, Result: el.Interface()})
			m, ok := ex.complete(ctx, typ.Elem, sel, el.Interface(), nil)
			if !ok {
				return nil, false
			}
			arr[i] = m
		}
		return arr, true
	}

	def := ex.cfg.Schema.Types[typ.NamedType]
	if def == nil {
		gqlgen.AddErrorf(ctx, "unknown type %s", typ.NamedType)
		return nil, false
	}

	switch def.Kind {
	case ast.Scalar, ast.Enum:
		m, err := ex.marshalLeaf(def, v)
		if err != nil {
			gqlgen.AddError(ctx, err)
			return nil, false
		}
		return m, true
	case ast.Object:
		return ex.completeObject(ctx, def, sel, v)
	default:
		gqlgen.AddErrorf(ctx, "type %s of kind %s is not supported", def.Name, def.Kind)
		return nil, false
	}
}

func (ex *execution) completeObject(
	ctx context.Context,
	def *ast.Definition,
	sel ast.SelectionSet,
	obj interface{},
) (gqlgen.Marshaler, bool) {
	fields := gqlgen.CollectFields(ex.opCtx, sel, []string{def.Name})
	out := gqlgen.NewFieldSet(fields)
	resolvers := ex.cfg.Objects[def.Name]

	for i, field := range fields {
		if field.Name == "__typename" {
			out.Values[i] = gqlgen.MarshalString(def.Name)
			continue
		}

		resolve := resolvers[field.Name]
		if resolve == nil {
			gqlgen.AddErrorf(ctx, "missing resolver for %s.%s", def.Name, field.Name)
			return nil, false
		}
		ctx := gqlgen.WithFieldContext(ctx, &gqlgen.FieldContext{
			Object: def.Name,
			Field:  field,
			Args:   field.ArgumentMap(ex.opCtx.Variables),
		})
		m, ok := ex.resolveField(ctx, field, func(ctx context.Context) (interface{}, error) {
			return resolve(ctx, obj)
		})
		if !ok {
			return nil, false
		}
		out.Values[i] = m
	}
	return out, true
}

func (ex *execution) marshalLeaf(def *ast.Definition, v interface{}) (gqlgen.Marshaler, error) {
	if marshal, ok := ex.cfg.Scalars[def.Name]; ok {
		return marshal(v)
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr {
		v = rv.Elem().Interface()
	}

	switch def.Name {
	case "String":
		if s, ok := v.(string); ok {
			return gqlgen.MarshalString(s), nil
		}
	case "ID":
		switch id := v.(type) {
		case string:
			return gqlgen.MarshalID(id), nil
		case fmt.Stringer:
			return gqlgen.MarshalID(id.String()), nil
		}
	case "Boolean":
		if b, ok := v.(bool); ok {
			return gqlgen.MarshalBoolean(b), nil
		}
	case "Int":
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return gqlgen.MarshalInt64(rv.Int()), nil
		}
	case "Float":
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			return gqlgen.MarshalFloat(rv.Float()), nil
		}
	}

	if def.Kind == ast.Enum {
		if s, ok := v.(string); ok {
			return gqlgen.MarshalString(s), nil
		}
	}
	return nil, fmt.Errorf("cannot marshal %T as %s", v, def.Name)
}

// isNil reports nil pointers and interfaces. Nil slices complete as empty lists.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
