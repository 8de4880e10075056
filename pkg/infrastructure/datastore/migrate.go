package datastore

import (
	"context"
	"fmt"
	"reflect"
	entschema "todos-go-backend/ent/schema"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"github.com/hashicorp/go-multierror"
)

// Schemas holds every entity stored by the app.
var Schemas = []ent.Interface{
	entschema.Todo{},
}

// Tables builds the tables of Schemas from their field descriptors.
func Tables() ([]*schema.Table, error) {
	var result *multierror.Error
	tables := make([]*schema.Table, 0, len(Schemas))
	for _, s := range Schemas {
		t, err := tableOf(s)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		tables = append(tables, t)
	}
	return tables, result.ErrorOrNil()
}

func tableOf(s ent.Interface) (*schema.Table, error) {
	t := schema.NewTable(tableName(s))

	for _, f := range s.Fields() {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("table %s: field %s: %w", t.Name, d.Name, d.Err)
		}
		c := &schema.Column{
			Name:       d.Name,
			Type:       d.Info.Type,
			Size:       int64(d.Size),
			Unique:     d.Unique,
			Nullable:   d.Optional || d.Nillable,
			SchemaType: d.SchemaType,
		}
		// Generated defaults are applied by the app, not the store.
		if d.Default != nil && reflect.TypeOf(d.Default).Kind() != reflect.Func {
			c.Default = d.Default
		}
		t.AddColumn(c)
		if d.Name == "id" {
			t.PrimaryKey = []*schema.Column{c}
		}
	}

	if len(t.PrimaryKey) == 0 {
		return nil, fmt.Errorf("table %s has no id field", t.Name)
	}
	return t, nil
}

func tableName(s ent.Interface) string {
	for _, a := range s.Annotations() {
		switch ant := a.(type) {
		case entsql.Annotation:
			if ant.Table != "" {
				return ant.Table
			}
		case *entsql.Annotation:
			if ant != nil && ant.Table != "" {
				return ant.Table
			}
		}
	}
	return reflect.TypeOf(s).Name()
}

// Migrate creates or alters the tables so they match Schemas.
func Migrate(ctx context.Context, drv dialect.Driver) error {
	tables, err := Tables()
	if err != nil {
		return err
	}

	m, err := schema.NewMigrate(
		drv,
		schema.WithDropIndex(true),
		schema.WithDropColumn(true),
		schema.WithForeignKeys(true),
	)
	if err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	if err := m.Create(ctx, tables...); err != nil {
		return fmt.Errorf("failed creating schema resources: %w", err)
	}
	return nil
}
