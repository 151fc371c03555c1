package model

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/gormbase/gormbase/pkg/strutil"
)

// PGIdentifierMaxLen is the longest identifier (table or column name)
// PostgreSQL accepts before silently truncating it.
const PGIdentifierMaxLen = 63

// Definition declares, up front, the table name and schema options a
// concrete model composes. Every option is explicit, and Check verifies
// the model actually embeds what it declares.
type Definition struct {
	// Table is the snake_case database table name.
	Table string `yaml:"table" validate:"required"`

	// PK selects the primary-key strategy.
	PK PKKind `yaml:"pk"`

	// HasName declares a unique name column. NameOptional makes it
	// nullable, NameSnakeCase normalizes it on save.
	HasName       bool `yaml:"has_name"`
	NameOptional  bool `yaml:"name_optional"`
	NameSnakeCase bool `yaml:"name_snake_case"`

	// HasDate declares an indexed date column. DateOptional makes it
	// nullable.
	HasDate      bool `yaml:"has_date"`
	DateOptional bool `yaml:"date_optional"`

	// Timestamps declares the created_at/updated_at pair.
	Timestamps bool `yaml:"timestamps"`
}

// Validate checks that the definition is internally consistent.
func (d Definition) Validate() error {
	validate := validator.New()
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("invalid definition: %w", err)
	}
	if len(d.Table) > PGIdentifierMaxLen {
		return fmt.Errorf("table name %q exceeds %d characters", d.Table, PGIdentifierMaxLen)
	}
	if d.Table != strutil.SnakeCase(d.Table) {
		return fmt.Errorf("table name %q is not snake_case", d.Table)
	}
	if !d.PK.IsAPKKind() {
		return fmt.Errorf("unknown primary-key kind %d", d.PK)
	}
	if (d.NameOptional || d.NameSnakeCase) && !d.HasName {
		return fmt.Errorf("table %q: name options set without has_name", d.Table)
	}
	if d.DateOptional && !d.HasDate {
		return fmt.Errorf("table %q: date_optional set without has_date", d.Table)
	}
	return nil
}

// Mixins returns the names of the embeddable types the definition
// declares.
func (d Definition) Mixins() []string {
	names := []string{d.PK.Mixin()}
	if d.HasName {
		switch {
		case d.NameOptional && d.NameSnakeCase:
			names = append(names, "OptionalSnakeCaseName")
		case d.NameOptional:
			names = append(names, "OptionalUniqueName")
		case d.NameSnakeCase:
			names = append(names, "SnakeCaseName")
		default:
			names = append(names, "UniqueName")
		}
	}
	if d.HasDate {
		if d.DateOptional {
			names = append(names, "OptionalDate")
		} else {
			names = append(names, "Date")
		}
	}
	if d.Timestamps {
		names = append(names, "Timestamps")
	}
	return names
}

// Check verifies that prototype is a struct embedding exactly the mixins
// the definition declares, and that its TableName agrees with Table.
func (d Definition) Check(prototype interface{}) error {
	if prototype == nil {
		return fmt.Errorf("table %q: nil prototype", d.Table)
	}

	named, ok := prototype.(interface{ TableName() string })
	if !ok {
		return fmt.Errorf("table %q: prototype %T does not implement TableName", d.Table, prototype)
	}
	if got := named.TableName(); got != d.Table {
		return fmt.Errorf("table %q: prototype %T maps to table %q", d.Table, prototype, got)
	}

	typ := reflect.TypeOf(prototype)
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return fmt.Errorf("table %q: prototype %T is not a struct", d.Table, prototype)
	}

	embedded := map[string]bool{}
	collectMixins(typ, embedded)

	for _, name := range d.Mixins() {
		if !embedded[name] {
			return fmt.Errorf("table %q: prototype %T does not embed %s", d.Table, prototype, name)
		}
	}
	declared := map[string]bool{}
	for _, name := range d.Mixins() {
		declared[name] = true
	}
	for name := range embedded {
		if !declared[name] {
			return fmt.Errorf("table %q: prototype %T embeds undeclared %s", d.Table, prototype, name)
		}
	}
	return nil
}

var mixinNames = map[string]bool{
	"IntPK":                 true,
	"BigIntPK":              true,
	"SmallIntPK":            true,
	"UUIDPK":                true,
	"UniqueName":            true,
	"SnakeCaseName":         true,
	"OptionalUniqueName":    true,
	"OptionalSnakeCaseName": true,
	"Date":                  true,
	"OptionalDate":          true,
	"Timestamps":            true,
}

var mixinPkgPath = reflect.TypeOf(Definition{}).PkgPath()

// collectMixins walks anonymous fields recursively so composites like
// NamedEntity count as the mixins they embed.
func collectMixins(typ reflect.Type, into map[string]bool) {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.Anonymous {
			continue
		}
		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() != reflect.Struct {
			continue
		}
		if ft.PkgPath() == mixinPkgPath && mixinNames[ft.Name()] {
			into[ft.Name()] = true
		}
		collectMixins(ft, into)
	}
}
